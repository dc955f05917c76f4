package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSONRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePaymentMethodBadBody(t *testing.T) {
	router := setupTestRouter(t, &stubGateway{})

	rec := doJSONRequest(router, http.MethodPost, "/formas-pagamento", testToken, `{"nome":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Corpo da requisicao invalido", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestBindDetailsHiddenInProduction(t *testing.T) {
	router := setupTestRouterEnv(t, &stubGateway{}, "production")

	rec := doJSONRequest(router, http.MethodPost, "/formas-pagamento", testToken, `{"nome":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Corpo da requisicao invalido", body.Error)
	assert.Empty(t, body.Details)

	rec = doJSONRequest(router, http.MethodPost, "/pecas/5/historico-precos", testToken, `{"preco_novo":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body = decodeEnvelope(t, rec)
	assert.Empty(t, body.Details)
}
