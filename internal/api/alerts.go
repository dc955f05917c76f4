package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getAllAlerts returns the full alert bundle
func (h *Handler) getAllAlerts(c *gin.Context) {
	bundle, err := h.alerts.GetAllAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar alertas", err)
		return
	}
	respondData(c, bundle)
}

// getLowStock returns the low-stock list
func (h *Handler) getLowStock(c *gin.Context) {
	parts, err := h.alerts.GetLowStock(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar alertas de estoque baixo", err)
		return
	}
	respondData(c, parts)
}

// getReorderSuggestions returns the enriched reorder suggestions
func (h *Handler) getReorderSuggestions(c *gin.Context) {
	suggestions, err := h.alerts.GetReorderSuggestions(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar sugestoes de recompra", err)
		return
	}
	respondData(c, suggestions)
}

// getPendingSales returns pending sale orders
func (h *Handler) getPendingSales(c *gin.Context) {
	sales, err := h.alerts.GetPendingSales(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar vendas pendentes", err)
		return
	}
	respondData(c, sales)
}

// getPendingPurchases returns pending purchase orders
func (h *Handler) getPendingPurchases(c *gin.Context) {
	purchases, err := h.alerts.GetPendingPurchases(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar compras pendentes", err)
		return
	}
	respondData(c, purchases)
}

// getStats returns category counts for dashboard widgets
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.alerts.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar estatisticas de alertas", err)
		return
	}
	respondData(c, stats)
}

// getAlertCount returns the total counter
func (h *Handler) getAlertCount(c *gin.Context) {
	count, err := h.alerts.GetAlertCount(c.Request.Context())
	if err != nil {
		h.respondError(c, "Erro ao buscar contador de alertas", err)
		return
	}
	respondData(c, count)
}

// resolveAlert resolves a persisted alert
func (h *Handler) resolveAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	alert, message, err := h.alerts.ResolveAlert(c.Request.Context(), alertID, currentUserID(c))
	if err != nil {
		h.respondError(c, "Erro ao resolver alerta", err)
		return
	}
	respondMessage(c, message, alert)
}

// dismissAlert dismisses a persisted alert
func (h *Handler) dismissAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	alert, message, err := h.alerts.DismissAlert(c.Request.Context(), alertID, currentUserID(c))
	if err != nil {
		h.respondError(c, "Erro ao dispensar alerta", err)
		return
	}
	respondMessage(c, message, alert)
}

// parseIDParam parses a numeric path parameter, responding 400 on
// failure
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Error:   "Identificador invalido",
		})
		return 0, false
	}
	return id, true
}
