package api

import (
	"fmt"

	"backoffice-service/internal/service"

	"github.com/gin-gonic/gin"
)

type priceChangeRequest struct {
	NewPrice float64 `json:"preco_novo" binding:"required"`
}

// getPriceHistory lists cost-price changes for a part
func (h *Handler) getPriceHistory(c *gin.Context) {
	partID, ok := parseIDParam(c, "pecaId")
	if !ok {
		return
	}

	entries, err := h.prices.History(c.Request.Context(), partID)
	if err != nil {
		h.respondError(c, "Erro ao buscar historico de precos", err)
		return
	}
	respondData(c, entries)
}

// recordPriceChange updates a part cost price and appends history
func (h *Handler) recordPriceChange(c *gin.Context) {
	partID, ok := parseIDParam(c, "pecaId")
	if !ok {
		return
	}

	var req priceChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "Corpo da requisicao invalido", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	entry, err := h.prices.RecordChange(c.Request.Context(), partID, req.NewPrice, currentUserID(c))
	if err != nil {
		h.respondError(c, "Erro ao registrar alteracao de preco", err)
		return
	}
	respondMessage(c, "Alteracao de preco registrada com sucesso", entry)
}

// listPartImages lists image metadata for a part
func (h *Handler) listPartImages(c *gin.Context) {
	partID, ok := parseIDParam(c, "pecaId")
	if !ok {
		return
	}

	images, err := h.images.List(c.Request.Context(), partID)
	if err != nil {
		h.respondError(c, "Erro ao buscar imagens", err)
		return
	}
	respondData(c, images)
}

// registerPartImage stores image metadata for a part
func (h *Handler) registerPartImage(c *gin.Context) {
	partID, ok := parseIDParam(c, "pecaId")
	if !ok {
		return
	}

	var input service.ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, "Corpo da requisicao invalido", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	image, err := h.images.Register(c.Request.Context(), partID, &input)
	if err != nil {
		h.respondError(c, "Erro ao registrar imagem", err)
		return
	}
	respondMessage(c, "Imagem registrada com sucesso", image)
}

// promoteImage marks an image as primary for its part
func (h *Handler) promoteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	image, err := h.images.Promote(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "Erro ao definir imagem principal", err)
		return
	}
	respondMessage(c, "Imagem principal definida com sucesso", image)
}

// deleteImage removes image metadata
func (h *Handler) deleteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.images.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "Erro ao remover imagem", err)
		return
	}
	respondMessage(c, "Imagem removida com sucesso", nil)
}
