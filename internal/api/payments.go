package api

import (
	"fmt"

	"backoffice-service/internal/service"

	"github.com/gin-gonic/gin"
)

// listPaymentMethods lists payment methods; ?inativas=true includes
// deactivated ones
func (h *Handler) listPaymentMethods(c *gin.Context) {
	includeInactive := c.Query("inativas") == "true"

	methods, err := h.payments.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.respondError(c, "Erro ao buscar formas de pagamento", err)
		return
	}
	respondData(c, methods)
}

// getPaymentMethod returns a single payment method
func (h *Handler) getPaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	method, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "Erro ao buscar forma de pagamento", err)
		return
	}
	respondData(c, method)
}

// createPaymentMethod registers a new payment method
func (h *Handler) createPaymentMethod(c *gin.Context) {
	var input service.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, "Corpo da requisicao invalido", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	method, err := h.payments.Create(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, "Erro ao criar forma de pagamento", err)
		return
	}
	respondMessage(c, "Forma de pagamento criada com sucesso", method)
}

// updatePaymentMethod updates an existing payment method
func (h *Handler) updatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, "Corpo da requisicao invalido", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	method, err := h.payments.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.respondError(c, "Erro ao atualizar forma de pagamento", err)
		return
	}
	respondMessage(c, "Forma de pagamento atualizada com sucesso", method)
}

// deactivatePaymentMethod soft-deletes a payment method
func (h *Handler) deactivatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.payments.Deactivate(c.Request.Context(), id); err != nil {
		h.respondError(c, "Erro ao desativar forma de pagamento", err)
		return
	}
	respondMessage(c, "Forma de pagamento desativada com sucesso", nil)
}
