package store

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice-service/internal/models"
)

// GetPaymentMethods lists payment methods; inactive ones are included
// only when requested.
func (s *Store) GetPaymentMethods(ctx context.Context, includeInactive bool) ([]models.PaymentMethod, error) {
	query := `SELECT * FROM forma_pagamento ORDER BY nome ASC`
	if !includeInactive {
		query = `SELECT * FROM forma_pagamento WHERE ativo = true ORDER BY nome ASC`
	}

	var methods []models.PaymentMethod
	if err := s.db.SelectContext(ctx, &methods, query); err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// GetPaymentMethodByID retrieves a payment method
func (s *Store) GetPaymentMethodByID(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := s.db.GetContext(ctx, &method, `SELECT * FROM forma_pagamento WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method %d: %w", id, err)
	}
	return &method, nil
}

// CreatePaymentMethod inserts a payment method and fills generated fields
func (s *Store) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	query := `
		INSERT INTO forma_pagamento (nome, descricao, taxa_percentual, ativo)
		VALUES ($1, $2, $3, true)
		RETURNING id, ativo, criado_em, atualizado_em`

	err := s.db.GetContext(ctx, method, query, method.Name, method.Description, method.FeePercent)
	if err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}

// UpdatePaymentMethod updates name, description and fee
func (s *Store) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE forma_pagamento
		SET nome = $1, descricao = $2, taxa_percentual = $3, atualizado_em = NOW()
		WHERE id = $4`, method.Name, method.Description, method.FeePercent, method.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update payment method %d: %w", method.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeactivatePaymentMethod soft-deletes a payment method
func (s *Store) DeactivatePaymentMethod(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE forma_pagamento SET ativo = false, atualizado_em = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate payment method %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
