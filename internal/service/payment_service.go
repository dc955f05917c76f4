package service

import (
	"context"
	"fmt"
	"strings"

	"backoffice-service/internal/models"
	"backoffice-service/internal/store"
	"backoffice-service/internal/util"

	"go.uber.org/zap"
)

// PaymentMethodStore is the gateway slice the payment method service needs.
type PaymentMethodStore interface {
	GetPaymentMethods(ctx context.Context, includeInactive bool) ([]models.PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, id int64) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) (bool, error)
	DeactivatePaymentMethod(ctx context.Context, id int64) (bool, error)
}

// PaymentMethodService manages the configurable payment methods.
type PaymentMethodService struct {
	store  PaymentMethodStore
	logger *zap.Logger
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(store PaymentMethodStore) *PaymentMethodService {
	return &PaymentMethodService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// PaymentMethodInput carries create/update fields
type PaymentMethodInput struct {
	Name        string  `json:"nome" binding:"required"`
	Description *string `json:"descricao"`
	FeePercent  float64 `json:"taxa_percentual"`
}

// List returns payment methods, active only unless includeInactive is set
func (s *PaymentMethodService) List(ctx context.Context, includeInactive bool) ([]models.PaymentMethod, error) {
	methods, err := s.store.GetPaymentMethods(ctx, includeInactive)
	return nonNilSlice(methods), err
}

// Get returns a single payment method
func (s *PaymentMethodService) Get(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	return s.store.GetPaymentMethodByID(ctx, id)
}

// Create validates and persists a new payment method
func (s *PaymentMethodService) Create(ctx context.Context, input *PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := validatePaymentMethodInput(input); err != nil {
		return nil, err
	}

	method := &models.PaymentMethod{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		FeePercent:  input.FeePercent,
	}
	if err := s.store.CreatePaymentMethod(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("Payment method created",
		zap.Int64("id", method.ID),
		zap.String("name", method.Name))
	return method, nil
}

// Update validates and applies changes to an existing payment method
func (s *PaymentMethodService) Update(ctx context.Context, id int64, input *PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := validatePaymentMethodInput(input); err != nil {
		return nil, err
	}

	method := &models.PaymentMethod{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		FeePercent:  input.FeePercent,
	}
	ok, err := s.store.UpdatePaymentMethod(ctx, method)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrPaymentMethodNotFound
	}

	return s.store.GetPaymentMethodByID(ctx, id)
}

// Deactivate soft-deletes a payment method
func (s *PaymentMethodService) Deactivate(ctx context.Context, id int64) error {
	ok, err := s.store.DeactivatePaymentMethod(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrPaymentMethodNotFound
	}

	s.logger.Info("Payment method deactivated", zap.Int64("id", id))
	return nil
}

func validatePaymentMethodInput(input *PaymentMethodInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: nome is required", ErrValidation)
	}
	if input.FeePercent < 0 || input.FeePercent > 100 {
		return fmt.Errorf("%w: taxa_percentual must be between 0 and 100", ErrValidation)
	}
	return nil
}
