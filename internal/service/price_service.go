package service

import (
	"context"
	"fmt"

	"backoffice-service/internal/models"
	"backoffice-service/internal/util"

	"go.uber.org/zap"
)

// PriceStore is the gateway slice the price history service needs.
type PriceStore interface {
	GetPriceHistory(ctx context.Context, partID int64) ([]models.PriceHistoryEntry, error)
	GetPartCostPrice(ctx context.Context, partID int64) (float64, error)
	RecordPriceChange(ctx context.Context, entry *models.PriceHistoryEntry) error
}

// PriceService manages the cost-price history of parts.
type PriceService struct {
	store  PriceStore
	logger *zap.Logger
}

// NewPriceService creates a new price history service
func NewPriceService(store PriceStore) *PriceService {
	return &PriceService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// History lists price changes for a part, newest first. The part id is
// checked so a typo surfaces as not-found instead of an empty list.
func (s *PriceService) History(ctx context.Context, partID int64) ([]models.PriceHistoryEntry, error) {
	if _, err := s.store.GetPartCostPrice(ctx, partID); err != nil {
		return nil, err
	}
	entries, err := s.store.GetPriceHistory(ctx, partID)
	return nonNilSlice(entries), err
}

// RecordChange updates a part's cost price and appends the history entry
func (s *PriceService) RecordChange(ctx context.Context, partID int64, newPrice float64, userID int64) (*models.PriceHistoryEntry, error) {
	if newPrice <= 0 {
		return nil, fmt.Errorf("%w: preco_novo must be greater than zero", ErrValidation)
	}

	entry := &models.PriceHistoryEntry{
		PartID:   partID,
		NewPrice: newPrice,
		UserID:   userID,
	}
	if err := s.store.RecordPriceChange(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Price change recorded",
		zap.Int64("part_id", partID),
		zap.Float64("old_price", entry.OldPrice),
		zap.Float64("new_price", entry.NewPrice),
		zap.Int64("user_id", userID))
	return entry, nil
}
