package store

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice-service/internal/models"
)

// GetPriceHistory lists cost-price changes for a part, newest first
func (s *Store) GetPriceHistory(ctx context.Context, partID int64) ([]models.PriceHistoryEntry, error) {
	var entries []models.PriceHistoryEntry
	err := s.db.SelectContext(ctx, &entries, `
		SELECT * FROM historico_preco
		WHERE peca_id = $1
		ORDER BY data_alteracao DESC`, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to list price history for part %d: %w", partID, err)
	}
	return entries, nil
}

// GetPartCostPrice reads the current stored cost price of a part
func (s *Store) GetPartCostPrice(ctx context.Context, partID int64) (float64, error) {
	var price float64
	err := s.db.GetContext(ctx, &price, `SELECT preco_custo FROM peca WHERE id = $1`, partID)
	if err == sql.ErrNoRows {
		return 0, ErrPartNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cost price for part %d: %w", partID, err)
	}
	return price, nil
}

// RecordPriceChange updates the part cost price and appends the history
// entry in one transaction so the old price captured is the one replaced.
func (s *Store) RecordPriceChange(ctx context.Context, entry *models.PriceHistoryEntry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin price change for part %d: %w", entry.PartID, err)
	}
	defer tx.Rollback()

	err = tx.GetContext(ctx, &entry.OldPrice,
		`SELECT preco_custo FROM peca WHERE id = $1 FOR UPDATE`, entry.PartID)
	if err == sql.ErrNoRows {
		return ErrPartNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock part %d: %w", entry.PartID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE peca SET preco_custo = $1 WHERE id = $2`, entry.NewPrice, entry.PartID)
	if err != nil {
		return fmt.Errorf("failed to update cost price for part %d: %w", entry.PartID, err)
	}

	err = tx.GetContext(ctx, entry, `
		INSERT INTO historico_preco (peca_id, preco_antigo, preco_novo, usuario_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, data_alteracao`,
		entry.PartID, entry.OldPrice, entry.NewPrice, entry.UserID)
	if err != nil {
		return fmt.Errorf("failed to record price change for part %d: %w", entry.PartID, err)
	}

	return tx.Commit()
}
