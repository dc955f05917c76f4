package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"backoffice-service/internal/models"
	"backoffice-service/internal/util"

	"go.uber.org/zap"
)

const lowStockQuery = `
	SELECT p.id, p.codigo, p.nome, p.descricao,
	       p.quantidade_estoque, p.quantidade_minima, p.preco_custo,
	       c.nome AS categoria, m.nome AS marca
	FROM peca p
	JOIN categoria c ON c.id = p.categoria_id
	JOIN marca m ON m.id = p.marca_id
	WHERE p.ativo = true AND p.quantidade_estoque <= p.quantidade_minima
	ORDER BY (p.quantidade_estoque - p.quantidade_minima) ASC, p.nome ASC`

// GetLowStockParts lists active parts at or below their minimum stock,
// most deficient first.
func (s *Store) GetLowStockParts(ctx context.Context) ([]models.LowStockPart, error) {
	var parts []models.LowStockPart
	if err := s.db.SelectContext(ctx, &parts, lowStockQuery); err != nil {
		return nil, fmt.Errorf("failed to list low stock parts: %w", err)
	}
	return parts, nil
}

// GetReorderSuggestions lists low-stock parts enriched with preferred
// supplier data and the last purchase price. Enrichment lookups run per
// part and degrade to null fields on failure; a bad supplier or price
// lookup never fails the listing.
func (s *Store) GetReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error) {
	var parts []models.LowStockPart
	if err := s.db.SelectContext(ctx, &parts, lowStockQuery); err != nil {
		return nil, fmt.Errorf("failed to list reorder candidates: %w", err)
	}

	suggestions := make([]models.ReorderSuggestion, len(parts))
	var wg sync.WaitGroup
	for i := range parts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			suggestions[i] = buildSuggestion(ctx, s, parts[i])
		}(i)
	}
	wg.Wait()

	sortSuggestions(suggestions)
	return suggestions, nil
}

// enrichmentLookups is the per-part lookup slice behind suggestion
// enrichment. *Store satisfies it.
type enrichmentLookups interface {
	getPreferredSupplier(ctx context.Context, partID int64) (*models.SupplierContact, error)
	getLastPurchasePrice(ctx context.Context, partID int64) (float64, *time.Time, error)
}

func buildSuggestion(ctx context.Context, src enrichmentLookups, part models.LowStockPart) models.ReorderSuggestion {
	suggestion := models.ReorderSuggestion{
		LowStockPart: part,
		SuggestedQty: suggestedQuantity(part.MinStock, part.Stock),
		LastPrice:    part.CostPrice,
	}

	supplier, err := src.getPreferredSupplier(ctx, part.PartID)
	if err != nil {
		util.EnrichmentLookupsFailed.WithLabelValues("supplier").Inc()
		util.GetLogger().Warn("Supplier lookup degraded",
			zap.Int64("part_id", part.PartID),
			zap.Error(err))
	} else {
		suggestion.Supplier = supplier
	}

	price, purchasedAt, err := src.getLastPurchasePrice(ctx, part.PartID)
	if err != nil {
		util.EnrichmentLookupsFailed.WithLabelValues("last_purchase").Inc()
		util.GetLogger().Warn("Last purchase lookup degraded",
			zap.Int64("part_id", part.PartID),
			zap.Error(err))
	} else if purchasedAt != nil {
		suggestion.LastPrice = price
		suggestion.LastPurchaseAt = purchasedAt
	}

	return suggestion
}

// getPreferredSupplier returns nil without error when the part has no
// preferred supplier configured.
func (s *Store) getPreferredSupplier(ctx context.Context, partID int64) (*models.SupplierContact, error) {
	row := struct {
		ID    int64   `db:"id"`
		Name  string  `db:"nome"`
		Phone *string `db:"telefone"`
		Email *string `db:"email"`
	}{}

	err := s.db.GetContext(ctx, &row, `
		SELECT f.id, pe.nome, ct.telefone, ct.email
		FROM fornecedor f
		JOIN pessoa pe ON pe.id = f.pessoa_id
		LEFT JOIN contato ct ON ct.pessoa_id = pe.id
		WHERE f.id = (SELECT fornecedor_id FROM peca WHERE id = $1)`, partID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.SupplierContact{
		SupplierID: row.ID,
		Name:       row.Name,
		Phone:      row.Phone,
		Email:      row.Email,
	}, nil
}

// getLastPurchasePrice returns a nil timestamp when the part has no
// purchase history; the caller then keeps the stored cost price.
func (s *Store) getLastPurchasePrice(ctx context.Context, partID int64) (float64, *time.Time, error) {
	row := struct {
		UnitPrice float64   `db:"preco_unitario"`
		Date      time.Time `db:"data_compra"`
	}{}

	err := s.db.GetContext(ctx, &row, `
		SELECT ic.preco_unitario, co.data_compra
		FROM item_compra ic
		JOIN compra co ON co.id = ic.compra_id
		WHERE ic.peca_id = $1 AND co.status <> $2
		ORDER BY co.data_compra DESC
		LIMIT 1`, partID, models.PurchaseStatusCanceled)
	if err == sql.ErrNoRows {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return row.UnitPrice, &row.Date, nil
}

// GetPendingSales lists pending sale orders, oldest first.
func (s *Store) GetPendingSales(ctx context.Context) ([]models.PendingSale, error) {
	var sales []models.PendingSale
	err := s.db.SelectContext(ctx, &sales, `
		SELECT v.id, v.data_venda, v.valor_total, v.status,
		       pc.nome AS cliente, pv.nome AS vendedor
		FROM venda v
		JOIN cliente cl ON cl.id = v.cliente_id
		JOIN pessoa pc ON pc.id = cl.pessoa_id
		JOIN usuario u ON u.id = v.vendedor_id
		JOIN pessoa pv ON pv.id = u.pessoa_id
		WHERE v.status = $1
		ORDER BY v.data_venda ASC`, models.SaleStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sales: %w", err)
	}
	return sales, nil
}

// GetPendingPurchases lists pending purchase orders, oldest first.
func (s *Store) GetPendingPurchases(ctx context.Context) ([]models.PendingPurchase, error) {
	var purchases []models.PendingPurchase
	err := s.db.SelectContext(ctx, &purchases, `
		SELECT co.id, co.data_compra, co.valor_total, co.status,
		       pf.nome AS fornecedor, pu.nome AS solicitante
		FROM compra co
		JOIN fornecedor f ON f.id = co.fornecedor_id
		JOIN pessoa pf ON pf.id = f.pessoa_id
		JOIN usuario u ON u.id = co.usuario_id
		JOIN pessoa pu ON pu.id = u.pessoa_id
		WHERE co.status = $1
		ORDER BY co.data_compra ASC`, models.PurchaseStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending purchases: %w", err)
	}
	return purchases, nil
}

// CountAlerts counts each base category with independent queries so a
// failing category is identifiable by the wrapped error.
func (s *Store) CountAlerts(ctx context.Context) (*models.AlertCount, error) {
	var count models.AlertCount

	err := s.db.GetContext(ctx, &count.LowStock, `
		SELECT COUNT(*) FROM peca
		WHERE ativo = true AND quantidade_estoque <= quantidade_minima`)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock parts: %w", err)
	}

	err = s.db.GetContext(ctx, &count.PendingSales,
		`SELECT COUNT(*) FROM venda WHERE status = $1`, models.SaleStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending sales: %w", err)
	}

	err = s.db.GetContext(ctx, &count.PendingPurchases,
		`SELECT COUNT(*) FROM compra WHERE status = $1`, models.PurchaseStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending purchases: %w", err)
	}

	count.Total = sumCounts(count.LowStock, count.PendingSales, count.PendingPurchases)
	return &count, nil
}

// GetAlertByID retrieves a persisted alert row
func (s *Store) GetAlertByID(ctx context.Context, id int64) (*models.Alert, error) {
	var alert models.Alert
	err := s.db.GetContext(ctx, &alert, `SELECT * FROM alertas WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert %d: %w", id, err)
	}
	return &alert, nil
}

// TransitionAlert applies a lifecycle transition as a single atomic
// UPDATE guarded on the open status. Zero affected rows means a stale
// id or a lost race; the caller decides how to surface that.
func (s *Store) TransitionAlert(ctx context.Context, id int64, status string, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE alertas
		SET status = $1, usuario_id = $2, resolvido_em = NOW()
		WHERE id = $3 AND status = $4`, status, userID, id, models.AlertStatusOpen)
	if err != nil {
		return false, fmt.Errorf("failed to transition alert %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for alert %d: %w", id, err)
	}
	return affected > 0, nil
}

// suggestedQuantity is the replenishment heuristic: refill to twice the
// minimum threshold.
func suggestedQuantity(minStock, stock int) int {
	return minStock*2 - stock
}

// sortSuggestions orders zero-stock parts first, then by ascending
// stock deficiency.
func sortSuggestions(suggestions []models.ReorderSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		iZero := suggestions[i].Stock == 0
		jZero := suggestions[j].Stock == 0
		if iZero != jZero {
			return iZero
		}
		return suggestions[i].Stock-suggestions[i].MinStock < suggestions[j].Stock-suggestions[j].MinStock
	})
}

func sumCounts(counts ...int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
