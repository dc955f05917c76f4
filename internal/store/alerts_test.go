package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookups struct {
	supplier    *models.SupplierContact
	supplierErr error
	price       float64
	purchasedAt *time.Time
	priceErr    error
}

func (f *fakeLookups) getPreferredSupplier(ctx context.Context, partID int64) (*models.SupplierContact, error) {
	return f.supplier, f.supplierErr
}

func (f *fakeLookups) getLastPurchasePrice(ctx context.Context, partID int64) (float64, *time.Time, error) {
	return f.price, f.purchasedAt, f.priceErr
}

func TestSuggestedQuantity(t *testing.T) {
	assert.Equal(t, 10, suggestedQuantity(5, 0))
	assert.Equal(t, 7, suggestedQuantity(5, 3))
	assert.Equal(t, 5, suggestedQuantity(5, 5))
	assert.Equal(t, 1, suggestedQuantity(1, 1))
}

func TestSortSuggestionsZeroStockFirst(t *testing.T) {
	suggestions := []models.ReorderSuggestion{
		{LowStockPart: models.LowStockPart{PartID: 1, Stock: 2, MinStock: 10}},
		{LowStockPart: models.LowStockPart{PartID: 2, Stock: 0, MinStock: 3}},
		{LowStockPart: models.LowStockPart{PartID: 3, Stock: 1, MinStock: 20}},
		{LowStockPart: models.LowStockPart{PartID: 4, Stock: 0, MinStock: 8}},
	}

	sortSuggestions(suggestions)

	// Zero-stock parts lead, ordered by deficiency: part 4 is -8, part 2 is -3
	assert.Equal(t, int64(4), suggestions[0].PartID)
	assert.Equal(t, int64(2), suggestions[1].PartID)
	// Then ascending by (stock - min): part 3 is -19, part 1 is -8
	assert.Equal(t, int64(3), suggestions[2].PartID)
	assert.Equal(t, int64(1), suggestions[3].PartID)
}

func TestSortSuggestionsStableWithinZeroGroup(t *testing.T) {
	suggestions := []models.ReorderSuggestion{
		{LowStockPart: models.LowStockPart{PartID: 1, Stock: 0, MinStock: 5}},
		{LowStockPart: models.LowStockPart{PartID: 2, Stock: 0, MinStock: 9}},
	}

	sortSuggestions(suggestions)

	// Part 2 is more deficient (-9 vs -5) and moves ahead
	assert.Equal(t, int64(2), suggestions[0].PartID)
	assert.Equal(t, int64(1), suggestions[1].PartID)
}

func TestBuildSuggestionWithoutSupplier(t *testing.T) {
	part := models.LowStockPart{PartID: 7, Stock: 2, MinStock: 5, CostPrice: 12.5}

	suggestion := buildSuggestion(context.Background(), &fakeLookups{}, part)

	assert.Nil(t, suggestion.Supplier)
	assert.Equal(t, 8, suggestion.SuggestedQty)
	assert.Equal(t, 12.5, suggestion.LastPrice)
	assert.Nil(t, suggestion.LastPurchaseAt)
}

func TestBuildSuggestionDegradesOnLookupErrors(t *testing.T) {
	part := models.LowStockPart{PartID: 7, Stock: 0, MinStock: 4, CostPrice: 30}
	lookups := &fakeLookups{
		supplierErr: errors.New("fornecedor query timeout"),
		priceErr:    errors.New("compra query timeout"),
	}

	suggestion := buildSuggestion(context.Background(), lookups, part)

	assert.Nil(t, suggestion.Supplier)
	assert.Equal(t, 30.0, suggestion.LastPrice)
	assert.Nil(t, suggestion.LastPurchaseAt)
	assert.Equal(t, 8, suggestion.SuggestedQty)
}

func TestBuildSuggestionWithPurchaseHistory(t *testing.T) {
	purchasedAt := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	part := models.LowStockPart{PartID: 3, Stock: 1, MinStock: 6, CostPrice: 50}
	lookups := &fakeLookups{
		supplier:    &models.SupplierContact{SupplierID: 9, Name: "Auto Pecas Silva"},
		price:       42.9,
		purchasedAt: &purchasedAt,
	}

	suggestion := buildSuggestion(context.Background(), lookups, part)

	require.NotNil(t, suggestion.Supplier)
	assert.Equal(t, int64(9), suggestion.Supplier.SupplierID)
	assert.Equal(t, 42.9, suggestion.LastPrice)
	require.NotNil(t, suggestion.LastPurchaseAt)
	assert.Equal(t, purchasedAt, *suggestion.LastPurchaseAt)
}

func TestSumCounts(t *testing.T) {
	assert.Equal(t, 0, sumCounts())
	assert.Equal(t, 6, sumCounts(1, 2, 3))
}
