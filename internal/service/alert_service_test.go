package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"backoffice-service/internal/models"
	"backoffice-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu sync.Mutex

	lowStock    []models.LowStockPart
	suggestions []models.ReorderSuggestion
	sales       []models.PendingSale
	purchases   []models.PendingPurchase
	alerts      map[int64]*models.Alert

	lowStockErr    error
	suggestionsErr error
	salesErr       error
	purchasesErr   error
	transitionErr  error
}

func (f *fakeGateway) GetLowStockParts(ctx context.Context) ([]models.LowStockPart, error) {
	return f.lowStock, f.lowStockErr
}

func (f *fakeGateway) GetReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error) {
	return f.suggestions, f.suggestionsErr
}

func (f *fakeGateway) GetPendingSales(ctx context.Context) ([]models.PendingSale, error) {
	return f.sales, f.salesErr
}

func (f *fakeGateway) GetPendingPurchases(ctx context.Context) ([]models.PendingPurchase, error) {
	return f.purchases, f.purchasesErr
}

func (f *fakeGateway) CountAlerts(ctx context.Context) (*models.AlertCount, error) {
	count := models.AlertCount{
		LowStock:         len(f.lowStock),
		PendingSales:     len(f.sales),
		PendingPurchases: len(f.purchases),
	}
	count.Total = count.LowStock + count.PendingSales + count.PendingPurchases
	return &count, nil
}

func (f *fakeGateway) GetAlertByID(ctx context.Context, id int64) (*models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	alert, ok := f.alerts[id]
	if !ok {
		return nil, store.ErrAlertNotFound
	}
	copied := *alert
	return &copied, nil
}

func (f *fakeGateway) TransitionAlert(ctx context.Context, id int64, status string, userID int64) (bool, error) {
	if f.transitionErr != nil {
		return false, f.transitionErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	alert, ok := f.alerts[id]
	if !ok || alert.Status != models.AlertStatusOpen {
		return false, nil
	}
	now := time.Now()
	alert.Status = status
	alert.UserID = &userID
	alert.ResolvedAt = &now
	return true, nil
}

func openAlert(id int64) *models.Alert {
	return &models.Alert{
		ID:        id,
		Type:      "manual",
		Title:     "Conferir divergencia de estoque",
		Status:    models.AlertStatusOpen,
		CreatedAt: time.Now(),
	}
}

func TestGetAllAlertsSummary(t *testing.T) {
	gw := &fakeGateway{
		lowStock:  []models.LowStockPart{{PartID: 1}, {PartID: 2}},
		sales:     []models.PendingSale{{SaleID: 10}},
		purchases: []models.PendingPurchase{{PurchaseID: 20}, {PurchaseID: 21}, {PurchaseID: 22}},
	}
	svc := NewAlertService(gw, nil)

	bundle, err := svc.GetAllAlerts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, bundle.Summary.LowStock)
	assert.Equal(t, 1, bundle.Summary.PendingSales)
	assert.Equal(t, 3, bundle.Summary.PendingPurchases)
	assert.Equal(t, bundle.Summary.LowStock+bundle.Summary.PendingSales+bundle.Summary.PendingPurchases,
		bundle.Summary.Total)
}

func TestGetAllAlertsFailsFast(t *testing.T) {
	gw := &fakeGateway{
		lowStock: []models.LowStockPart{{PartID: 1}},
		salesErr: errors.New("failed to list pending sales: connection refused"),
	}
	svc := NewAlertService(gw, nil)

	bundle, err := svc.GetAllAlerts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, bundle)
}

func TestGetStatsTotal(t *testing.T) {
	gw := &fakeGateway{
		lowStock:    []models.LowStockPart{{PartID: 1}, {PartID: 2}},
		suggestions: []models.ReorderSuggestion{{}, {}},
		sales:       []models.PendingSale{{SaleID: 10}},
	}
	svc := NewAlertService(gw, nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 2, stats.Reorder)
	assert.Equal(t, 1, stats.PendingSales)
	assert.Equal(t, 0, stats.PendingPurchases)
	// Reorder overlaps low stock and stays out of the grand total
	assert.Equal(t, 3, stats.Total)
}

func TestResolveAlert(t *testing.T) {
	gw := &fakeGateway{alerts: map[int64]*models.Alert{7: openAlert(7)}}
	svc := NewAlertService(gw, nil)

	alert, message, err := svc.ResolveAlert(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, message)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)
	require.NotNil(t, alert.UserID)
	assert.Equal(t, int64(42), *alert.UserID)
	assert.NotNil(t, alert.ResolvedAt)
}

func TestResolveAlertTwice(t *testing.T) {
	gw := &fakeGateway{alerts: map[int64]*models.Alert{7: openAlert(7)}}
	svc := NewAlertService(gw, nil)

	_, _, err := svc.ResolveAlert(context.Background(), 7, 42)
	require.NoError(t, err)

	_, _, err = svc.ResolveAlert(context.Background(), 7, 43)
	assert.ErrorIs(t, err, ErrAlertNotOpen)
}

func TestResolveAlertNotFound(t *testing.T) {
	gw := &fakeGateway{alerts: map[int64]*models.Alert{}}
	svc := NewAlertService(gw, nil)

	_, _, err := svc.ResolveAlert(context.Background(), 99, 42)
	assert.ErrorIs(t, err, store.ErrAlertNotFound)
}

func TestDismissAlert(t *testing.T) {
	gw := &fakeGateway{alerts: map[int64]*models.Alert{5: openAlert(5)}}
	svc := NewAlertService(gw, nil)

	alert, _, err := svc.DismissAlert(context.Background(), 5, 42)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDismissed, alert.Status)
}

func TestDismissAlertAlreadyDismissed(t *testing.T) {
	dismissed := openAlert(5)
	dismissed.Status = models.AlertStatusDismissed
	gw := &fakeGateway{alerts: map[int64]*models.Alert{5: dismissed}}
	svc := NewAlertService(gw, nil)

	// Dismissed is terminal: dismissing again is rejected
	_, _, err := svc.DismissAlert(context.Background(), 5, 42)
	assert.ErrorIs(t, err, ErrAlertNotOpen)
}

func TestResolveAlertLostRace(t *testing.T) {
	gw := &fakeGateway{alerts: map[int64]*models.Alert{7: openAlert(7)}}
	svc := NewAlertService(gw, nil)

	// Simulate a concurrent transition landing between the read and
	// the UPDATE: the row is open at read time but the write hits
	// nothing.
	raced := &racingGateway{fakeGateway: gw}
	svc = NewAlertService(raced, nil)

	_, _, err := svc.ResolveAlert(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrNoRowsAffected)
}

// racingGateway flips the alert to resolved after the service has read
// it but before the transition lands.
type racingGateway struct {
	*fakeGateway
}

func (r *racingGateway) TransitionAlert(ctx context.Context, id int64, status string, userID int64) (bool, error) {
	r.mu.Lock()
	if alert, ok := r.alerts[id]; ok && alert.Status == models.AlertStatusOpen {
		other := int64(999)
		alert.Status = models.AlertStatusResolved
		alert.UserID = &other
	}
	r.mu.Unlock()
	return r.fakeGateway.TransitionAlert(ctx, id, status, userID)
}

func TestCountTotalsMatchCategories(t *testing.T) {
	gw := &fakeGateway{
		lowStock:  []models.LowStockPart{{PartID: 1}},
		sales:     []models.PendingSale{{SaleID: 1}, {SaleID: 2}},
		purchases: []models.PendingPurchase{{PurchaseID: 1}},
	}
	svc := NewAlertService(gw, nil)

	count, err := svc.GetAlertCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, count.LowStock+count.PendingSales+count.PendingPurchases, count.Total)
}
