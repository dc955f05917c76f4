package service

import (
	"context"
	"fmt"
	"time"

	"backoffice-service/internal/models"
	"backoffice-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AlertGateway is the data gateway the alert service composes.
// *store.Store satisfies it.
type AlertGateway interface {
	GetLowStockParts(ctx context.Context) ([]models.LowStockPart, error)
	GetReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error)
	GetPendingSales(ctx context.Context) ([]models.PendingSale, error)
	GetPendingPurchases(ctx context.Context) ([]models.PendingPurchase, error)
	CountAlerts(ctx context.Context) (*models.AlertCount, error)
	GetAlertByID(ctx context.Context, id int64) (*models.Alert, error)
	TransitionAlert(ctx context.Context, id int64, status string, userID int64) (bool, error)
}

// AlertEventPublisher publishes alert lifecycle events.
type AlertEventPublisher interface {
	PublishAlertResolved(ctx context.Context, event *models.AlertResolvedEvent) error
	PublishAlertDismissed(ctx context.Context, event *models.AlertDismissedEvent) error
}

// AlertService composes gateway reads into unified views and owns the
// persisted alert lifecycle.
type AlertService struct {
	gateway AlertGateway
	events  AlertEventPublisher
	logger  *zap.Logger
}

// NewAlertService creates a new alert service. events may be nil when no
// broker is wired (tests).
func NewAlertService(gateway AlertGateway, events AlertEventPublisher) *AlertService {
	return &AlertService{
		gateway: gateway,
		events:  events,
		logger:  util.GetLogger(),
	}
}

// GetAllAlerts fetches the three alert categories concurrently and
// returns the bundle. Any failing category fails the whole call; there
// is no partial bundle.
func (s *AlertService) GetAllAlerts(ctx context.Context) (*models.AlertBundle, error) {
	ctx, span := util.StartSpan(ctx, "AlertService.GetAllAlerts")
	defer span.End()

	var bundle models.AlertBundle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		parts, err := s.gateway.GetLowStockParts(gctx)
		if err != nil {
			util.AlertFetchesFailedTotal.WithLabelValues("low_stock").Inc()
			return err
		}
		bundle.LowStock = parts
		return nil
	})
	g.Go(func() error {
		sales, err := s.gateway.GetPendingSales(gctx)
		if err != nil {
			util.AlertFetchesFailedTotal.WithLabelValues("pending_sales").Inc()
			return err
		}
		bundle.PendingSales = sales
		return nil
	})
	g.Go(func() error {
		purchases, err := s.gateway.GetPendingPurchases(gctx)
		if err != nil {
			util.AlertFetchesFailedTotal.WithLabelValues("pending_purchases").Inc()
			return err
		}
		bundle.PendingPurchases = purchases
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle.LowStock = nonNilSlice(bundle.LowStock)
	bundle.PendingSales = nonNilSlice(bundle.PendingSales)
	bundle.PendingPurchases = nonNilSlice(bundle.PendingPurchases)

	bundle.Summary = models.AlertCount{
		LowStock:         len(bundle.LowStock),
		PendingSales:     len(bundle.PendingSales),
		PendingPurchases: len(bundle.PendingPurchases),
	}
	bundle.Summary.Total = bundle.Summary.LowStock + bundle.Summary.PendingSales + bundle.Summary.PendingPurchases

	return &bundle, nil
}

// GetLowStock lists low-stock parts
func (s *AlertService) GetLowStock(ctx context.Context) ([]models.LowStockPart, error) {
	parts, err := s.gateway.GetLowStockParts(ctx)
	return nonNilSlice(parts), err
}

// GetReorderSuggestions lists enriched reorder suggestions
func (s *AlertService) GetReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error) {
	suggestions, err := s.gateway.GetReorderSuggestions(ctx)
	return nonNilSlice(suggestions), err
}

// GetPendingSales lists pending sale orders
func (s *AlertService) GetPendingSales(ctx context.Context) ([]models.PendingSale, error) {
	sales, err := s.gateway.GetPendingSales(ctx)
	return nonNilSlice(sales), err
}

// GetPendingPurchases lists pending purchase orders
func (s *AlertService) GetPendingPurchases(ctx context.Context) ([]models.PendingPurchase, error) {
	purchases, err := s.gateway.GetPendingPurchases(ctx)
	return nonNilSlice(purchases), err
}

// GetStats fetches all four category reads concurrently and returns the
// counts only. All-or-nothing, like GetAllAlerts.
func (s *AlertService) GetStats(ctx context.Context) (*models.AlertStats, error) {
	ctx, span := util.StartSpan(ctx, "AlertService.GetStats")
	defer span.End()

	var stats models.AlertStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		parts, err := s.gateway.GetLowStockParts(gctx)
		if err != nil {
			return err
		}
		stats.LowStock = len(parts)
		return nil
	})
	g.Go(func() error {
		suggestions, err := s.gateway.GetReorderSuggestions(gctx)
		if err != nil {
			return err
		}
		stats.Reorder = len(suggestions)
		return nil
	})
	g.Go(func() error {
		sales, err := s.gateway.GetPendingSales(gctx)
		if err != nil {
			return err
		}
		stats.PendingSales = len(sales)
		return nil
	})
	g.Go(func() error {
		purchases, err := s.gateway.GetPendingPurchases(gctx)
		if err != nil {
			return err
		}
		stats.PendingPurchases = len(purchases)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Total = stats.LowStock + stats.PendingSales + stats.PendingPurchases

	util.LowStockParts.Set(float64(stats.LowStock))
	util.PendingSales.Set(float64(stats.PendingSales))
	util.PendingPurchases.Set(float64(stats.PendingPurchases))

	return &stats, nil
}

// GetAlertCount returns the three-category counter
func (s *AlertService) GetAlertCount(ctx context.Context) (*models.AlertCount, error) {
	count, err := s.gateway.CountAlerts(ctx)
	if err != nil {
		return nil, err
	}

	util.LowStockParts.Set(float64(count.LowStock))
	util.PendingSales.Set(float64(count.PendingSales))
	util.PendingPurchases.Set(float64(count.PendingPurchases))

	return count, nil
}

// ResolveAlert transitions an open alert to resolved
func (s *AlertService) ResolveAlert(ctx context.Context, alertID, userID int64) (*models.Alert, string, error) {
	ctx, span := util.StartSpan(ctx, "AlertService.ResolveAlert")
	defer span.End()

	updated, err := s.transition(ctx, alertID, userID, models.AlertStatusResolved)
	if err != nil {
		return nil, "", err
	}

	util.AlertsResolvedTotal.Inc()
	s.logger.Info("Alert resolved",
		zap.Int64("alert_id", alertID),
		zap.Int64("user_id", userID))

	if s.events != nil {
		event := &models.AlertResolvedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeAlertResolved,
				Timestamp: time.Now(),
			},
			AlertID:   alertID,
			AlertType: updated.Type,
			UserID:    userID,
		}
		if err := s.events.PublishAlertResolved(ctx, event); err != nil {
			s.logger.Error("Failed to publish AlertResolved event", zap.Error(err))
		}
	}

	return updated, "Alerta resolvido com sucesso", nil
}

// DismissAlert transitions an open alert to dismissed. Resolved and
// dismissed alerts are both terminal; dismissing twice fails.
func (s *AlertService) DismissAlert(ctx context.Context, alertID, userID int64) (*models.Alert, string, error) {
	ctx, span := util.StartSpan(ctx, "AlertService.DismissAlert")
	defer span.End()

	updated, err := s.transition(ctx, alertID, userID, models.AlertStatusDismissed)
	if err != nil {
		return nil, "", err
	}

	util.AlertsDismissedTotal.Inc()
	s.logger.Info("Alert dismissed",
		zap.Int64("alert_id", alertID),
		zap.Int64("user_id", userID))

	if s.events != nil {
		event := &models.AlertDismissedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeAlertDismissed,
				Timestamp: time.Now(),
			},
			AlertID:   alertID,
			AlertType: updated.Type,
			UserID:    userID,
		}
		if err := s.events.PublishAlertDismissed(ctx, event); err != nil {
			s.logger.Error("Failed to publish AlertDismissed event", zap.Error(err))
		}
	}

	return updated, "Alerta dispensado com sucesso", nil
}

// nonNilSlice keeps empty lists rendering as [] instead of null in the
// response envelope.
func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *AlertService) transition(ctx context.Context, alertID, userID int64, target string) (*models.Alert, error) {
	alert, err := s.gateway.GetAlertByID(ctx, alertID)
	if err != nil {
		util.AlertTransitionsFailedTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if alert.Status != models.AlertStatusOpen {
		util.AlertTransitionsFailedTotal.WithLabelValues("invalid_state").Inc()
		return nil, fmt.Errorf("%w: alert %d is %s", ErrAlertNotOpen, alertID, alert.Status)
	}

	ok, err := s.gateway.TransitionAlert(ctx, alertID, target, userID)
	if err != nil {
		util.AlertTransitionsFailedTotal.WithLabelValues("db_error").Inc()
		return nil, err
	}
	if !ok {
		// Lost a concurrent race or the row vanished between the read
		// and the UPDATE.
		util.AlertTransitionsFailedTotal.WithLabelValues("no_rows").Inc()
		return nil, fmt.Errorf("%w: alert %d", ErrNoRowsAffected, alertID)
	}

	return s.gateway.GetAlertByID(ctx, alertID)
}
