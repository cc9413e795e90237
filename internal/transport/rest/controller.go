package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KotFed0t/quotes_sheet_sync/internal/auth"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/service/quotesSyncService"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
)

type QuotesSyncService interface {
	Sync(ctx context.Context, writer quotesSyncService.SheetWriter) model.SyncReport
}

// WriterFactory returns a writer that is already authenticated.
type WriterFactory func(ctx context.Context) (quotesSyncService.SheetWriter, error)

type Notifier interface {
	Notify(ctx context.Context, report model.SyncReport) error
}

type Controller struct {
	quotesSyncService QuotesSyncService
	writers           WriterFactory
	notifier          Notifier
}

// NewController accepts a nil notifier.
func NewController(quotesSyncService QuotesSyncService, writers WriterFactory, notifier Notifier) *Controller {
	return &Controller{
		quotesSyncService: quotesSyncService,
		writers:           writers,
		notifier:          notifier,
	}
}

// Sync authenticates the writer before anything is fetched, so an auth
// failure ends the run without touching the quote provider.
func (ctrl *Controller) Sync(ctx context.Context) model.SyncReport {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Controller.Sync"

	var report model.SyncReport

	writer, err := ctrl.writers(ctx)
	if err != nil {
		slog.Error("can't get authenticated sheet writer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		report = authFailureReport(err)
	} else {
		report = ctrl.quotesSyncService.Sync(ctx, writer)
	}

	if ctrl.notifier != nil {
		// a failed notification doesn't change the outcome
		_ = ctrl.notifier.Notify(ctx, report)
	}

	slog.Info("sync finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("status", string(report.Status)), slog.String("message", report.Message))

	return report
}

// SyncJob adapts Sync to the scheduler.
func (ctrl *Controller) SyncJob(ctx context.Context) error {
	report := ctrl.Sync(ctx)
	if report.Status == model.StatusError {
		return errors.New(report.Message)
	}
	return nil
}

func (ctrl *Controller) HandleSync(w http.ResponseWriter, r *http.Request) {
	report := ctrl.Sync(r.Context())
	respondJSON(w, report.HTTPCode(), report)
}

func (ctrl *Controller) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func authFailureReport(err error) model.SyncReport {
	switch {
	case errors.Is(err, auth.ErrCredentialsNotFound):
		return model.SyncReport{
			Status:     model.StatusError,
			Message:    "credentials are missing: " + err.Error(),
			BadRequest: true,
		}
	case errors.Is(err, auth.ErrTokenNotFound), errors.Is(err, auth.ErrTokenExpired):
		return model.SyncReport{
			Status:     model.StatusError,
			Message:    "sheets api is not authorized: " + err.Error(),
			BadRequest: true,
		}
	default:
		return model.SyncReport{
			Status:  model.StatusError,
			Message: "can't connect to google sheets api",
		}
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed encoding response", slog.String("err", err.Error()))
	}
}
