package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KotFed0t/quotes_sheet_sync/internal/auth"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/service/quotesSyncService"
	"github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest"
	"github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest/middleware"
	"github.com/KotFed0t/quotes_sheet_sync/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writerFactory(writer quotesSyncService.SheetWriter, err error) rest.WriterFactory {
	return func(context.Context) (quotesSyncService.SheetWriter, error) {
		return writer, err
	}
}

func doSync(t *testing.T, ctrl *rest.Controller) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	rec := httptest.NewRecorder()
	rest.NewRouter(ctrl).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleSync_Success(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	srv := mocks.NewMockQuotesSyncService(mockCtrl)
	writer := mocks.NewMockSheetWriter(mockCtrl)
	notifier := mocks.NewMockNotifier(mockCtrl)

	report := model.SyncReport{Status: model.StatusSuccess, Message: "quotes updated successfully, 14 cells updated", UpdatedCells: 14}
	srv.EXPECT().Sync(gomock.Any(), writer).Return(report)
	notifier.EXPECT().Notify(gomock.Any(), report).Return(nil)

	rec, body := doSync(t, rest.NewController(srv, writerFactory(writer, nil), notifier))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "success", "message": report.Message}, body)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestHandleSync_WarningIsOK(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	srv := mocks.NewMockQuotesSyncService(mockCtrl)
	writer := mocks.NewMockSheetWriter(mockCtrl)

	srv.EXPECT().Sync(gomock.Any(), writer).Return(model.SyncReport{Status: model.StatusWarning, Message: "no data found to update the sheet"})

	rec, body := doSync(t, rest.NewController(srv, writerFactory(writer, nil), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "warning", body["status"])
}

func TestHandleSync_AuthFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "missing credentials",
			err:      fmt.Errorf("%w: file credentials.json does not exist", auth.ErrCredentialsNotFound),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no token",
			err:      auth.ErrTokenNotFound,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "expired token",
			err:      auth.ErrTokenExpired,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "client construction",
			err:      errors.New("dial tcp: lookup sheets.googleapis.com: no such host"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			// no expectations: the service must not run without a writer
			srv := mocks.NewMockQuotesSyncService(mockCtrl)
			notifier := mocks.NewMockNotifier(mockCtrl)

			notifier.EXPECT().
				Notify(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, report model.SyncReport) error {
					assert.Equal(t, model.StatusError, report.Status)
					return nil
				})

			rec, body := doSync(t, rest.NewController(srv, writerFactory(nil, tt.err), notifier))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "error", body["status"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandleSync_NotifierErrorIsIgnored(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	srv := mocks.NewMockQuotesSyncService(mockCtrl)
	writer := mocks.NewMockSheetWriter(mockCtrl)
	notifier := mocks.NewMockNotifier(mockCtrl)

	srv.EXPECT().Sync(gomock.Any(), writer).Return(model.SyncReport{Status: model.StatusSuccess, Message: "ok"})
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("telegram is down"))

	rec, _ := doSync(t, rest.NewController(srv, writerFactory(writer, nil), notifier))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncJob(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	srv := mocks.NewMockQuotesSyncService(mockCtrl)
	writer := mocks.NewMockSheetWriter(mockCtrl)

	gomock.InOrder(
		srv.EXPECT().Sync(gomock.Any(), writer).Return(model.SyncReport{Status: model.StatusWarning}),
		srv.EXPECT().Sync(gomock.Any(), writer).Return(model.SyncReport{Status: model.StatusError, Message: "failed to write data to the sheet: quota"}),
	)

	ctrl := rest.NewController(srv, writerFactory(writer, nil), nil)

	assert.NoError(t, ctrl.SyncJob(context.Background()))
	assert.EqualError(t, ctrl.SyncJob(context.Background()), "failed to write data to the sheet: quota")
}

func TestHealthCheck(t *testing.T) {
	ctrl := rest.NewController(nil, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "rq-1")
	rest.NewRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rq-1", rec.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
