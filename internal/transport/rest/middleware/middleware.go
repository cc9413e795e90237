package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/utils"
)

const RequestIDHeader = "X-Request-ID"

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		ctx := utils.CtxWithRqID(r.Context(), r.Header.Get(RequestIDHeader))
		rqID := utils.GetRequestIDFromCtx(ctx)
		w.Header().Set(RequestIDHeader, rqID)

		slog.Info(
			"start request",
			slog.String("rqID", rqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		defer func() {
			slog.Info(
				"request finished",
				slog.String("rqID", rqID),
				slog.String("request duration", fmt.Sprintf("%.2fs", time.Since(now).Seconds())),
			)
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error(
					"Panic recovered in http handler",
					slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())),
					slog.Any("panic", rec),
					slog.String("stacktrace", string(debug.Stack())),
				)
				http.Error(w, `{"status":"error","message":"internal error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
