package rest

import (
	"net/http"

	"github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest/middleware"
	"github.com/gorilla/mux"
)

func NewRouter(ctrl *Controller) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logger, middleware.Recover)

	r.HandleFunc("/health", ctrl.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/sync", ctrl.HandleSync).Methods(http.MethodGet, http.MethodPost)

	return r
}
