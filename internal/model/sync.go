package model

import "net/http"

type SyncStatus string

const (
	StatusSuccess SyncStatus = "success"
	StatusWarning SyncStatus = "warning"
	StatusError   SyncStatus = "error"
)

// SyncReport is what every trigger gets back from one sync.
type SyncReport struct {
	Status       SyncStatus     `json:"status"`
	Message      string         `json:"message"`
	UpdatedCells int64          `json:"-"`
	Symbols      []SymbolResult `json:"-"`
	// BadRequest marks errors caused by missing local setup rather than a failed call.
	BadRequest bool `json:"-"`
}

func (r SyncReport) HTTPCode() int {
	switch {
	case r.Status != StatusError:
		return http.StatusOK
	case r.BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
