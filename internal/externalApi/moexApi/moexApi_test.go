package moexApi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model/moexModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const candlesResponse = `{
	"candles": {
		"columns": ["begin", "open", "high", "low", "close", "volume"],
		"data": [
			["2024-01-03 00:00:00", 272.1, 274.5, 271.0, 273.9, 41250310]
		]
	}
}`

func TestMoexApi_GetHistory(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/iss/engines/stock/markets/shares/securities/SBER/candles.json", r.URL.Path)
		assert.Equal(t, "2024-01-03", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-01-03", r.URL.Query().Get("till"))
		assert.Equal(t, dailyInterval, r.URL.Query().Get("interval"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candlesResponse))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.API.Timeout = 5 * time.Second
	cfg.API.MoexApi.Url = srv.URL

	table, err := New(cfg).GetHistory(context.Background(), "sber", day, day)
	require.NoError(t, err)

	require.Equal(t, model.QuoteColumns, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []any{day, 272.1, 274.5, 271.0, 273.9, int64(41250310)}, table.Rows[0])
}

func TestMoexApi_GetHistory_EmptySymbol(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	_, err := New(&config.Config{}).GetHistory(context.Background(), "", day, day)
	assert.ErrorIs(t, err, externalApi.ErrInvalidRequest)
}

func TestMoexApi_parseRawCandles(t *testing.T) {
	api := &MoexApi{}

	tests := []struct {
		name    string
		raw     moexModel.RawCandles
		wantLen int
		wantErr bool
	}{
		{
			name:    "no rows",
			raw:     moexModel.RawCandles{Candles: moexModel.IssTable{Columns: []string{"begin", "close"}, Data: [][]any{}}},
			wantLen: 0,
		},
		{
			name: "short row",
			raw: moexModel.RawCandles{Candles: moexModel.IssTable{
				Columns: []string{"begin", "close"},
				Data:    [][]any{{"2024-01-03 00:00:00"}},
			}},
			wantErr: true,
		},
		{
			name: "unknown column",
			raw: moexModel.RawCandles{Candles: moexModel.IssTable{
				Columns: []string{"value"},
				Data:    [][]any{{1.0}},
			}},
			wantErr: true,
		},
		{
			name: "wrong type",
			raw: moexModel.RawCandles{Candles: moexModel.IssTable{
				Columns: []string{"close"},
				Data:    [][]any{{"273.9"}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := api.parseRawCandles(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, quotes, tt.wantLen)
		})
	}
}
