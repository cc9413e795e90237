package quotesSyncService

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/internal/converter/tableConverter"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
)

type QuoteSource interface {
	GetHistory(ctx context.Context, symbol string, start, end time.Time) (model.Table, error)
}

type SheetWriter interface {
	Write(ctx context.Context, dest model.RangeRef, table model.Table) (model.WriteResult, error)
}

type QuotesSyncService struct {
	quotes  QuoteSource
	symbols []string
	dest    model.RangeRef
	loc     *time.Location
	now     func() time.Time
}

type Option func(s *QuotesSyncService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *QuotesSyncService) {
		s.now = now
	}
}

func New(quotes QuoteSource, symbols []string, dest model.RangeRef, loc *time.Location, opts ...Option) *QuotesSyncService {
	if loc == nil {
		loc = time.UTC
	}
	s := &QuotesSyncService{
		quotes:  quotes,
		symbols: append([]string(nil), symbols...),
		dest:    dest,
		loc:     loc,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run fetches day for every symbol in order. Per-symbol failures and empty
// results are recorded and skipped, they never abort the run.
func (s *QuotesSyncService) Run(ctx context.Context, symbols []string, day time.Time) model.RunResult {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "QuotesSyncService.Run"
	date := day.Format(time.DateOnly)

	slog.Debug("Run start", slog.String("rqID", rqID), slog.String("op", op), slog.Any("symbols", symbols), slog.String("day", date))

	res := model.RunResult{
		Day:     day,
		Outcome: model.OutcomeNoDataFound,
		Table:   model.Table{Rows: [][]any{}},
		Symbols: make([]model.SymbolResult, 0, len(symbols)),
	}
	shaped := make([]model.Table, 0, len(symbols))

	for _, symbol := range symbols {
		slog.Info("fetching quotes", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol), slog.String("day", date))

		table, err := s.quotes.GetHistory(ctx, symbol, day, day)
		if err != nil {
			slog.Error("failed to fetch quotes, skipping symbol", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol), slog.String("err", err.Error()))
			res.Symbols = append(res.Symbols, model.SymbolResult{Symbol: symbol, State: model.SymbolFailed, Err: err})
			continue
		}

		if table.Empty() {
			slog.Warn("no quotes found, skipping symbol", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol), slog.String("day", date))
			res.Symbols = append(res.Symbols, model.SymbolResult{Symbol: symbol, State: model.SymbolEmpty})
			continue
		}

		symbolRes := model.SymbolResult{Symbol: symbol, State: model.SymbolFetched, Rows: table.Len()}
		symbolRes.Close, symbolRes.HasClose = lastClose(table)

		attrs := []any{slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol), slog.Int("rows", table.Len())}
		if symbolRes.HasClose {
			attrs = append(attrs, slog.Float64("close", symbolRes.Close))
		}
		slog.Info("quotes fetched", attrs...)

		shaped = append(shaped, tableConverter.Shape(symbol, table))
		res.Symbols = append(res.Symbols, symbolRes)
	}

	if len(shaped) > 0 {
		res.Table = model.ConcatTables(shaped...)
		res.Outcome = model.OutcomeReady
	}

	slog.Debug(
		"Run completed",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("rows", res.Table.Len()),
		slog.Int("failed", res.Count(model.SymbolFailed)),
		slog.Int("empty", res.Count(model.SymbolEmpty)),
	)

	return res
}

// Sync runs the configured symbols for today and overwrites the destination
// with the result. Only run-level outcomes are reported.
func (s *QuotesSyncService) Sync(ctx context.Context, writer SheetWriter) model.SyncReport {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "QuotesSyncService.Sync"

	today := s.now().In(s.loc)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)

	run := s.Run(ctx, s.symbols, day)

	if run.Outcome == model.OutcomeNoDataFound {
		slog.Warn("no data found for any symbol", slog.String("rqID", rqID), slog.String("op", op), slog.String("day", day.Format(time.DateOnly)))
		return model.SyncReport{
			Status:  model.StatusWarning,
			Message: "no data found to update the sheet",
			Symbols: run.Symbols,
		}
	}

	slog.Info("writing quotes", slog.String("rqID", rqID), slog.String("op", op), slog.String("spreadsheetID", s.dest.SpreadsheetID), slog.String("range", s.dest.Range))

	writeRes, err := writer.Write(ctx, s.dest, run.Table)
	if err != nil {
		slog.Error("failed to write quotes", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.SyncReport{
			Status:  model.StatusError,
			Message: fmt.Sprintf("failed to write data to the sheet: %s", err),
			Symbols: run.Symbols,
		}
	}

	return model.SyncReport{
		Status:       model.StatusSuccess,
		Message:      fmt.Sprintf("quotes updated successfully, %d cells updated", writeRes.UpdatedCells),
		UpdatedCells: writeRes.UpdatedCells,
		Symbols:      run.Symbols,
	}
}

func lastClose(table model.Table) (float64, bool) {
	idx := table.ColumnIndex("close")
	if idx == -1 || table.Empty() {
		return 0, false
	}
	row := table.Rows[table.Len()-1]
	if idx >= len(row) {
		return 0, false
	}
	v, ok := row[idx].(float64)
	return v, ok
}
