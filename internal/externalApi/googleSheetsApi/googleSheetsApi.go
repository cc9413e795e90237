package googleSheetsApi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KotFed0t/quotes_sheet_sync/internal/converter/sheetConverter"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputOption RAW stores values as given, without parsing them like typed input.
const valueInputOption = "RAW"

type GoogleSheetsApi struct {
	srv *sheets.Service
}

func New(ctx context.Context, opts ...option.ClientOption) (*GoogleSheetsApi, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		slog.Error("failed on sheets.NewService", slog.String("err", err.Error()))
		return nil, err
	}
	return &GoogleSheetsApi{srv: srv}, nil
}

// Write overwrites dest, starting at its top-left cell, with the header and
// rows of table in a single call. Cells outside the written rectangle are kept.
func (a *GoogleSheetsApi) Write(ctx context.Context, dest model.RangeRef, table model.Table) (model.WriteResult, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "GoogleSheetsApi.Write"

	if table.Empty() {
		return model.WriteResult{}, externalApi.ErrEmptyTable
	}

	slog.Debug(
		"Write start",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("spreadsheetID", dest.SpreadsheetID),
		slog.String("range", dest.Range),
		slog.Int("rows", table.Len()),
	)

	valueRange := &sheets.ValueRange{Values: sheetConverter.ToValueGrid(table)}

	resp, err := a.srv.Spreadsheets.Values.
		Update(dest.SpreadsheetID, dest.Range, valueRange).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		slog.Error("failed on updating values in google sheets", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.WriteResult{}, fmt.Errorf("%w: %w", externalApi.ErrWriteFailed, err)
	}

	res := model.WriteResult{
		UpdatedRange:   resp.UpdatedRange,
		UpdatedRows:    resp.UpdatedRows,
		UpdatedColumns: resp.UpdatedColumns,
		UpdatedCells:   resp.UpdatedCells,
	}

	slog.Info("values updated in google sheets", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("updatedCells", res.UpdatedCells), slog.String("updatedRange", res.UpdatedRange))

	return res, nil
}
