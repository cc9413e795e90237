package xslsxGenerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/KotFed0t/quotes_sheet_sync/internal/converter/sheetConverter"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XSLSXGenerator writes value grids into a workbook on disk. It stands in
// for google sheets on local runs, dest.SpreadsheetID is ignored.
type XSLSXGenerator struct {
	path string
}

func New(path string) *XSLSXGenerator {
	return &XSLSXGenerator{path: path}
}

func (g *XSLSXGenerator) Write(ctx context.Context, dest model.RangeRef, table model.Table) (res model.WriteResult, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "XSLSXGenerator.Write"

	if table.Empty() {
		return model.WriteResult{}, externalApi.ErrEmptyTable
	}

	slog.Debug("Write start", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", g.path), slog.String("range", dest.Range))

	defer func() {
		if err != nil {
			slog.Error("failed writing workbook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			err = fmt.Errorf("%w: %w", externalApi.ErrWriteFailed, err)
		}
	}()

	sheetName, topLeft := splitRange(dest.Range)

	f, created, err := g.open()
	if err != nil {
		return model.WriteResult{}, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return model.WriteResult{}, err
	}
	if idx == -1 {
		if _, err = f.NewSheet(sheetName); err != nil {
			return model.WriteResult{}, err
		}
		if created && sheetName != defaultSheet {
			if err := f.DeleteSheet(defaultSheet); err != nil {
				slog.Error("got error while deleting Sheet1", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			}
		}
	}

	col, row, err := excelize.CellNameToCoordinates(topLeft)
	if err != nil {
		return model.WriteResult{}, err
	}

	grid := sheetConverter.ToValueGrid(table)
	var maxCols int
	for i, values := range grid {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return model.WriteResult{}, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return model.WriteResult{}, err
		}
		maxCols = max(maxCols, len(values))
	}

	if err := f.SaveAs(g.path); err != nil {
		return model.WriteResult{}, err
	}

	bottomRight, err := excelize.CoordinatesToCellName(col+maxCols-1, row+len(grid)-1)
	if err != nil {
		return model.WriteResult{}, err
	}

	res = model.WriteResult{
		UpdatedRange:   fmt.Sprintf("%s!%s:%s", sheetName, topLeft, bottomRight),
		UpdatedRows:    int64(len(grid)),
		UpdatedColumns: int64(maxCols),
		UpdatedCells:   int64(len(grid) * maxCols),
	}

	slog.Info("values updated in workbook", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("updatedCells", res.UpdatedCells), slog.String("updatedRange", res.UpdatedRange))

	return res, nil
}

func (g *XSLSXGenerator) open() (f *excelize.File, created bool, err error) {
	_, err = os.Stat(g.path)
	if errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	f, err = excelize.OpenFile(g.path)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// splitRange turns "Sheet!B2:F9" into ("Sheet", "B2"); a bare name starts at A1.
func splitRange(rangeName string) (sheet, topLeft string) {
	sheet, cells, found := strings.Cut(rangeName, "!")
	sheet = strings.Trim(sheet, "'")
	if sheet == "" {
		sheet = defaultSheet
	}
	if !found || cells == "" {
		return sheet, "A1"
	}
	topLeft, _, _ = strings.Cut(cells, ":")
	return sheet, topLeft
}
