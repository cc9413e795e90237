package sheetConverter

import (
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
)

// DateLayout is how temporal cells are rendered, sheets reject native dates.
const DateLayout = "02/01/2006"

func ToValueGrid(table model.Table) model.ValueGrid {
	grid := make(model.ValueGrid, 0, len(table.Rows)+1)

	header := make([]any, 0, len(table.Columns))
	for _, c := range table.Columns {
		header = append(header, c)
	}
	grid = append(grid, header)

	for _, row := range table.Rows {
		values := make([]any, 0, len(row))
		for _, v := range row {
			values = append(values, ToCellValue(v))
		}
		grid = append(grid, values)
	}

	return grid
}

func ToCellValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(DateLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(DateLayout)
	default:
		return v
	}
}
