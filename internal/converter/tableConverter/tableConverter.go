package tableConverter

import "github.com/KotFed0t/quotes_sheet_sync/internal/model"

// SymbolColumn is the header of the column holding the ticker.
const SymbolColumn = "Mã"

// Shape returns a copy of table with the symbol as its first column. An
// existing SymbolColumn is moved to the front and overwritten with symbol.
func Shape(symbol string, table model.Table) model.Table {
	src := table.Clone()
	skip := src.ColumnIndex(SymbolColumn)

	res := model.Table{
		Columns: make([]string, 0, len(src.Columns)+1),
		Rows:    make([][]any, 0, len(src.Rows)),
	}

	res.Columns = append(res.Columns, SymbolColumn)
	for i, c := range src.Columns {
		if i == skip {
			continue
		}
		res.Columns = append(res.Columns, c)
	}

	for _, row := range src.Rows {
		newRow := make([]any, 0, len(res.Columns))
		newRow = append(newRow, symbol)
		for i, v := range row {
			if i == skip {
				continue
			}
			newRow = append(newRow, v)
		}
		res.Rows = append(res.Rows, newRow)
	}

	return res
}
