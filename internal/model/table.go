package model

// Table is a column-named, row-ordered set of cells. Timestamps are kept as
// time.Time until the table is serialized for a sheet.
type Table struct {
	Columns []string
	Rows    [][]any
}

func NewTable(columns ...string) Table {
	return Table{Columns: columns, Rows: [][]any{}}
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t Table) Clone() Table {
	res := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]any, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		res.Rows = append(res.Rows, append([]any(nil), row...))
	}
	return res
}

// ConcatTables appends rows of all tables in order. Columns are those of the
// first table followed by columns that only appear in later ones; cells a
// table doesn't have are nil.
func ConcatTables(tables ...Table) Table {
	res := Table{Rows: [][]any{}}
	index := make(map[string]int)

	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(res.Columns)
				res.Columns = append(res.Columns, c)
			}
		}
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			newRow := make([]any, len(res.Columns))
			for j, c := range t.Columns {
				if j < len(row) {
					newRow[index[c]] = row[j]
				}
			}
			res.Rows = append(res.Rows, newRow)
		}
	}

	return res
}
