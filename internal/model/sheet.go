package model

// ValueGrid is a header row followed by data rows, holding only values a
// spreadsheet API accepts.
type ValueGrid [][]any

type RangeRef struct {
	SpreadsheetID string
	Range         string
}

type WriteResult struct {
	UpdatedRange   string
	UpdatedRows    int64
	UpdatedColumns int64
	UpdatedCells   int64
}
