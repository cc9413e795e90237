package model

import "time"

// QuoteColumns is the column order every quote source returns.
var QuoteColumns = []string{"time", "open", "high", "low", "close", "volume"}

type Quote struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

func QuotesToTable(quotes []Quote) Table {
	t := NewTable(QuoteColumns...)
	for _, q := range quotes {
		t.Rows = append(t.Rows, []any{q.Time, q.Open, q.High, q.Low, q.Close, q.Volume})
	}
	return t
}
