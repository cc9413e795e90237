package moexModel

type RawCandles struct {
	Candles IssTable `json:"candles"`
}

// IssTable is how ISS encodes every block: column names plus positional rows.
type IssTable struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}
