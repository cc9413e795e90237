package tcbsModel

type RawBars struct {
	Ticker string `json:"ticker"`
	Data   []Bar  `json:"data"`
}

type Bar struct {
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      float64 `json:"volume"`
	TradingDate string  `json:"tradingDate"`
}
