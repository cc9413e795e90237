package moexApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model/moexModel"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/go-resty/resty/v2"
)

const (
	candlesUrl       = "/iss/engines/stock/markets/shares/securities/%s/candles.json"
	dailyInterval    = "24"
	candleTimeLayout = "2006-01-02 15:04:05"
)

type MoexApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *MoexApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.MoexApi.Url)
	return &MoexApi{client: client}
}

// GetHistory returns daily candles of symbol between start and end inclusive.
func (a *MoexApi) GetHistory(ctx context.Context, symbol string, start, end time.Time) (model.Table, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "MoexApi.GetHistory"

	if err := externalApi.ValidateHistoryRequest(symbol, start, end); err != nil {
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	ticker := strings.ToUpper(symbol)
	params := map[string]string{
		"iss.meta":        "off",
		"interval":        dailyInterval,
		"from":            start.Format(time.DateOnly),
		"till":            end.Format(time.DateOnly),
		"candles.columns": "begin,open,high,low,close,volume",
	}

	slog.Debug("start MoexApi.GetHistory request", slog.String("rqID", rqID), slog.String("op", op), slog.String("ticker", ticker))

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(fmt.Sprintf(candlesUrl, ticker))

	if err != nil {
		slog.Error("error while dialing MoexApi", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	if resp.IsError() {
		slog.Error("MoexApi responded with error status", slog.String("rqID", rqID), slog.String("op", op), slog.Int("status", resp.StatusCode()))
		return model.Table{}, externalApi.NewFetchError(symbol, fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	rawCandles := moexModel.RawCandles{}
	err = json.Unmarshal(resp.Body(), &rawCandles)
	if err != nil {
		slog.Error("can't unmarshall response into moexModel.RawCandles", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	quotes, err := a.parseRawCandles(rawCandles)
	if err != nil {
		slog.Error("can't parse raw data", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	slog.Debug("MoexApi.GetHistory request complete", slog.String("rqID", rqID), slog.String("op", op), slog.Int("rows", len(quotes)))

	return model.QuotesToTable(quotes), nil
}

func (a *MoexApi) parseRawCandles(raw moexModel.RawCandles) ([]model.Quote, error) {
	res := make([]model.Quote, 0, len(raw.Candles.Data))

	for i := 0; i < len(raw.Candles.Data); i++ {
		if len(raw.Candles.Data[i]) != len(raw.Candles.Columns) {
			return nil, fmt.Errorf("invalid candle at row %d", i)
		}

		quote := model.Quote{}

		for j := 0; j < len(raw.Candles.Columns); j++ {
			ok := true
			value := raw.Candles.Data[i][j]
			switch raw.Candles.Columns[j] {
			case "begin":
				var s string
				s, ok = value.(string)
				if ok {
					t, err := time.ParseInLocation(candleTimeLayout, s, time.UTC)
					if err != nil {
						return nil, fmt.Errorf("failed parse begin = %s, err: %w", s, err)
					}
					quote.Time = t
				}
			case "open":
				quote.Open, ok = value.(float64)
			case "high":
				quote.High, ok = value.(float64)
			case "low":
				quote.Low, ok = value.(float64)
			case "close":
				quote.Close, ok = value.(float64)
			case "volume":
				var f float64
				f, ok = value.(float64)
				if ok {
					quote.Volume = int64(f)
				}
			default:
				return nil, fmt.Errorf("unknown column %s", raw.Candles.Columns[j])
			}

			if !ok {
				return nil, fmt.Errorf("invalid type %s = %v", raw.Candles.Columns[j], value)
			}
		}
		res = append(res, quote)
	}

	return res, nil
}
