package tcbsApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model/tcbsModel"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/go-resty/resty/v2"
)

const barsUrl = "/stock-insight/v1/stock/bars-long-term"

// TcbsApi reads end-of-day bars of the Vietnamese market.
type TcbsApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *TcbsApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.TcbsApi.Url)
	return &TcbsApi{client: client}
}

func (a *TcbsApi) GetHistory(ctx context.Context, symbol string, start, end time.Time) (model.Table, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "TcbsApi.GetHistory"

	if err := externalApi.ValidateHistoryRequest(symbol, start, end); err != nil {
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	ticker := strings.ToUpper(symbol)
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	params := map[string]string{
		"ticker":     ticker,
		"type":       "stock",
		"resolution": "D",
		"from":       strconv.FormatInt(from.Unix(), 10),
		"to":         strconv.FormatInt(to.Unix(), 10),
	}

	slog.Debug("start TcbsApi.GetHistory request", slog.String("rqID", rqID), slog.String("op", op), slog.String("ticker", ticker))

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(barsUrl)

	if err != nil {
		slog.Error("error while dialing TcbsApi", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	if resp.IsError() {
		slog.Error("TcbsApi responded with error status", slog.String("rqID", rqID), slog.String("op", op), slog.Int("status", resp.StatusCode()))
		return model.Table{}, externalApi.NewFetchError(symbol, fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	rawBars := tcbsModel.RawBars{}
	err = json.Unmarshal(resp.Body(), &rawBars)
	if err != nil {
		slog.Error("can't unmarshall response into tcbsModel.RawBars", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	quotes, err := a.parseRawBars(rawBars, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		slog.Error("can't parse raw data", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	slog.Debug("TcbsApi.GetHistory request complete", slog.String("rqID", rqID), slog.String("op", op), slog.Int("rows", len(quotes)))

	return model.QuotesToTable(quotes), nil
}

// parseRawBars keeps bars whose trading date falls in [fromDate, toDate].
func (a *TcbsApi) parseRawBars(raw tcbsModel.RawBars, fromDate, toDate string) ([]model.Quote, error) {
	res := make([]model.Quote, 0, len(raw.Data))

	for _, bar := range raw.Data {
		t, err := time.Parse(time.RFC3339, bar.TradingDate)
		if err != nil {
			return nil, fmt.Errorf("failed parse tradingDate = %s, err: %w", bar.TradingDate, err)
		}

		date := t.UTC().Format(time.DateOnly)
		if date < fromDate || date > toDate {
			continue
		}

		res = append(res, model.Quote{
			Time:   t.UTC(),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: int64(bar.Volume),
		})
	}

	return res, nil
}
