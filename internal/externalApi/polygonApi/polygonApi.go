package polygonApi

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
)

const aggsLimit = 50000

// AggsIterator is the part of the polygon iterator the api reads.
type AggsIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

type AggsLister interface {
	ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) AggsIterator
}

type restClient struct {
	client *polygon.Client
}

func (c restClient) ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) AggsIterator {
	return c.client.ListAggs(ctx, params, options...)
}

type PolygonApi struct {
	lister AggsLister
	// exchange is where polygon day bars start, it defines the trading date.
	exchange *time.Location
}

func New(cfg *config.Config) (*PolygonApi, error) {
	if cfg.API.PolygonApi.ApiKey == "" {
		return nil, errors.New("polygon api key is required")
	}
	return NewWithLister(restClient{client: polygon.New(cfg.API.PolygonApi.ApiKey)}), nil
}

func NewWithLister(lister AggsLister) *PolygonApi {
	exchange, err := time.LoadLocation("America/New_York")
	if err != nil {
		exchange = time.UTC
	}
	return &PolygonApi{lister: lister, exchange: exchange}
}

func (a *PolygonApi) GetHistory(ctx context.Context, symbol string, start, end time.Time) (model.Table, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "PolygonApi.GetHistory"

	if err := externalApi.ValidateHistoryRequest(symbol, start, end); err != nil {
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	ticker := strings.ToUpper(symbol)
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(dateOf(start)),
		To:         models.Millis(dateOf(end)),
	}.WithAdjusted(true).WithLimit(aggsLimit)

	slog.Debug("start PolygonApi.GetHistory request", slog.String("rqID", rqID), slog.String("op", op), slog.String("ticker", ticker))

	iter := a.lister.ListAggs(ctx, params)

	quotes := make([]model.Quote, 0, 1)
	for iter.Next() {
		agg := iter.Item()
		quotes = append(quotes, model.Quote{
			Time:   dateOf(time.Time(agg.Timestamp).In(a.exchange)),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: int64(agg.Volume),
		})
	}

	if err := iter.Err(); err != nil {
		slog.Error("error iterating polygon aggregates", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Table{}, externalApi.NewFetchError(symbol, err)
	}

	slog.Debug("PolygonApi.GetHistory request complete", slog.String("rqID", rqID), slog.String("op", op), slog.Int("rows", len(quotes)))

	return model.QuotesToTable(quotes), nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
