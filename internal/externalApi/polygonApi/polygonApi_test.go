package polygonApi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIter struct {
	aggs []models.Agg
	pos  int
	err  error
}

func (it *fakeIter) Next() bool {
	if it.pos >= len(it.aggs) {
		return false
	}
	it.pos++
	return true
}

func (it *fakeIter) Item() models.Agg {
	return it.aggs[it.pos-1]
}

func (it *fakeIter) Err() error {
	return it.err
}

type fakeLister struct {
	params *models.ListAggsParams
	iter   *fakeIter
}

func (l *fakeLister) ListAggs(_ context.Context, params *models.ListAggsParams, _ ...models.RequestOption) AggsIterator {
	l.params = params
	return l.iter
}

func TestPolygonApi_GetHistory(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	// polygon stamps day bars at the New York session start
	ts := time.Date(2024, 1, 3, 5, 0, 0, 0, time.UTC)

	lister := &fakeLister{iter: &fakeIter{aggs: []models.Agg{
		{Open: 184.2, High: 185.9, Low: 183.4, Close: 184.25, Volume: 58414460, Timestamp: models.Millis(ts)},
	}}}

	table, err := NewWithLister(lister).GetHistory(context.Background(), "aapl", day, day)
	require.NoError(t, err)

	require.NotNil(t, lister.params)
	assert.Equal(t, "AAPL", lister.params.Ticker)
	assert.Equal(t, models.Day, lister.params.Timespan)

	require.Equal(t, model.QuoteColumns, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []any{day, 184.2, 185.9, 183.4, 184.25, int64(58414460)}, table.Rows[0])
}

func TestPolygonApi_GetHistory_IteratorError(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	lister := &fakeLister{iter: &fakeIter{err: errors.New("NOT_AUTHORIZED")}}

	_, err := NewWithLister(lister).GetHistory(context.Background(), "AAPL", day, day)

	var fetchErr *externalApi.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "AAPL", fetchErr.Symbol)
}
