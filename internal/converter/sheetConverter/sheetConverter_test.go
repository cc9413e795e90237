package sheetConverter

import (
	"testing"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToValueGrid(t *testing.T) {
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	table := model.Table{
		Columns: []string{"Mã", "time", "close", "volume"},
		Rows: [][]any{
			{"NVL", day, 10.5, int64(1000)},
			{"TVN", day.AddDate(0, 0, 1), 7.2, int64(50)},
		},
	}

	grid := ToValueGrid(table)

	require.Len(t, grid, 3)
	assert.Equal(t, []any{"Mã", "time", "close", "volume"}, grid[0])
	assert.Equal(t, []any{"NVL", "07/03/2024", 10.5, int64(1000)}, grid[1])
	assert.Equal(t, []any{"TVN", "08/03/2024", 7.2, int64(50)}, grid[2])
}

func TestToValueGrid_EmptyTableHasHeaderOnly(t *testing.T) {
	grid := ToValueGrid(model.NewTable("a", "b"))

	assert.Equal(t, model.ValueGrid{{"a", "b"}}, grid)
}

func TestToCellValue(t *testing.T) {
	day := time.Date(2023, 12, 31, 15, 30, 0, 0, time.UTC)
	var nilTime *time.Time

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "time", in: day, want: "31/12/2023"},
		{name: "time pointer", in: &day, want: "31/12/2023"},
		{name: "nil time pointer", in: nilTime, want: nil},
		{name: "float", in: 10.5, want: 10.5},
		{name: "string", in: "NVL", want: "NVL"},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCellValue(tt.in))
		})
	}
}
