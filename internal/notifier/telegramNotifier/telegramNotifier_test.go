package telegramNotifier

import (
	"context"
	"errors"
	"testing"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type fakeSender struct {
	to   tele.Recipient
	what interface{}
	err  error
}

func (s *fakeSender) Send(to tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	s.to = to
	s.what = what
	return &tele.Message{}, s.err
}

func TestFormatReport(t *testing.T) {
	report := model.SyncReport{
		Status:  model.StatusSuccess,
		Message: "quotes updated successfully, 21 cells updated",
		Symbols: []model.SymbolResult{
			{Symbol: "nvl", State: model.SymbolFetched, Rows: 1, Close: 13.75, HasClose: true},
			{Symbol: "tvn", State: model.SymbolFailed, Err: errors.New("timeout")},
			{Symbol: "ksb", State: model.SymbolEmpty},
		},
	}

	want := "[success] quotes updated successfully, 21 cells updated\n" +
		"NVL: 1 rows, close 13.75\n" +
		"TVN: failed\n" +
		"KSB: no data"

	assert.Equal(t, want, FormatReport(report))
}

func TestTelegramNotifier_Notify(t *testing.T) {
	sender := &fakeSender{}
	n := NewWithSender(sender, 42)

	err := n.Notify(context.Background(), model.SyncReport{Status: model.StatusWarning, Message: "no data found to update the sheet"})
	require.NoError(t, err)

	assert.Equal(t, tele.ChatID(42), sender.to)
	assert.Equal(t, "[warning] no data found to update the sheet", sender.what)
}

func TestTelegramNotifier_NotifyError(t *testing.T) {
	n := NewWithSender(&fakeSender{err: errors.New("chat not found")}, 42)

	err := n.Notify(context.Background(), model.SyncReport{Status: model.StatusError})
	assert.Error(t, err)
}

func TestNew_NotConfigured(t *testing.T) {
	n, err := New(&config.Config{})

	require.NoError(t, err)
	assert.Nil(t, n)
}
