package telegramNotifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v4"
)

type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type TelegramNotifier struct {
	sender Sender
	chat   tele.ChatID
}

// New returns nil when telegram is not configured.
func New(cfg *config.Config) (*TelegramNotifier, error) {
	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
		return nil, nil
	}

	b, err := tele.NewBot(tele.Settings{
		Token:   cfg.Telegram.Token,
		Offline: true,
	})
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		return nil, err
	}

	return NewWithSender(b, cfg.Telegram.ChatID), nil
}

func NewWithSender(sender Sender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chat: tele.ChatID(chatID)}
}

func (n *TelegramNotifier) Notify(ctx context.Context, report model.SyncReport) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "TelegramNotifier.Notify"

	_, err := n.sender.Send(n.chat, FormatReport(report))
	if err != nil {
		slog.Error("failed sending report to telegram", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("report sent to telegram", slog.String("rqID", rqID), slog.String("op", op))

	return nil
}

func FormatReport(report model.SyncReport) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("[%s] %s", report.Status, report.Message))

	for _, s := range report.Symbols {
		sb.WriteString("\n")
		switch s.State {
		case model.SymbolFetched:
			sb.WriteString(fmt.Sprintf("%s: %d rows", strings.ToUpper(s.Symbol), s.Rows))
			if s.HasClose {
				sb.WriteString(", close " + decimal.NewFromFloat(s.Close).String())
			}
		case model.SymbolFailed:
			sb.WriteString(fmt.Sprintf("%s: failed", strings.ToUpper(s.Symbol)))
		default:
			sb.WriteString(fmt.Sprintf("%s: no data", strings.ToUpper(s.Symbol)))
		}
	}

	return sb.String()
}
