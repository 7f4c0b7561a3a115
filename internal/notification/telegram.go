package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts operational notices (issued tickets, sell-outs,
// counter drift) to a single ops chat. With an empty token or chat id it is
// a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram token or chat id is empty, ops notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketIssued(ctx context.Context, ticket *domain.Ticket, event *domain.Event) {
	text := fmt.Sprintf(
		"*Ticket issued*\n\nEvent: %s\nTicket: %s\nIssued: %d/%d",
		event.Name, ticket.ID, event.TicketsIssued, event.MaxTickets,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySoldOut(ctx context.Context, event *domain.Event) {
	text := fmt.Sprintf(
		"*Event sold out*\n\nEvent: %s\nCapacity: %d",
		event.Name, event.MaxTickets,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCapacityDrift(ctx context.Context, drift *domain.CapacityDrift) {
	text := fmt.Sprintf(
		"*Capacity drift detected*\n\nEvent: %s\nCounter: %d\nTicket rows: %d",
		drift.EventID, drift.TicketsIssued, drift.TicketRows,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
