package bot

import (
	"context"

	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// HelpCommand lists the available commands. The router also falls back to it
// for free text that is neither a command nor an amount.
type HelpCommand struct {
	noCallback
	Sender telegram.Sender
}

func (c *HelpCommand) Name() string { return "help" }

func (c *HelpCommand) Execute(ctx context.Context, chat Chat, _ string) error {
	return reply(ctx, c.Sender, chat, msgHelp, nil)
}
