package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// FromCommand sets the user's input currency. The argument may be an ISO
// code, a country code, or an English country name; location shares are
// routed here as country names.
type FromCommand struct {
	Users   *services.UserService
	Sender  telegram.Sender
	Popular []string
}

func (c *FromCommand) Name() string { return "from" }

func (c *FromCommand) Execute(ctx context.Context, chat Chat, args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		return reply(ctx, c.Sender, chat, msgFromPrompt, currencyKeyboard(c.Name(), c.Popular))
	}

	code, ok := currency.Resolve(args)
	if !ok {
		return reply(ctx, c.Sender, chat, msgFromInvalid, currencyKeyboard(c.Name(), c.Popular))
	}

	if _, err := c.Users.SetInputCurrency(ctx, chat.ID, chat.Username, code); err != nil {
		return err
	}
	text := fmt.Sprintf(msgFromSet, currency.FlagEmoji(code), code)
	return reply(ctx, c.Sender, chat, text, nil)
}

func (c *FromCommand) HandleCallback(ctx context.Context, chat Chat, data string) error {
	return c.Execute(ctx, chat, data)
}
