package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// ToCommand adds an output currency to the user's list. Hitting the list cap
// flips the reply into a deletion prompt so the user can make room.
type ToCommand struct {
	Users   *services.UserService
	Sender  telegram.Sender
	Popular []string
}

func (c *ToCommand) Name() string { return "to" }

func (c *ToCommand) Execute(ctx context.Context, chat Chat, args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		return reply(ctx, c.Sender, chat, msgToPrompt, currencyKeyboard(c.Name(), c.Popular))
	}

	code, ok := currency.Resolve(args)
	if !ok {
		return reply(ctx, c.Sender, chat, msgToInvalid, currencyKeyboard(c.Name(), c.Popular))
	}

	u, err := c.Users.AddOutputCurrency(ctx, chat.ID, chat.Username, code)
	if errors.Is(err, services.ErrOutputLimit) {
		text := fmt.Sprintf(msgToLimit, c.Users.MaxOutputCurrencies)
		return reply(ctx, c.Sender, chat, text, currencyKeyboard("deletecurrency", u.OutputCurrencies))
	}
	if err != nil {
		return err
	}

	text := fmt.Sprintf(msgToSet, currency.FlagEmoji(code), code, currencyLines(u.OutputCurrencies))
	return reply(ctx, c.Sender, chat, text, nil)
}

func (c *ToCommand) HandleCallback(ctx context.Context, chat Chat, data string) error {
	return c.Execute(ctx, chat, data)
}

// currencyLines renders a stored currency list one flag-and-code per line.
func currencyLines(codes []string) string {
	var b strings.Builder
	for _, code := range codes {
		fmt.Fprintf(&b, "%s *%s*\n", currency.FlagEmoji(code), code)
	}
	return b.String()
}
