package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// DeleteCurrencyCommand removes one output currency. Executing it lists the
// stored currencies as buttons; the button press comes back as a callback
// carrying the code to remove.
type DeleteCurrencyCommand struct {
	Users   *services.UserService
	Sender  telegram.Sender
	Popular []string
}

func (c *DeleteCurrencyCommand) Name() string { return "deletecurrency" }

func (c *DeleteCurrencyCommand) Execute(ctx context.Context, chat Chat, args string) error {
	if code := strings.TrimSpace(args); code != "" {
		return c.remove(ctx, chat, code)
	}

	u, err := c.Users.FindOrCreate(ctx, chat.ID, chat.Username)
	if err != nil {
		return err
	}
	if len(u.OutputCurrencies) == 0 {
		return reply(ctx, c.Sender, chat, msgDeleteNone, currencyKeyboard("to", c.Popular))
	}
	return reply(ctx, c.Sender, chat, msgDeletePrompt, currencyKeyboard(c.Name(), u.OutputCurrencies))
}

func (c *DeleteCurrencyCommand) HandleCallback(ctx context.Context, chat Chat, data string) error {
	return c.remove(ctx, chat, data)
}

func (c *DeleteCurrencyCommand) remove(ctx context.Context, chat Chat, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := c.Users.RemoveOutputCurrency(ctx, chat.ID, chat.Username, code); err != nil {
		return err
	}
	text := fmt.Sprintf(msgDeleteDone, currency.FlagEmoji(code), code)
	return reply(ctx, c.Sender, chat, text, nil)
}
