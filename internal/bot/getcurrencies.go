package bot

import (
	"context"
	"fmt"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// GetCurrenciesCommand shows the user's current input and output currencies.
type GetCurrenciesCommand struct {
	noCallback
	Users  *services.UserService
	Sender telegram.Sender
}

func (c *GetCurrenciesCommand) Name() string { return "getcurrencies" }

func (c *GetCurrenciesCommand) Execute(ctx context.Context, chat Chat, _ string) error {
	u, err := c.Users.FindOrCreate(ctx, chat.ID, chat.Username)
	if err != nil {
		return err
	}

	hasInput := u.InputCurrency != ""
	hasOutput := len(u.OutputCurrencies) > 0

	var text string
	switch {
	case !hasInput && !hasOutput:
		text = msgCurrenciesNone
	case hasInput && !hasOutput:
		text = fmt.Sprintf(msgCurrenciesNoOutput, currency.FlagEmoji(u.InputCurrency), u.InputCurrency)
	case !hasInput && hasOutput:
		text = fmt.Sprintf(msgCurrenciesNoInput, currencyLines(u.OutputCurrencies))
	default:
		text = fmt.Sprintf(msgCurrenciesBoth,
			currency.FlagEmoji(u.InputCurrency), u.InputCurrency, currencyLines(u.OutputCurrencies))
	}
	return reply(ctx, c.Sender, chat, text, nil)
}
