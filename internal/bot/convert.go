package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/rates"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// ConvertCommand converts an amount from the user's input currency into each
// of their stored output currencies. The router also dispatches bare numeric
// messages here.
type ConvertCommand struct {
	Users       *services.UserService
	Conversions *services.ConversionService
	Sender      telegram.Sender

	// Keyboard material.
	CommonAmounts     []string
	PopularInputs     []string
	PopularOutputs    []string
	Multipliers       []string
	MultiplierSymbols []string
}

func (c *ConvertCommand) Name() string { return "convert" }

func (c *ConvertCommand) Execute(ctx context.Context, chat Chat, args string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(args))
	if err != nil {
		return reply(ctx, c.Sender, chat, msgConvertInvalid, amountKeyboard(c.Name(), c.CommonAmounts))
	}

	u, err := c.Users.FindOrCreate(ctx, chat.ID, chat.Username)
	if err != nil {
		return err
	}
	if u.InputCurrency == "" {
		return reply(ctx, c.Sender, chat, msgConvertNoInput, currencyKeyboard("from", c.PopularInputs))
	}
	if len(u.OutputCurrencies) == 0 {
		return reply(ctx, c.Sender, chat, msgConvertNoOutput, currencyKeyboard("to", c.PopularOutputs))
	}

	converted, err := c.Conversions.Convert(ctx, amount, u.InputCurrency, u.OutputCurrencies)
	if err != nil {
		return c.replyConvertError(ctx, chat, err)
	}

	from := currency.FlagEmoji(u.InputCurrency) + " " + currency.FormatMoney(amount, u.InputCurrency)
	var b strings.Builder
	for _, code := range u.OutputCurrencies {
		v, ok := converted[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", currency.FlagEmoji(code), currency.FormatMoney(v, code))
	}

	text := fmt.Sprintf(msgConvertResult, from, b.String())
	kb := multiplierKeyboard(c.Name(), amount, c.Multipliers, c.MultiplierSymbols)
	return reply(ctx, c.Sender, chat, text, kb)
}

func (c *ConvertCommand) HandleCallback(ctx context.Context, chat Chat, data string) error {
	return c.Execute(ctx, chat, data)
}

// replyConvertError maps known conversion failures onto corrective replies.
// Anything unrecognised propagates to the router's generic error handling.
func (c *ConvertCommand) replyConvertError(ctx context.Context, chat Chat, err error) error {
	var invalid *services.InvalidRequestError
	switch {
	case errors.As(err, &invalid):
		return reply(ctx, c.Sender, chat, fmt.Sprintf(msgConvertRejected, invalid.Reason), nil)
	case errors.Is(err, rates.ErrRateNotFound):
		return reply(ctx, c.Sender, chat, msgRateNotFound, nil)
	case errors.Is(err, rates.ErrUpstreamUnavailable):
		return reply(ctx, c.Sender, chat, msgRatesUnavailable, nil)
	default:
		return err
	}
}
