package bot

import (
	"github.com/shopspring/decimal"

	"github.com/649000/currency-coinverter-bot/internal/currency"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// Callback payloads are "<command>:<value>". The router splits on the first
// colon and routes to the command whose Name matches the prefix.

const multiplierColumns = 3

// currencyKeyboard builds a single row of currency buttons. Each button
// shows the flag and code and carries "<command>:<CODE>" as its payload.
func currencyKeyboard(command string, codes []string) *telegram.InlineKeyboardMarkup {
	row := make([]telegram.InlineKeyboardButton, 0, len(codes))
	for _, code := range codes {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         currency.FlagEmoji(code) + " " + code,
			CallbackData: command + ":" + code,
		})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}

// amountKeyboard builds a single row of common-amount buttons carrying
// "<command>:<amount>" payloads.
func amountKeyboard(command string, amounts []string) *telegram.InlineKeyboardMarkup {
	row := make([]telegram.InlineKeyboardButton, 0, len(amounts))
	for _, a := range amounts {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         a,
			CallbackData: command + ":" + a,
		})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}

// multiplierKeyboard offers quick re-conversions of the just-converted
// amount scaled by each multiplier. Buttons are laid out three per row and
// labelled with the multiplier's display symbol ("x10", "÷100", ...); each
// carries "<command>:<scaled amount>".
func multiplierKeyboard(command string, amount decimal.Decimal, multipliers, symbols []string) *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	var row []telegram.InlineKeyboardButton
	for i, m := range multipliers {
		factor, err := decimal.NewFromString(m)
		if err != nil {
			continue
		}
		label := m
		if i < len(symbols) {
			label = symbols[i]
		}
		row = append(row, telegram.InlineKeyboardButton{
			Text:         label,
			CallbackData: command + ":" + amount.Mul(factor).String(),
		})
		if len(row) == multiplierColumns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}
