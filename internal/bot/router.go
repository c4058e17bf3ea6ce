package bot

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/649000/currency-coinverter-bot/internal/geo"
	"github.com/649000/currency-coinverter-bot/internal/sysutil"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// Router turns heterogeneous inbound updates into single command executions.
// Classification order: callback query, then slash command, then bare
// numeric amount, then free text (help fallback), then location share.
// Edited messages, channel posts, and inline queries are logged and dropped.
type Router struct {
	registry *Registry
	sender   telegram.Sender
	geocoder geo.Geocoder
}

func NewRouter(reg *Registry, sender telegram.Sender, geocoder geo.Geocoder) *Router {
	return &Router{registry: reg, sender: sender, geocoder: geocoder}
}

// HandleUpdate processes one update to completion. Command failures are
// absorbed into an apologetic reply; the only error surfaced to the caller
// is a callback acknowledgment that could not be delivered, since Telegram
// keeps the button spinner alive until the ack lands.
func (r *Router) HandleUpdate(ctx context.Context, u *telegram.Update) error {
	switch {
	case u.CallbackQuery != nil:
		return r.handleCallback(ctx, u.CallbackQuery)
	case u.Message != nil:
		r.handleMessage(ctx, u.Message)
	case u.EditedMessage != nil:
		log.Debug().Int64("update_id", u.UpdateID).Msg("ignoring edited message")
	case u.ChannelPost != nil:
		log.Debug().Int64("update_id", u.UpdateID).Msg("ignoring channel post")
	case u.InlineQuery != nil:
		log.Debug().Str("query", u.InlineQuery.Query).Msg("ignoring inline query")
	default:
		log.Debug().Int64("update_id", u.UpdateID).Msg("ignoring update with no recognised payload")
	}
	return nil
}

func (r *Router) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) error {
	// Ack before anything else so the client stops its spinner. A failed
	// ack is the one failure worth surfacing to the webhook layer.
	if err := r.sender.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		return fmt.Errorf("answer callback %s: %w", cb.ID, err)
	}

	if cb.Message == nil {
		log.Warn().Str("callback_id", cb.ID).Msg("callback without originating message, nowhere to reply")
		return nil
	}
	chat := Chat{ID: cb.Message.Chat.ID}
	if cb.From != nil {
		chat.Username = cb.From.Username
	}

	name, data := cb.Data, ""
	if i := strings.IndexByte(cb.Data, ':'); i >= 0 {
		name, data = cb.Data[:i], cb.Data[i+1:]
	}
	cmd, ok := r.registry.Get(name)
	if !ok {
		log.Warn().Str("callback_data", cb.Data).Msg("callback for unknown command")
		return nil
	}

	r.run(ctx, chat, name, func() error {
		return cmd.HandleCallback(ctx, chat, data)
	})
	return nil
}

func (r *Router) handleMessage(ctx context.Context, m *telegram.Message) {
	chat := Chat{ID: m.Chat.ID, Username: m.Chat.Username}
	if m.From != nil {
		chat.Username = sysutil.FirstNonEmpty(m.From.Username, m.Chat.Username)
	}

	switch {
	case strings.HasPrefix(m.Text, "/"):
		name, args := splitCommand(m.Text)
		cmd, ok := r.registry.Get(name)
		if !ok {
			r.send(ctx, chat, msgUnknownCommand)
			return
		}
		r.run(ctx, chat, name, func() error {
			return cmd.Execute(ctx, chat, args)
		})
	case m.Text != "" && isNumeric(m.Text):
		r.dispatch(ctx, chat, "convert", strings.TrimSpace(m.Text))
	case m.Text != "":
		r.dispatch(ctx, chat, "help", "")
	case m.Location != nil:
		r.handleLocation(ctx, chat, m.Location)
	default:
		log.Debug().Int64("chat_id", chat.ID).Msg("ignoring message with no text or location")
	}
}

func (r *Router) handleLocation(ctx context.Context, chat Chat, loc *telegram.Location) {
	country, err := r.geocoder.CountryName(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		log.Warn().Err(err).
			Float64("lat", loc.Latitude).
			Float64("lon", loc.Longitude).
			Msg("reverse geocode failed")
		r.send(ctx, chat, msgGenericError)
		return
	}
	r.send(ctx, chat, fmt.Sprintf(msgFromLocation, country))
	r.dispatch(ctx, chat, "from", country)
}

// dispatch runs a command that the router itself selected, as opposed to one
// the user named. A missing registration here is a wiring bug.
func (r *Router) dispatch(ctx context.Context, chat Chat, name, args string) {
	cmd, ok := r.registry.Get(name)
	if !ok {
		log.Error().Str("command", name).Msg("router dispatched to unregistered command")
		r.send(ctx, chat, msgGenericError)
		return
	}
	r.run(ctx, chat, name, func() error {
		return cmd.Execute(ctx, chat, args)
	})
}

// run executes one handler, converting errors and panics into the generic
// apology so a single bad update never takes the process down.
func (r *Router) run(ctx context.Context, chat Chat, name string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("command", name).
				Int64("chat_id", chat.ID).Msg("command handler panicked")
			r.send(ctx, chat, msgGenericError)
		}
	}()
	if err := fn(); err != nil {
		log.Error().Err(err).Str("command", name).
			Int64("chat_id", chat.ID).Msg("command handler failed")
		r.send(ctx, chat, msgGenericError)
	}
}

// send delivers a plain reply, logging delivery failures instead of
// propagating them.
func (r *Router) send(ctx context.Context, chat Chat, text string) {
	if err := reply(ctx, r.sender, chat, text, nil); err != nil {
		log.Error().Err(err).Int64("chat_id", chat.ID).Msg("reply delivery failed")
	}
}

// splitCommand parses "/name rest of args" into a lowercase name and the
// trimmed remainder.
func splitCommand(text string) (name, args string) {
	rest := strings.TrimPrefix(strings.TrimSpace(text), "/")
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		return strings.ToLower(rest[:i]), strings.TrimSpace(rest[i:])
	}
	return strings.ToLower(rest), ""
}

// isNumeric reports whether text parses as a plain decimal amount. Parsing
// with the same library the conversion path uses keeps the two in agreement
// about what counts as a number.
func isNumeric(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	_, err := decimal.NewFromString(text)
	return err == nil
}
