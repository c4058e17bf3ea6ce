// Package bot implements the update router, the command registry, and the
// command handlers that make up the conversational surface of the currency
// bot. The router classifies each inbound transport event into a single
// command execution; handlers are stateless and reply through the transport
// Sender.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// Chat identifies the conversation a command acts on.
type Chat struct {
	ID       int64
	Username string
}

// Command is one named, stateless unit of user-visible behavior. The name
// doubles as the "/"-prefixed keyword and as the callback-data prefix for
// button presses.
type Command interface {
	// Name returns the unique lowercase command name.
	Name() string

	// Execute runs the command with the raw argument string.
	Execute(ctx context.Context, chat Chat, args string) error

	// HandleCallback runs the command in response to a button press whose
	// payload carried this command's prefix. The callback has already been
	// acknowledged by the router.
	HandleCallback(ctx context.Context, chat Chat, data string) error
}

// noCallback is embedded by commands that ignore button presses.
type noCallback struct{}

func (noCallback) HandleCallback(context.Context, Chat, string) error { return nil }

// Registry is a build-once mapping from lowercase command name to handler.
// It is populated at process start and never mutated afterwards, so lookups
// need no locking.
type Registry struct {
	commands map[string]Command
}

// NewRegistry builds a Registry from the given commands. Registering two
// commands with the same name is a programming error and panics.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		name := strings.ToLower(c.Name())
		if _, dup := r.commands[name]; dup {
			panic(fmt.Sprintf("bot: duplicate command %q", name))
		}
		r.commands[name] = c
	}
	return r
}

// Get looks up a command by name, case-insensitively.
func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[strings.ToLower(name)]
	return c, ok
}

// reply sends one Markdown-formatted message, optionally with an inline
// keyboard, to the chat.
func reply(ctx context.Context, s telegram.Sender, chat Chat, text string, kb *telegram.InlineKeyboardMarkup) error {
	return s.SendMessage(ctx, telegram.SendMessage{
		ChatID:      chat.ID,
		Text:        text,
		ParseMode:   telegram.ParseModeMarkdown,
		ReplyMarkup: kb,
	})
}
