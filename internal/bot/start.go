package bot

import (
	"context"

	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// StartCommand greets first-time users and lazily provisions their
// preference record.
type StartCommand struct {
	noCallback
	Users  *services.UserService
	Sender telegram.Sender
}

func (c *StartCommand) Name() string { return "start" }

func (c *StartCommand) Execute(ctx context.Context, chat Chat, _ string) error {
	if _, err := c.Users.FindOrCreate(ctx, chat.ID, chat.Username); err != nil {
		return err
	}
	return reply(ctx, c.Sender, chat, msgWelcome, nil)
}
