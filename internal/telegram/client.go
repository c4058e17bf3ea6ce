package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultAPIBase is the production Bot API root.
const DefaultAPIBase = "https://api.telegram.org"

// maxAPIResponseBytes caps Bot API response reads; method results here are
// tiny.
const maxAPIResponseBytes = 1 << 20

// Sender is the outbound transport contract the bot depends on. The router
// and command handlers only ever see this interface, so tests substitute a
// recording fake.
type Sender interface {
	// SendMessage delivers one outbound message to a chat.
	SendMessage(ctx context.Context, msg SendMessage) error

	// AnswerCallbackQuery acknowledges a button press so the client UI
	// clears its progress indicator.
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// BotClient is the HTTP implementation of Sender against the Bot API.
type BotClient struct {
	http    *http.Client
	apiBase string
	token   string
}

// NewBotClient constructs a BotClient for the given bot token. apiBase is
// the API root ("" selects the production endpoint); timeout bounds each
// method call.
func NewBotClient(token, apiBase string, timeout time.Duration) *BotClient {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BotClient{
		http:    &http.Client{Timeout: timeout},
		apiBase: apiBase,
		token:   token,
	}
}

// SendMessage calls the sendMessage Bot API method.
func (c *BotClient) SendMessage(ctx context.Context, msg SendMessage) error {
	return c.call(ctx, "sendMessage", msg)
}

// AnswerCallbackQuery calls the answerCallbackQuery Bot API method.
func (c *BotClient) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	return c.call(ctx, "answerCallbackQuery", map[string]string{
		"callback_query_id": callbackID,
	})
}

// call posts payload to a Bot API method and checks the { "ok": … } envelope.
func (c *BotClient) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: encode: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAPIResponseBytes))
	if err != nil {
		return fmt.Errorf("telegram %s: read response: %w", method, err)
	}

	if !gjson.GetBytes(raw, "ok").Bool() {
		desc := gjson.GetBytes(raw, "description").String()
		if desc == "" {
			desc = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("telegram %s: %s", method, desc)
	}
	return nil
}
