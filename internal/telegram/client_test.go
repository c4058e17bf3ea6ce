package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSendMessage_PostsMethodAndPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewBotClient("TOKEN", srv.URL, 2*time.Second)
	err := c.SendMessage(context.Background(), SendMessage{
		ChatID:    42,
		Text:      "hello",
		ParseMode: ParseModeMarkdown,
		ReplyMarkup: &InlineKeyboardMarkup{
			InlineKeyboard: [][]InlineKeyboardButton{
				{{Text: "SGD", CallbackData: "to:SGD"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if gotPath != "/botTOKEN/sendMessage" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["chat_id"].(float64) != 42 || gotBody["text"] != "hello" {
		t.Fatalf("body = %v", gotBody)
	}
	if gotBody["parse_mode"] != "Markdown" {
		t.Fatalf("parse_mode = %v", gotBody["parse_mode"])
	}
	if _, ok := gotBody["reply_markup"]; !ok {
		t.Fatal("reply_markup missing")
	}
}

func TestAnswerCallbackQuery(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	c := NewBotClient("TOKEN", srv.URL, 2*time.Second)
	if err := c.AnswerCallbackQuery(context.Background(), "cb-1"); err != nil {
		t.Fatalf("AnswerCallbackQuery: %v", err)
	}
	if gotPath != "/botTOKEN/answerCallbackQuery" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["callback_query_id"] != "cb-1" {
		t.Fatalf("body = %v", gotBody)
	}
}

func TestCall_APIErrorSurfacesDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewBotClient("TOKEN", srv.URL, 2*time.Second)
	err := c.SendMessage(context.Background(), SendMessage{ChatID: 1, Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("err = %v, want description surfaced", err)
	}
}
