package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/repo"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webhook_test.db")
	db, err := repo.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// recordingRouter counts updates it received.
type recordingRouter struct {
	updates []int64
	err     error
}

func (r *recordingRouter) HandleUpdate(_ context.Context, u *telegram.Update) error {
	r.updates = append(r.updates, u.UpdateID)
	return r.err
}

func newWebhookEngine(t *testing.T, router UpdateRouter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWebhookHandler(newTestDB(t), router, time.Hour)
	r.POST("/telegram/webhook", h.HandleUpdate)
	return r
}

func postUpdate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_FreshUpdateDispatches(t *testing.T) {
	router := &recordingRouter{}
	r := newWebhookEngine(t, router)

	w := postUpdate(r, `{"update_id": 7, "message": {"message_id": 1, "chat": {"id": 42}, "text": "100"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if len(router.updates) != 1 || router.updates[0] != 7 {
		t.Fatalf("router updates = %v, want [7]", router.updates)
	}
}

func TestWebhook_RedeliveryIsDeduplicated(t *testing.T) {
	router := &recordingRouter{}
	r := newWebhookEngine(t, router)

	body := `{"update_id": 9, "message": {"message_id": 1, "chat": {"id": 42}, "text": "hi"}}`
	if w := postUpdate(r, body); w.Code != http.StatusOK {
		t.Fatalf("first delivery status = %d", w.Code)
	}

	w := postUpdate(r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("redelivery status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "duplicate") {
		t.Fatalf("redelivery body = %s, want duplicate marker", w.Body.String())
	}
	if len(router.updates) != 1 {
		t.Fatalf("router ran %d times, want 1", len(router.updates))
	}
}

func TestWebhook_MalformedPayload(t *testing.T) {
	router := &recordingRouter{}
	r := newWebhookEngine(t, router)

	w := postUpdate(r, `{"update_id": "not-a-number"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(router.updates) != 0 {
		t.Fatal("router must not run for malformed payloads")
	}
}

func TestWebhook_RouterErrorIs500(t *testing.T) {
	router := &recordingRouter{err: errors.New("ack failed")}
	r := newWebhookEngine(t, router)

	w := postUpdate(r, `{"update_id": 11, "callback_query": {"id": "cb", "data": "to:EUR"}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), ErrCodeInternal) {
		t.Fatalf("body = %s, want internal_error envelope", w.Body.String())
	}
}
