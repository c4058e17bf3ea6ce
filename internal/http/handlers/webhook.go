package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/http/middleware"
	"github.com/649000/currency-coinverter-bot/internal/repo"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// UpdateRouter is the piece of the bot the webhook hands updates to.
type UpdateRouter interface {
	HandleUpdate(ctx context.Context, u *telegram.Update) error
}

// WebhookHandler receives Telegram webhook deliveries, fences off replays by
// update_id, and forwards fresh updates to the router.
type WebhookHandler struct {
	DB        *gorm.DB
	Router    UpdateRouter
	DedupeTTL time.Duration
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(db *gorm.DB, router UpdateRouter, dedupeTTL time.Duration) *WebhookHandler {
	return &WebhookHandler{DB: db, Router: router, DedupeTTL: dedupeTTL}
}

// HandleUpdate is the POST /telegram/webhook handler.
//
// Telegram redelivers an update until it sees a 2xx, so the dedupe mark is
// written before dispatch: a redelivery of an already-claimed update_id gets
// an immediate 200 instead of running the command a second time. Processing
// failures return 500 so the failure is visible to operators, even though
// the subsequent redelivery will be deduplicated.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	var u telegram.Update
	if err := c.ShouldBindJSON(&u); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed update payload")
		return
	}

	ctx := c.Request.Context()
	if err := repo.MarkUpdateProcessed(ctx, h.DB, u.UpdateID, h.DedupeTTL); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			middleware.LoggerFrom(c).Info().
				Int64("update_id", u.UpdateID).
				Msg("duplicate update dropped")
			ok(c, http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "replay check failed")
		return
	}

	if err := h.Router.HandleUpdate(ctx, &u); err != nil {
		middleware.LoggerFrom(c).Error().
			Err(err).
			Int64("update_id", u.UpdateID).
			Msg("update processing failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "update processing failed")
		return
	}

	ok(c, http.StatusOK, gin.H{"status": "ok"})
}
