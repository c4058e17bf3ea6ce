// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// ProcessedUpdate model used to deduplicate webhook deliveries: the
// messaging platform retries a webhook until it receives a 2xx, so the same
// update can arrive more than once.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/domain"
)

// MarkUpdateProcessed records updateID as handled for the given ttl.
// It returns ErrDuplicate when a non-expired record already exists, in which
// case the caller should acknowledge the delivery without re-dispatching.
//
// An expired record for the same updateID is replaced rather than treated as
// a duplicate, since update IDs outlive any realistic retry window.
func MarkUpdateProcessed(ctx context.Context, db *gorm.DB, updateID int64, ttl time.Duration) error {
	now := time.Now().UTC()
	rec := &domain.ProcessedUpdate{
		UpdateID:  updateID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	err := db.WithContext(ctx).Create(rec).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}

	// Replace the row if the prior record has expired; otherwise report
	// the duplicate.
	res := db.WithContext(ctx).
		Model(&domain.ProcessedUpdate{}).
		Where("update_id = ? AND expires_at <= ?", updateID, now).
		Updates(map[string]any{"created_at": now, "expires_at": now.Add(ttl)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}

// PurgeExpiredUpdates deletes dedupe records whose TTL has elapsed and
// returns the number of rows removed. Intended to be called opportunistically.
func PurgeExpiredUpdates(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&domain.ProcessedUpdate{})
	return res.RowsAffected, res.Error
}
