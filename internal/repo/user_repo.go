// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// UserPreference model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a preference record is not found, functions return
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - CreateUser returns ErrDuplicate when a record for the chat already
//     exists (create must fail if exists, per the store contract).
//   - On other DB errors the raw gorm error is propagated.
//
// Update semantics are merge-style: UpdateUser only writes the mutable
// preference columns (username, input currency, output list) and the
// updated-at timestamp. CreatedAt and the cohort flag are preserved.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that a record with the same primary key already
// exists (unique constraint violation).
var ErrDuplicate = errors.New("duplicate")

// isUniqueViolation reports whether err stems from a unique constraint.
// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}

// CreateUser inserts a new preference record keyed by chatID. The output
// list starts empty and the input currency unset. Returns ErrDuplicate if
// a record for the chat already exists.
func CreateUser(ctx context.Context, db *gorm.DB, chatID int64, username string) (*domain.UserPreference, error) {
	now := time.Now().UTC()
	u := &domain.UserPreference{
		ChatID:           chatID,
		Username:         username,
		OutputCurrencies: domain.CurrencyList{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

// GetUser fetches the preference record for chatID, or ErrNotFound if the
// chat has never been seen.
func GetUser(ctx context.Context, db *gorm.DB, chatID int64) (*domain.UserPreference, error) {
	var u domain.UserPreference
	err := db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser persists the mutable preference fields of u. Fields outside the
// update payload (created-at, cohort flag) keep their stored values.
// Returns ErrNotFound if no record exists for the chat.
func UpdateUser(ctx context.Context, db *gorm.DB, u *domain.UserPreference) error {
	res := db.WithContext(ctx).
		Model(&domain.UserPreference{}).
		Where("chat_id = ?", u.ChatID).
		Updates(map[string]any{
			"username":          u.Username,
			"input_currency":    u.InputCurrency,
			"output_currencies": u.OutputCurrencies,
			"updated_at":        time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
