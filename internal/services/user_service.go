// Package services – UserService
//
// This file implements the UserService, which manages the per-chat
// preference record: one input currency and up to three output currencies.
// Records are created lazily the first time a chat is seen. Every persisted
// mutation re-deduplicates the output list (stable, first-occurrence order),
// so the stored invariants hold regardless of the sequence of commands that
// produced them.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/domain"
	"github.com/649000/currency-coinverter-bot/internal/repo"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	// CreateUser inserts a new preference record; fails if one exists.
	CreateUser(ctx context.Context, db *gorm.DB, chatID int64, username string) (*domain.UserPreference, error)

	// GetUser fetches the record for chatID or returns repo.ErrNotFound.
	GetUser(ctx context.Context, db *gorm.DB, chatID int64) (*domain.UserPreference, error)

	// UpdateUser persists the mutable preference fields (merge semantics).
	UpdateUser(ctx context.Context, db *gorm.DB, u *domain.UserPreference) error
}

// UserService provides preference-level operations for command handlers.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the preference repository used by this service.
	Repo UserRepo

	// MaxOutputCurrencies caps the stored output list.
	MaxOutputCurrencies int
}

// NewUserService constructs a UserService with the standard list cap.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{
		DB:                  db,
		Repo:                r,
		MaxOutputCurrencies: 3,
	}
}

// FindOrCreate returns the preference record for chatID, creating an empty
// one on first sight. A create that loses a race to a concurrent request
// falls back to reading the winner's record.
func (s *UserService) FindOrCreate(ctx context.Context, chatID int64, username string) (*domain.UserPreference, error) {
	u, err := s.Repo.GetUser(ctx, s.DB, chatID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u, err = s.Repo.CreateUser(ctx, s.DB, chatID, username)
	if errors.Is(err, repo.ErrDuplicate) {
		return s.Repo.GetUser(ctx, s.DB, chatID)
	}
	return u, err
}

// SetInputCurrency overwrites the stored input currency unconditionally.
// code must already be a resolved 3-letter currency code.
func (s *UserService) SetInputCurrency(ctx context.Context, chatID int64, username, code string) (*domain.UserPreference, error) {
	u, err := s.FindOrCreate(ctx, chatID, username)
	if err != nil {
		return nil, err
	}
	u.InputCurrency = strings.ToUpper(code)
	u.OutputCurrencies = u.OutputCurrencies.Dedupe()
	if err := s.Repo.UpdateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

// AddOutputCurrency appends code to the stored output list. Adding a code
// that is already present is a no-op success. When the deduplicated list is
// already at capacity, ErrOutputLimit is returned so the handler can offer
// deletion instead.
func (s *UserService) AddOutputCurrency(ctx context.Context, chatID int64, username, code string) (*domain.UserPreference, error) {
	u, err := s.FindOrCreate(ctx, chatID, username)
	if err != nil {
		return nil, err
	}

	code = strings.ToUpper(code)
	u.OutputCurrencies = u.OutputCurrencies.Dedupe()
	if u.OutputCurrencies.Contains(code) {
		return u, nil
	}
	if len(u.OutputCurrencies) >= s.MaxOutputCurrencies {
		return u, ErrOutputLimit
	}

	u.OutputCurrencies = append(u.OutputCurrencies, code)
	if err := s.Repo.UpdateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RemoveOutputCurrency deletes the first occurrence of code from the stored
// list. Removing a code that is not present is a no-op, not an error.
func (s *UserService) RemoveOutputCurrency(ctx context.Context, chatID int64, username, code string) (*domain.UserPreference, error) {
	u, err := s.FindOrCreate(ctx, chatID, username)
	if err != nil {
		return nil, err
	}

	code = strings.ToUpper(code)
	u.OutputCurrencies = u.OutputCurrencies.Dedupe()
	if !u.OutputCurrencies.Contains(code) {
		return u, nil
	}

	out := make(domain.CurrencyList, 0, len(u.OutputCurrencies))
	removed := false
	for _, c := range u.OutputCurrencies {
		if !removed && c == code {
			removed = true
			continue
		}
		out = append(out, c)
	}
	u.OutputCurrencies = out
	if err := s.Repo.UpdateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}
