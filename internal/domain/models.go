// Package domain defines the persistence models for user preferences and
// processed webhook updates. These types are mapped with GORM and form the
// core data layer of the currency bot.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CurrencyList is an ordered list of ISO 4217 codes stored as a JSON text
// column. It keeps first-occurrence order and never contains duplicates
// (deduplication is enforced by the service layer on every mutation).
type CurrencyList []string

// Value serializes the list to JSON for storage.
func (l CurrencyList) Value() (driver.Value, error) {
	if l == nil {
		l = CurrencyList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the list from its JSON column representation.
// A NULL column scans as an empty list.
func (l *CurrencyList) Scan(src any) error {
	if src == nil {
		*l = CurrencyList{}
		return nil
	}
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("currency list: unsupported column type %T", src)
	}
}

// Contains reports whether the list already holds code.
func (l CurrencyList) Contains(code string) bool {
	for _, c := range l {
		if c == code {
			return true
		}
	}
	return false
}

// Dedupe returns a copy of the list with duplicates removed, preserving
// first-occurrence order.
func (l CurrencyList) Dedupe() CurrencyList {
	seen := make(map[string]struct{}, len(l))
	out := make(CurrencyList, 0, len(l))
	for _, c := range l {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// UserPreference is the per-conversation state of the bot, keyed by the
// numeric chat identifier assigned by the messaging platform.
//
// Fields:
//   - ChatID: stable numeric chat identifier (primary key).
//   - Username: display name of the user, if the platform provided one.
//   - InputCurrency: the currency amounts are converted from ("" = unset).
//   - OutputCurrencies: up to three target currencies, ordered, no duplicates.
//   - BetaTester: reserved cohort-marking flag.
//   - CreatedAt / UpdatedAt: timestamps managed by the repo layer.
type UserPreference struct {
	ChatID           int64        `json:"chat_id"           gorm:"primaryKey;autoIncrement:false"`
	Username         string       `json:"username"          gorm:"type:varchar(64)"`
	InputCurrency    string       `json:"input_currency"    gorm:"type:varchar(3)"`
	OutputCurrencies CurrencyList `json:"output_currencies" gorm:"type:text"`
	BetaTester       bool         `json:"beta_tester"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// TableName returns the database table name for UserPreference.
func (UserPreference) TableName() string { return "user_preferences" }

// ProcessedUpdate records a webhook update identifier that has already been
// dispatched, so that platform-side webhook retries are acknowledged without
// being executed twice. Rows are evicted once ExpiresAt has passed.
type ProcessedUpdate struct {
	UpdateID  int64     `json:"update_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}

// TableName returns the database table name for ProcessedUpdate.
func (ProcessedUpdate) TableName() string { return "processed_updates" }
