// Package services implements the business logic of the bot: validating and
// orchestrating currency conversions and maintaining per-chat preferences.
// This file centralizes service-level error values and types so they can be
// consistently returned by service methods and classified by callers.
//
// Translation into user-facing replies is performed at the command/router
// layer, never here.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrOutputLimit is returned when adding a target currency would push
	// the stored list past its maximum size.
	ErrOutputLimit = errors.New("output currency limit reached")
)

// InvalidRequestError signals a client-correctable conversion request: a bad
// amount, an unknown currency, or too many targets. The Reason is specific
// enough to build a corrective user reply from.
type InvalidRequestError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidRequestError) Error() string { return "invalid request: " + e.Reason }

// invalidRequest builds an *InvalidRequestError with a formatted reason.
func invalidRequest(format string, args ...any) error {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}
