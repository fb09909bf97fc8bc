// Package mark provides the domain layer for wordmark comparison: lexical
// (visual) distance, phonetic (aural) encoding and distance, the ordinal
// score-to-category mapping, and the identity floor rule binding the overall
// assessment.  Everything in this package is a pure function over immutable
// values; no I/O, no shared state, no hidden randomness.
package mark

import (
	"strings"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
)

// Mark is a wordmark with optional registration metadata.  It is an immutable
// value object; construct with NewMark and treat fields as read-only.
type Mark struct {
	Wordmark           string
	Registered         bool
	RegistrationNumber string
}

// NewMark constructs a Mark, rejecting wordmarks that are empty after
// whitespace trimming.
func NewMark(wordmark string) (Mark, error) {
	if strings.TrimSpace(wordmark) == "" {
		return Mark{}, errors.New(errors.ErrCodeMarkEmptyWordmark, "wordmark cannot be empty")
	}
	return Mark{Wordmark: wordmark}, nil
}

// NewRegisteredMark constructs a Mark carrying registration details.
func NewRegisteredMark(wordmark, registrationNumber string) (Mark, error) {
	m, err := NewMark(wordmark)
	if err != nil {
		return Mark{}, err
	}
	m.Registered = true
	m.RegistrationNumber = registrationNumber
	return m, nil
}

// Normalize returns the canonical comparison form of a wordmark: whitespace
// trimmed and lowercased.  Both sides of every distance computation go
// through this function so that case and padding never influence a score.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
