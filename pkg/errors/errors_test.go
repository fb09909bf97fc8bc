package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New(ErrCodeCaseNoPairs, "case has no pairs")
	assert.Equal(t, "[CASE_001] case has no pairs", e.Error())

	withDetail := e.WithDetail("case_id=abc")
	assert.Equal(t, "[CASE_001] case has no pairs: case_id=abc", withDetail.Error())
	// Original is not mutated.
	assert.Empty(t, e.Detail)
}

func TestAppError_NilReceivers(t *testing.T) {
	var e *AppError
	assert.Nil(t, e.WithDetail("x"))
	assert.Nil(t, e.WithCause(stderrors.New("cause")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))

	inner := New(ErrCodeGSScoreInvalid, "score 1.3 outside [0, 1]")
	wrapped := Wrap(inner, ErrCodeInternal, "classification failed")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
	assert.True(t, IsCode(wrapped, ErrCodeGSScoreInvalid))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(ErrCodeMarkEmptyWordmark, "empty wordmark")
	wrapped := Wrap(inner, CodeUnknown, "adding context only")
	assert.Equal(t, ErrCodeMarkEmptyWordmark, wrapped.Code)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeValidation, GetCode(Validation("bad")))

	wrapped := fmt.Errorf("outer: %w", New(ErrCodeCaseNoPairs, "no pairs"))
	assert.Equal(t, ErrCodeCaseNoPairs, GetCode(wrapped))
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(New(ErrCodeGSScoreInvalid, "bad score")))
	assert.True(t, IsInvalidInput(New(ErrCodeCaseNoPairs, "no pairs")))
	assert.True(t, IsInvalidInput(Wrap(New(ErrCodeMarkEmptyWordmark, "empty"), ErrCodeInternal, "outer")))
	assert.False(t, IsInvalidInput(New(ErrCodeInternal, "boom")))
	assert.False(t, IsInvalidInput(nil))
}

func TestCodeHelpers(t *testing.T) {
	assert.Equal(t, 400, HTTPStatusForCode(ErrCodeGSScoreInvalid))
	assert.Equal(t, 500, HTTPStatusForCode(ErrorCode("NOPE_999")))
	assert.True(t, IsClientError(ErrCodeCaseNoPairs))
	assert.False(t, IsClientError(ErrCodeCaseOutcomeInvalid))
	assert.True(t, IsServerError(ErrCodeInternal))
	assert.Equal(t, "GS", ModuleForCode(ErrCodeGSNiceClassInvalid))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("")))
	assert.Equal(t, "wordmark cannot be empty", DefaultMessageForCode(ErrCodeMarkEmptyWordmark))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("NOPE_999")))
}
