package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeValidation     ErrorCode = "COMMON_004"
	ErrCodeSerialization  ErrorCode = "COMMON_005"
	ErrCodeExternal       ErrorCode = "COMMON_006"
	ErrCodeNotImplemented ErrorCode = "COMMON_007"
)

// Mark Module Error Codes
const (
	ErrCodeMarkEmptyWordmark   ErrorCode = "MARK_001"
	ErrCodeMarkScoreInvalid    ErrorCode = "MARK_002"
	ErrCodeMarkCategoryInvalid ErrorCode = "MARK_003"
)

// Goods/Services Module Error Codes
const (
	ErrCodeGSScoreInvalid     ErrorCode = "GS_001"
	ErrCodeGSNiceClassInvalid ErrorCode = "GS_002"
	ErrCodeGSEmptyTerm        ErrorCode = "GS_003"
)

// Opposition Case Error Codes
const (
	ErrCodeCaseNoPairs        ErrorCode = "CASE_001"
	ErrCodeCaseOutcomeInvalid ErrorCode = "CASE_002"
	ErrCodeCaseConfigInvalid  ErrorCode = "CASE_003"
)

// Semantic Oracle Error Codes
const (
	ErrCodeSemanticUnavailable   ErrorCode = "SEM_001"
	ErrCodeSemanticInvalidResult ErrorCode = "SEM_002"
)

// Aliases used at call sites for readability.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeValidation   = ErrCodeValidation
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes for embedding
// systems that surface engine errors over HTTP.  The engine itself has no
// HTTP surface; the CLI uses the client/server split for exit codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeValidation:     http.StatusUnprocessableEntity,
	ErrCodeSerialization:  http.StatusInternalServerError,
	ErrCodeExternal:       http.StatusBadGateway,
	ErrCodeNotImplemented: http.StatusNotImplemented,

	ErrCodeMarkEmptyWordmark:   http.StatusBadRequest,
	ErrCodeMarkScoreInvalid:    http.StatusBadRequest,
	ErrCodeMarkCategoryInvalid: http.StatusBadRequest,

	ErrCodeGSScoreInvalid:     http.StatusBadRequest,
	ErrCodeGSNiceClassInvalid: http.StatusBadRequest,
	ErrCodeGSEmptyTerm:        http.StatusBadRequest,

	ErrCodeCaseNoPairs:        http.StatusBadRequest,
	ErrCodeCaseOutcomeInvalid: http.StatusInternalServerError,
	ErrCodeCaseConfigInvalid:  http.StatusInternalServerError,

	ErrCodeSemanticUnavailable:   http.StatusBadGateway,
	ErrCodeSemanticInvalidResult: http.StatusBadGateway,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeValidation:     "validation failed",
	ErrCodeSerialization:  "serialization failed",
	ErrCodeExternal:       "external collaborator error",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeMarkEmptyWordmark:   "wordmark cannot be empty",
	ErrCodeMarkScoreInvalid:    "similarity score out of range [0, 1]",
	ErrCodeMarkCategoryInvalid: "unknown similarity category",

	ErrCodeGSScoreInvalid:     "goods/services similarity score out of range [0, 1]",
	ErrCodeGSNiceClassInvalid: "Nice class out of range [1, 45]",
	ErrCodeGSEmptyTerm:        "goods/services term cannot be empty",

	ErrCodeCaseNoPairs:        "opposition case requires at least one goods/services pair",
	ErrCodeCaseOutcomeInvalid: "invalid opposition outcome",
	ErrCodeCaseConfigInvalid:  "invalid engine tunables",

	ErrCodeSemanticUnavailable:   "semantic assessor unavailable",
	ErrCodeSemanticInvalidResult: "semantic assessor returned an invalid result",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
