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
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
	ErrCodeUnknown            ErrorCode = "COMMON_999"

	CodeOK = ErrorCode("OK")
)

// Filing Module Error Codes
const (
	ErrCodeFilingNotFound       ErrorCode = "FIL_001"
	ErrCodeFilingAlreadyExists  ErrorCode = "FIL_002"
	ErrCodeDocketNumberRequired ErrorCode = "FIL_003"
	ErrCodeLastEntryRemoval     ErrorCode = "FIL_004"
	ErrCodeEntryIndexOutOfRange ErrorCode = "FIL_005"
	ErrCodeUnknownField         ErrorCode = "FIL_006"
)

// Fee Module Error Codes
const (
	ErrCodeFeeComputationFailed ErrorCode = "FEE_001"
	ErrCodeFeeCacheStale        ErrorCode = "FEE_002"
)

// Document Module Error Codes
const (
	ErrCodeDocumentKindUnknown ErrorCode = "DOC_001"
	ErrCodeRenderFailed        ErrorCode = "DOC_002"
	ErrCodeArtifactNotFound    ErrorCode = "DOC_003"
	ErrCodeArtifactUploadFailed ErrorCode = "DOC_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,
	ErrCodeUnknown:            http.StatusInternalServerError,

	ErrCodeFilingNotFound:       http.StatusNotFound,
	ErrCodeFilingAlreadyExists:  http.StatusConflict,
	ErrCodeDocketNumberRequired: http.StatusBadRequest,
	ErrCodeLastEntryRemoval:     http.StatusConflict,
	ErrCodeEntryIndexOutOfRange: http.StatusBadRequest,
	ErrCodeUnknownField:         http.StatusBadRequest,

	ErrCodeFeeComputationFailed: http.StatusInternalServerError,
	ErrCodeFeeCacheStale:        http.StatusInternalServerError,

	ErrCodeDocumentKindUnknown:  http.StatusBadRequest,
	ErrCodeRenderFailed:         http.StatusInternalServerError,
	ErrCodeArtifactNotFound:     http.StatusNotFound,
	ErrCodeArtifactUploadFailed: http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",
	ErrCodeUnknown:            "unknown error",

	ErrCodeFilingNotFound:       "filing not found",
	ErrCodeFilingAlreadyExists:  "filing already exists",
	ErrCodeDocketNumberRequired: "docket number is required",
	ErrCodeLastEntryRemoval:     "cannot remove the last entry of a required list",
	ErrCodeEntryIndexOutOfRange: "entry index out of range",
	ErrCodeUnknownField:         "unknown field name",

	ErrCodeFeeComputationFailed: "fee computation failed",
	ErrCodeFeeCacheStale:        "cached fee breakdown is stale",

	ErrCodeDocumentKindUnknown:  "unknown document kind",
	ErrCodeRenderFailed:         "document rendering failed",
	ErrCodeArtifactNotFound:     "document artifact not found",
	ErrCodeArtifactUploadFailed: "document artifact upload failed",
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
