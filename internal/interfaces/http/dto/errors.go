package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown    = "ERR_UNKNOWN"
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	ErrCodeNotFound   = "ERR_NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes missing from the map fall back to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:    http.StatusInternalServerError,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,

	// Shared domain codes
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Validation of domain constructors
	"INVALID_NAME":  http.StatusBadRequest,
	"INVALID_LABEL": http.StatusBadRequest,
	"INVALID_PRICE": http.StatusBadRequest,
	"INVALID_CODE":  http.StatusBadRequest,
	"INVALID_TYPE":  http.StatusBadRequest,
	"INVALID_VALUE": http.StatusBadRequest,

	// Shipping resolution gates
	"COMPANY_INACTIVE": http.StatusUnprocessableEntity,
	"ZONE_INACTIVE":    http.StatusUnprocessableEntity,
	"CITY_INACTIVE":    http.StatusUnprocessableEntity,
	"ZONES_NOT_EMPTY":  http.StatusConflict,

	// Draft sessions
	"DRAFT_CONFLICT": http.StatusConflict,

	// Destructive data management
	"INVALID_CONFIRMATION": http.StatusForbidden,
	"EMPTY_SELECTION":      http.StatusBadRequest,
	"UNKNOWN_TARGET":       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
