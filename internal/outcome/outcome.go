// Package outcome defines the closed result vocabulary returned by every
// mutation operation. Callers never see raw storage errors; they see exactly
// one of these values.
package outcome

import "net/http"

type Outcome int

const (
	// OK means the operation succeeded and affected exactly one row.
	OK Outcome = iota
	// BadParams means the input was malformed or violated a business or
	// check constraint (non-positive id, rating out of range, interval
	// overlap, start after end).
	BadParams
	// AlreadyExists means a uniqueness constraint blocked the write.
	AlreadyExists
	// NotExists means the targeted or referenced entity is absent.
	NotExists
	// Error means the storage layer itself failed (connection loss and
	// the like), as opposed to a rejected but well-formed request.
	Error
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "OK"
	case BadParams:
		return "BAD_PARAMS"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	case NotExists:
		return "NOT_EXISTS"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// HTTPStatus maps an outcome to the status code the HTTP surface reports.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OK:
		return http.StatusOK
	case BadParams:
		return http.StatusBadRequest
	case AlreadyExists:
		return http.StatusConflict
	case NotExists:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
