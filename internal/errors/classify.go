// Package errors classifies storage-layer failures into a closed set of
// violation categories. The mapping from category to operation outcome is
// operation-specific and lives in the service layer; this package only
// answers "what kind of constraint fired".
package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Violation int

const (
	// None means the error is nil.
	None Violation = iota
	// NotFound means the queried row does not exist.
	NotFound
	// NotNull means a NOT NULL constraint was violated.
	NotNull
	// Check means a CHECK constraint was violated.
	Check
	// Unique means a primary key or unique constraint was violated.
	Unique
	// ForeignKey means a referenced row is missing or still referenced.
	ForeignKey
	// Connection means the database itself was unreachable.
	Connection
	// Unknown covers everything else.
	Unknown
)

func (v Violation) String() string {
	switch v {
	case None:
		return "none"
	case NotFound:
		return "not_found"
	case NotNull:
		return "not_null"
	case Check:
		return "check"
	case Unique:
		return "unique"
	case ForeignKey:
		return "foreign_key"
	case Connection:
		return "connection"
	default:
		return "unknown"
	}
}

// Classify inspects a gorm error and returns its violation category.
// Matching is message-based so the same classifier covers both the postgres
// production driver and the sqlite driver used by the test suite.
func Classify(err error) Violation {
	if err == nil {
		return None
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}

	msg := strings.ToLower(err.Error())

	// Connection failures first: a lost connection can mention anything.
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "timeout") {
		return Connection
	}

	// postgres: duplicate key value violates unique constraint "..."
	// sqlite:   UNIQUE constraint failed: table.column
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return Unique
	}

	// postgres: violates foreign key constraint "..."
	// sqlite:   FOREIGN KEY constraint failed
	if strings.Contains(msg, "foreign key constraint") {
		return ForeignKey
	}

	// postgres: null value in column "..." violates not-null constraint
	// sqlite:   NOT NULL constraint failed: table.column
	if strings.Contains(msg, "not-null constraint") || strings.Contains(msg, "not null constraint") {
		return NotNull
	}

	// postgres: new row for relation "..." violates check constraint "..."
	// sqlite:   CHECK constraint failed: name
	if strings.Contains(msg, "check constraint") {
		return Check
	}

	return Unknown
}
