// Package service implements the engine's operation contract: local
// precondition checks, guarded writes through the repositories, and the
// translation of storage violations into the closed outcome vocabulary.
// No storage error escapes this package; queries that find nothing return
// the entity's zero-value sentinel.
package service

import (
	apperrors "github.com/yonatan-reicher/staymarket-backend/internal/errors"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

// storageOutcome maps a storage violation onto an outcome. Unique and
// foreign-key violations mean different things per operation (a duplicate
// review versus a duplicate owner id, a missing customer versus a missing
// apartment), so callers pass the two operation-specific mappings; the rest
// of the table is fixed: not-null and check violations are malformed input,
// connection failures are infrastructure errors.
func storageOutcome(err error, onUnique, onForeignKey outcome.Outcome) outcome.Outcome {
	switch apperrors.Classify(err) {
	case apperrors.None:
		return outcome.OK
	case apperrors.Unique:
		return onUnique
	case apperrors.ForeignKey:
		return onForeignKey
	case apperrors.NotNull, apperrors.Check:
		return outcome.BadParams
	case apperrors.NotFound:
		return outcome.NotExists
	default:
		return outcome.Error
	}
}
