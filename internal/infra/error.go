package infra

import (
	"errors"
	"log/slog"

	"car-rental-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// ErrorName is the name clients see when a write is rejected by the store.
func (e RepositoryError) ErrorName() string {
	switch e.Kind {
	case KindDuplicateKey:
		return "UniqueConstraintError"
	case KindForeignKeyViolated:
		return "ForeignKeyConstraintError"
	case KindCheckViolated, KindInvalidInput:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	default:
		return "DatabaseError"
	}
}

// PublicMessage omits the driver error text.
func (e RepositoryError) PublicMessage() string {
	return e.msg
}

// WrapRepoErr classifies err from its PostgreSQL error code unless kind is given explicitly.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	var k RepositoryErrorKind
	if len(kind) > 0 {
		k = kind[0]
	} else {
		k = classify(err)
	}

	if k != KindNotFound {
		slog.Error("repository error: "+msg, "kind", string(k), "error", err)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func classify(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated
	case pgErrCheckViolation, pgErrNotNullViolation:
		return KindCheckViolated
	case pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation, pgErrNumericValueOutOfRange:
		return KindInvalidInput
	default:
		return KindDBFailure
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsRejection reports whether the store refused a write because of the data itself.
func IsRejection(err error) bool {
	var e RepositoryError
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindDuplicateKey, KindForeignKeyViolated, KindCheckViolated, KindInvalidInput:
		return true
	default:
		return false
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindInvalidInput       RepositoryErrorKind = "INVALID_INPUT"
)

const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrCheckViolation            = "23514"
	pgErrNotNullViolation          = "23502"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrNumericValueOutOfRange    = "22003"
)
