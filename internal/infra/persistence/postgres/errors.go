package postgres

import (
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "preesh/internal/domain/errors"
)

// PostgreSQL error codes relevant to the translation.
const (
	pgUniqueViolation    = "23505"
	pgNotNullViolation   = "23502"
	pgCheckViolation     = "23514"
	pgInvalidTextRepr    = "22P02"
	pgStringDataTooLong  = "22001"
	pgNumericOutOfRange  = "22003"
	pgForeignKeyViolated = "23503"
)

// constraintFields maps uniqueness constraint names to the request-level
// field names reported to callers. Extend this map alongside the schema.
var constraintFields = map[string][]string{
	"idx_beasts_gamer_tag": {"gamerTag"},
	"idx_beasts_email":     {"email"},
	"idx_beasts_apple_id":  {"appleId"},
}

// translateError is the single point where storage-engine failures become
// domain errors. Every repository method funnels its failure path through it
// exactly once, so the response shape stays consistent across all endpoints:
//   - unique-constraint violation -> BadRequest naming the conflicting field(s)
//   - record not found            -> NotFound naming the resource when known
//   - structural rejection        -> UnprocessableEntity
//   - anything unrecognized       -> Unknown, logged for operator visibility
func translateError(logger *slog.Logger, err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if resource == "" {
			return domainerrors.ErrResourceNotFound
		}

		return domainerrors.NewNotFound(resource + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domainerrors.NewBadRequest(conflictingFields(pgErr.ConstraintName) + " already exists")
		case pgNotNullViolation, pgCheckViolation, pgInvalidTextRepr, pgStringDataTooLong, pgNumericOutOfRange:
			return domainerrors.NewUnprocessableEntity("Invalid data rejected by storage")
		case pgForeignKeyViolated:
			if resource == "" {
				return domainerrors.ErrResourceNotFound
			}

			return domainerrors.NewNotFound(resource + " references a missing resource")
		}
	}

	// GORM's driver-agnostic sentinels, for dialects that pre-translate.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.NewBadRequest("A unique field already exists")
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return domainerrors.NewUnprocessableEntity("Invalid data rejected by storage")
	}

	logger.Error("Unrecognized storage error",
		slog.String("resource", resource),
		slog.Any("error", err))

	return domainerrors.ErrUnexpectedDatabase
}

// conflictingFields resolves a violated constraint to the field names it
// guards, joined by comma when the constraint spans several columns. Unknown
// constraints fall back to deriving a name from the constraint itself rather
// than leaking nothing at all.
func conflictingFields(constraint string) string {
	if fields, ok := constraintFields[constraint]; ok {
		return strings.Join(fields, ", ")
	}
	if constraint == "" {
		return "A unique field"
	}

	// e.g. "idx_beasts_apple_id" -> "apple id"
	name := constraint
	for _, prefix := range []string{"idx_", "uni_", "uq_"} {
		name = strings.TrimPrefix(name, prefix)
	}
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}

	return strings.ReplaceAll(name, "_", " ")
}
