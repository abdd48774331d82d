package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories need.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

//go:embed schema.sql
var schema string

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type constraintInfo struct {
	field   string
	message string
}

var constraints = map[string]constraintInfo{
	"airports_name_city_key":          {domain.NonFieldErrors, "The fields name, closest_big_city must make a unique set."},
	"airplane_types_name_key":         {"name", "airplane type with this name already exists."},
	"routes_source_destination_key":   {domain.NonFieldErrors, "This route already exists."},
	"routes_distinct_airports_check":  {domain.NonFieldErrors, "You can`t create this route."},
	"routes_distance_check":           {"distance", "Ensure this value is greater than or equal to 1."},
	"routes_source_id_fkey":           {"source", "Invalid pk - object does not exist."},
	"routes_destination_id_fkey":      {"destination", "Invalid pk - object does not exist."},
	"airplanes_airplane_type_id_fkey": {"airplane_type", "Invalid pk - object does not exist."},
	"airplanes_rows_check":            {"rows", "Ensure this value is greater than or equal to 1."},
	"airplanes_seats_in_row_check":    {"seats_in_row", "Ensure this value is greater than or equal to 1."},
	"flights_route_id_fkey":           {"route", "Invalid pk - object does not exist."},
	"flights_airplane_id_fkey":        {"airplane", "Invalid pk - object does not exist."},
	"flight_crews_crew_id_fkey":       {"crew", "Invalid pk - object does not exist."},
	"flight_crews_pkey":               {"crew", "Duplicate crew member."},
	"tickets_flight_id_fkey":          {"flight", "Invalid pk - object does not exist."},
	"tickets_flight_seat_key":         {domain.NonFieldErrors, "This seat is already occupied."},
	"tickets_row_check":               {"row", "Ensure this value is greater than or equal to 1."},
	"tickets_seat_check":              {"seat", "Ensure this value is greater than or equal to 1."},
}

// raceGuarded lists unique constraints that back an application check. Violating one
// means a concurrent writer got there first.
var raceGuarded = map[string]bool{
	"routes_source_destination_key": true,
	"tickets_flight_seat_key":       true,
}

// translateError maps storage failures onto domain errors so no raw driver error leaves
// the repository for a constraint the client caused.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	info, ok := constraints[pgErr.ConstraintName]
	if !ok {
		info = constraintInfo{field: domain.NonFieldErrors, message: pgErr.Message}
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if raceGuarded[pgErr.ConstraintName] || !ok {
			return &domain.ConflictError{Constraint: pgErr.ConstraintName, Message: info.message}
		}
		return domain.NewValidationError(info.field, info.message, domain.ErrIntegrityConflict)
	case pgerrcode.ForeignKeyViolation:
		return domain.NewValidationError(info.field, info.message, domain.ErrInvalidReference)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return domain.NewValidationError(info.field, info.message, nil)
	}
	return err
}

// rollback undoes tx when the enclosing write returned an error.
func rollback(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		_ = tx.Rollback(ctx)
	}
}
