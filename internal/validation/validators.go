// Package validation holds the business rules checked before a write. The checks only
// produce friendly errors early; storage constraints remain the authoritative guard.
package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
)

type RouteLookup interface {
	RouteExists(ctx context.Context, sourceID, destinationID int64) (bool, error)
}

type SeatLookup interface {
	SeatLayout(ctx context.Context, flightID int64) (domain.SeatLayout, error)
	TicketExists(ctx context.Context, flightID int64, row, seat int) (bool, error)
}

// ValidateRoute rejects self-loops and duplicate (source, destination) pairs.
// The reverse pair is a different route and is allowed.
func ValidateRoute(ctx context.Context, lookup RouteLookup, sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return domain.NewValidationError(domain.NonFieldErrors, "You can`t create this route.", domain.ErrInvalidRoute)
	}

	exists, err := lookup.RouteExists(ctx, sourceID, destinationID)
	if err != nil {
		return fmt.Errorf("check route: %w", err)
	}
	if exists {
		return domain.NewValidationError(domain.NonFieldErrors, "This route already exists.", domain.ErrInvalidRoute)
	}
	return nil
}

// CheckSeatBounds is the storage-free part of the seat rule.
func CheckSeatBounds(row, seat int, layout domain.SeatLayout) error {
	if row < 1 || row > layout.Rows {
		return domain.NewValidationError("row",
			fmt.Sprintf("Row %d exceeds the airplane's limits (1-%d).", row, layout.Rows), domain.ErrSeatOutOfBounds)
	}
	if seat < 1 || seat > layout.SeatsInRow {
		return domain.NewValidationError("seat",
			fmt.Sprintf("Seat %d exceeds the airplane's limits (1-%d).", seat, layout.SeatsInRow), domain.ErrSeatOutOfBounds)
	}
	return nil
}

func ValidateTicketSeat(ctx context.Context, lookup SeatLookup, row, seat int, flightID int64) error {
	layout, err := lookup.SeatLayout(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("flight",
				fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", flightID), domain.ErrInvalidReference)
		}
		return fmt.Errorf("load seat layout: %w", err)
	}

	if err := CheckSeatBounds(row, seat, layout); err != nil {
		return err
	}

	taken, err := lookup.TicketExists(ctx, flightID, row, seat)
	if err != nil {
		return fmt.Errorf("check seat: %w", err)
	}
	if taken {
		return SeatTakenError(row, seat)
	}
	return nil
}

func SeatTakenError(row, seat int) error {
	return domain.NewValidationError(domain.NonFieldErrors,
		fmt.Sprintf("Seat %d in row %d is already occupied.", seat, row), domain.ErrSeatTaken)
}
