package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarAlreadyRented = errs.New("car already rented")
	ErrInvalidWindow    = errs.New("invalid rental window")
)

// CarAlreadyRentedError carries the car that could not be booked.
type CarAlreadyRentedError struct {
	Car shared.CarSnapshot
}

func (e *CarAlreadyRentedError) Error() string {
	return fmt.Sprintf("Car %q is already rented for the requested period", e.Car.Name)
}

func (e *CarAlreadyRentedError) ErrorName() string {
	return "CarAlreadyRentedError"
}

func (e *CarAlreadyRentedError) Is(target error) bool {
	return target == ErrCarAlreadyRented
}

// RentalAvailabilityChecker decides whether a car can be booked for a window.
// A car is unavailable when one of its rentals lies entirely within the requested window.
type RentalAvailabilityChecker interface {
	IsAvailable(ctx context.Context, carID uuid.UUID, window rental.Window) (bool, error)
}

type availabilityChecker struct {
	reads shared.CommandReads
}

func NewRentalAvailabilityChecker(reads shared.CommandReads) RentalAvailabilityChecker {
	return &availabilityChecker{reads: reads}
}

func (a *availabilityChecker) IsAvailable(ctx context.Context, carID uuid.UUID, window rental.Window) (bool, error) {
	snap, err := a.reads.ContainedRental(ctx, carID, window)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return true, nil
		}
		return false, err
	}

	existingWindow, err := rental.NewWindow(snap.RentStartedAt, snap.RentEndedAt)
	if err != nil {
		return false, errs.Wrapf(err, "stored rental %s has an invalid window", snap.ID)
	}
	existing := rental.ReconstructRental(snap.ID, snap.UserID, snap.CarID, existingWindow, snap.CreatedAt)
	return !existing.BlocksBooking(window), nil
}

type BookCarRequest struct {
	CarID  uuid.UUID
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

type RentalCommands interface {
	BookCar(ctx context.Context, req BookCarRequest) (*shared.RentalSnapshot, error)
}

type rentalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, clk clock.Clock) RentalCommands {
	return &rentalCommandsImpl{uow: uow, clock: clk}
}

// BookCar resolves the car, takes the per-car lock, checks availability and records the rental,
// all in one transaction.
func (uc *rentalCommandsImpl) BookCar(ctx context.Context, req BookCarRequest) (*shared.RentalSnapshot, error) {
	window, err := rental.NewWindow(req.Start, req.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	var booked *shared.RentalSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		carSnap, derr := tx.Reads().CarByID(ctx, req.CarID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return derr
		}

		if derr = tx.Cars().Lock(ctx, tx.DB(), req.CarID); derr != nil {
			return derr
		}

		available, derr := NewRentalAvailabilityChecker(tx.Reads()).IsAvailable(ctx, req.CarID, window)
		if derr != nil {
			return derr
		}
		if !available {
			return &CarAlreadyRentedError{Car: *carSnap}
		}

		r := rental.NewRental(req.UserID, req.CarID, window, uc.clock.Now())
		snap, derr := tx.Rentals().Create(ctx, tx.DB(), r)
		if derr != nil {
			return derr
		}
		booked = snap
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("car booked",
		"rental_id", booked.ID,
		"car_id", booked.CarID,
		"user_id", booked.UserID)
	return booked, nil
}
