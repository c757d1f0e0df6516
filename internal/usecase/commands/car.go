package commands

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound = errs.New("car not found")
	// ErrCarRejected marks create/update failures caused by the submitted data.
	ErrCarRejected = errs.New("car rejected")
)

type CarInput struct {
	Name  string
	Price int64
	Size  string
	Image string
}

func (in CarInput) attributes() car.Attributes {
	return car.Attributes{
		Name:  in.Name,
		Price: in.Price,
		Size:  in.Size,
		Image: in.Image,
	}
}

type CreateCarResult struct {
	CarID uuid.UUID
}

type CarCommands interface {
	CreateCar(ctx context.Context, in CarInput) (*CreateCarResult, error)
	UpdateCar(ctx context.Context, id uuid.UUID, in CarInput) error
	DeleteCar(ctx context.Context, id uuid.UUID) error
	SyncRentedFlags(ctx context.Context) (int64, error)
}

type carCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCarCommands(uow shared.UnitOfWork, clk clock.Clock) CarCommands {
	return &carCommandsImpl{uow: uow, clock: clk}
}

func (uc *carCommandsImpl) CreateCar(ctx context.Context, in CarInput) (*CreateCarResult, error) {
	c, err := car.NewCar(in.attributes(), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrCarRejected)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Cars().Create(ctx, tx.DB(), c)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, markRejection(err)
	}
	return &CreateCarResult{CarID: createdID}, nil
}

// UpdateCar replaces every field of the car and clears its rented flag.
func (uc *carCommandsImpl) UpdateCar(ctx context.Context, id uuid.UUID, in CarInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CarByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return derr
		}

		c := car.ReconstructCar(snap.ID, snap.Name, snap.Price, car.Size(snap.Size), snap.Image,
			snap.IsCurrentlyRented, snap.CreatedAt, snap.UpdatedAt)
		if derr = c.Replace(in.attributes(), uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrCarRejected)
		}

		derr = tx.Cars().Update(ctx, tx.DB(), c)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrCarNotFound
		}
		return derr
	})
	if err != nil {
		return markRejection(err)
	}
	return nil
}

// DeleteCar succeeds whether or not the car exists.
func (uc *carCommandsImpl) DeleteCar(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Delete(ctx, tx.DB(), id)
	})
}

// SyncRentedFlags sets is_currently_rented on every car from the rentals active now.
func (uc *carCommandsImpl) SyncRentedFlags(ctx context.Context) (int64, error) {
	var changed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Cars().SyncRentedFlags(ctx, tx.DB(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		changed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func markRejection(err error) error {
	if infra.IsRejection(err) {
		return errs.Mark(err, ErrCarRejected)
	}
	return err
}
