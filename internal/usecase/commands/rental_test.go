//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/shared"
	"car-rental-api/tests/common/builder"
	sharedmock "car-rental-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func notFound() error {
	return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
}

func TestRentalAvailabilityChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	requested, err := rental.NewWindow(day(10), day(20))
	require.NoError(t, err)

	tests := []struct {
		name      string
		contained *shared.RentalSnapshot
		readErr   error
		want      bool
		wantErr   bool
	}{
		{
			name:    "available: no rentals for the car",
			readErr: notFound(),
			want:    true,
		},
		{
			name:      "unavailable: existing rental inside the requested window",
			contained: builder.NewRentalBuilder().WithCarID(carID).WithWindow(day(12), day(15)).BuildSnapshot(),
			want:      false,
		},
		{
			name:      "unavailable: existing rental equal to the requested window",
			contained: builder.NewRentalBuilder().WithCarID(carID).WithWindow(day(10), day(20)).BuildSnapshot(),
			want:      false,
		},
		{
			name:    "error: read failure is propagated",
			readErr: infra.WrapRepoErr("failed to find contained rental", errors.New("timeout")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reads := sharedmock.NewMockCommandReads(ctrl)
			reads.EXPECT().ContainedRental(ctx, carID, requested).Return(tt.contained, tt.readErr)

			got, err := commands.NewRentalAvailabilityChecker(reads).IsAvailable(ctx, carID, requested)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unavailable: sub-microsecond start still matches the stored rental", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		window, err := rental.NewWindow(day(10).Add(500*time.Nanosecond), day(12))
		require.NoError(t, err)
		stored := builder.NewRentalBuilder().WithCarID(carID).WithWindow(day(10), day(11)).BuildSnapshot()
		reads.EXPECT().ContainedRental(ctx, carID, window).Return(stored, nil)

		got, err := commands.NewRentalAvailabilityChecker(reads).IsAvailable(ctx, carID, window)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestRentalCommands_BookCar(t *testing.T) {
	ctx := context.Background()
	now := day(1)

	t.Run("success: locks the car before checking availability, then creates the rental", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		carSnap := builder.NewCarBuilder().BuildSnapshot()
		b := builder.NewRentalBuilder().WithCarID(carSnap.ID).WithWindow(day(10), day(12))
		req := b.BuildBookRequest()

		gomock.InOrder(
			m.reads.EXPECT().CarByID(gomock.Any(), carSnap.ID).Return(carSnap, nil),
			m.cars.EXPECT().Lock(gomock.Any(), gomock.Any(), carSnap.ID).Return(nil),
			m.reads.EXPECT().ContainedRental(gomock.Any(), carSnap.ID, b.BuildWindow()).Return(nil, notFound()),
			m.rentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, r *rental.Rental) (*shared.RentalSnapshot, error) {
					assert.Equal(t, req.UserID, r.UserID())
					assert.Equal(t, req.CarID, r.CarID())
					assert.Equal(t, req.Start, r.Window().Start())
					assert.Equal(t, req.End, r.Window().End())
					assert.Equal(t, now, r.CreatedAt())
					return &shared.RentalSnapshot{
						ID:            r.ID(),
						UserID:        r.UserID(),
						CarID:         r.CarID(),
						RentStartedAt: r.Window().Start(),
						RentEndedAt:   r.Window().End(),
						CreatedAt:     r.CreatedAt(),
					}, nil
				}),
		)

		got, err := uc.BookCar(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.CarID, got.CarID)
		assert.Equal(t, req.UserID, got.UserID)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("error: unknown car returns ErrCarNotFound without locking", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		req := builder.NewRentalBuilder().BuildBookRequest()
		m.reads.EXPECT().CarByID(gomock.Any(), req.CarID).
			Return(nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound))

		got, err := uc.BookCar(ctx, req)
		assert.Nil(t, got)
		assert.True(t, errs.Is(err, commands.ErrCarNotFound))
	})

	t.Run("error: contained rental yields CarAlreadyRentedError and no write", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		carSnap := builder.NewCarBuilder().WithName("Mazda 2").BuildSnapshot()
		req := builder.NewRentalBuilder().WithCarID(carSnap.ID).WithWindow(day(10), day(20)).BuildBookRequest()
		existing := builder.NewRentalBuilder().WithCarID(carSnap.ID).WithWindow(day(12), day(13)).BuildSnapshot()

		m.reads.EXPECT().CarByID(gomock.Any(), carSnap.ID).Return(carSnap, nil)
		m.cars.EXPECT().Lock(gomock.Any(), gomock.Any(), carSnap.ID).Return(nil)
		m.reads.EXPECT().ContainedRental(gomock.Any(), carSnap.ID, gomock.Any()).Return(existing, nil)

		got, err := uc.BookCar(ctx, req)
		assert.Nil(t, got)

		var rented *commands.CarAlreadyRentedError
		require.ErrorAs(t, err, &rented)
		assert.Equal(t, *carSnap, rented.Car)
		assert.Equal(t, `Car "Mazda 2" is already rented for the requested period`, rented.Error())
		assert.Equal(t, "CarAlreadyRentedError", rented.ErrorName())
		assert.True(t, errors.Is(err, commands.ErrCarAlreadyRented))
	})

	t.Run("error: end not after start is rejected before the transaction", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		req := builder.NewRentalBuilder().WithWindow(day(12), day(12)).BuildBookRequest()

		_, err := uc.BookCar(ctx, req)
		assert.True(t, errs.Is(err, commands.ErrInvalidWindow))
		assert.ErrorIs(t, err, rental.ErrInvalidWindow)
	})

	t.Run("error: lock failure aborts the booking", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		carSnap := builder.NewCarBuilder().BuildSnapshot()
		req := builder.NewRentalBuilder().WithCarID(carSnap.ID).BuildBookRequest()
		lockErr := infra.WrapRepoErr("failed to lock car", errors.New("lock timeout"))

		m.reads.EXPECT().CarByID(gomock.Any(), carSnap.ID).Return(carSnap, nil)
		m.cars.EXPECT().Lock(gomock.Any(), gomock.Any(), carSnap.ID).Return(lockErr)

		_, err := uc.BookCar(ctx, req)
		require.ErrorIs(t, err, lockErr)
	})

	t.Run("error: availability read failure is propagated unchanged", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
		carSnap := builder.NewCarBuilder().BuildSnapshot()
		req := builder.NewRentalBuilder().WithCarID(carSnap.ID).BuildBookRequest()
		readErr := infra.WrapRepoErr("failed to find contained rental", errors.New("timeout"))

		m.reads.EXPECT().CarByID(gomock.Any(), carSnap.ID).Return(carSnap, nil)
		m.cars.EXPECT().Lock(gomock.Any(), gomock.Any(), carSnap.ID).Return(nil)
		m.reads.EXPECT().ContainedRental(gomock.Any(), carSnap.ID, gomock.Any()).Return(nil, readErr)

		_, err := uc.BookCar(ctx, req)
		require.ErrorIs(t, err, readErr)
		assert.False(t, errs.Is(err, commands.ErrCarAlreadyRented))
	})
}
