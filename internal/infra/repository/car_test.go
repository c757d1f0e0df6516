//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/repository"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/tests/common/builder"
	repositorymock "car-rental-api/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("connection lost")

func newCar(t *testing.T) *car.Car {
	t.Helper()
	c, err := car.NewCar(builder.NewCarBuilder().BuildAttributes(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestCarRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: maps every field to the insert params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		c := newCar(t)

		want := sqlc.CreateCarParams{
			ID:                c.ID(),
			Name:              c.Name(),
			Price:             c.Price().Amount(),
			Size:              "Medium",
			Image:             c.Image().String(),
			IsCurrentlyRented: false,
			CreatedAt:         pgtype.Timestamptz{Time: c.CreatedAt(), Valid: true},
			UpdatedAt:         pgtype.Timestamptz{Time: c.UpdatedAt(), Valid: true},
		}
		q.EXPECT().CreateCar(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, got sqlc.CreateCarParams) (sqlc.Cars, error) {
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("CreateCarParams mismatch (-want +got):\n%s", diff)
				}
				return sqlc.Cars{ID: got.ID}, nil
			})

		id, err := repository.NewCarRepository(q).Create(ctx, nil, c)
		require.NoError(t, err)
		assert.Equal(t, c.ID(), id)
	})

	errorCases := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "error: check violation", dbErr: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
		{name: "error: not null violation", dbErr: &pgconn.PgError{Code: "23502"}, wantKind: infra.KindCheckViolated},
		{name: "error: duplicate key", dbErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "error: value too long", dbErr: &pgconn.PgError{Code: "22001"}, wantKind: infra.KindInvalidInput},
		{name: "error: connection failure", dbErr: errConnectionLost, wantKind: infra.KindDBFailure},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockCarWriteQueries(ctrl)
			q.EXPECT().CreateCar(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Cars{}, tc.dbErr)

			id, err := repository.NewCarRepository(q).Create(ctx, nil, newCar(t))
			require.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
			assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
			assert.ErrorIs(t, err, tc.dbErr)
		})
	}
}

func TestCarRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success: car updated"},
		{name: "error: car not found", dbErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errConnectionLost, wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockCarWriteQueries(ctrl)
			c := newCar(t)

			q.EXPECT().UpdateCar(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateCarParams) (sqlc.Cars, error) {
					assert.Equal(t, c.ID(), arg.ID)
					assert.False(t, arg.IsCurrentlyRented)
					return sqlc.Cars{ID: arg.ID}, tc.dbErr
				})

			err := repository.NewCarRepository(q).Update(ctx, nil, c)
			if tc.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
		})
	}
}

func TestCarRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: missing car is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		q.EXPECT().DeleteCar(ctx, gomock.Any(), id).Return(int64(0), nil)

		assert.NoError(t, repository.NewCarRepository(q).Delete(ctx, nil, id))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		q.EXPECT().DeleteCar(ctx, gomock.Any(), id).Return(int64(0), errConnectionLost)

		err := repository.NewCarRepository(q).Delete(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCarRepository_LockAndSync(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("success: lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		id := uuid.New()
		q.EXPECT().LockCar(ctx, gomock.Any(), id).Return(nil)

		assert.NoError(t, repository.NewCarRepository(q).Lock(ctx, nil, id))
	})

	t.Run("error: lock failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		q.EXPECT().LockCar(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "55P03"})

		err := repository.NewCarRepository(q).Lock(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: sync passes now as timestamptz", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		q.EXPECT().SyncCarRentedFlags(ctx, gomock.Any(), pgtype.Timestamptz{Time: now, Valid: true}).Return(int64(2), nil)

		n, err := repository.NewCarRepository(q).SyncRentedFlags(ctx, nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

func TestCarRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row becomes a snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		b := builder.NewCarBuilder().AsRented()
		q.EXPECT().GetCarByID(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

		got, err := repository.NewCarRepository(q).FindByID(ctx, nil, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildSnapshot(), got); diff != "" {
			t.Errorf("CarSnapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCarWriteQueries(ctrl)
		q.EXPECT().GetCarByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Cars{}, pgx.ErrNoRows)

		got, err := repository.NewCarRepository(q).FindByID(ctx, nil, uuid.New())
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
