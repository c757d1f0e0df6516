//go:build unit

package repository_test

import (
	"context"
	"testing"

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

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()
	b := builder.NewRentalBuilder()

	t.Run("success: returns the stored rental", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockRentalWriteQueries(ctrl)
		want := sqlc.CreateRentalParams{
			ID:            b.ID,
			UserID:        b.UserID,
			CarID:         b.CarID,
			RentStartedAt: pgtype.Timestamptz{Time: b.Start, Valid: true},
			RentEndedAt:   pgtype.Timestamptz{Time: b.End, Valid: true},
			CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		}
		q.EXPECT().CreateRental(ctx, gomock.Any(), want).Return(b.BuildInfra(), nil)

		got, err := repository.NewRentalRepository(q).Create(ctx, nil, b.BuildDomain())
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildSnapshot(), got); diff != "" {
			t.Errorf("RentalSnapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: unknown user is a foreign key violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockRentalWriteQueries(ctrl)
		q.EXPECT().CreateRental(ctx, gomock.Any(), gomock.Any()).
			Return(sqlc.Rentals{}, &pgconn.PgError{Code: "23503", ConstraintName: "rentals_user_id_fkey"})

		got, err := repository.NewRentalRepository(q).Create(ctx, nil, b.BuildDomain())
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestRentalRepository_FindContained(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	requested := builder.NewRentalBuilder().WithCarID(carID)

	wantParams := sqlc.FindContainedRentalParams{
		CarID:         carID,
		RentStartedAt: pgtype.Timestamptz{Time: requested.Start, Valid: true},
		RentEndedAt:   pgtype.Timestamptz{Time: requested.End, Valid: true},
	}

	testCases := []struct {
		name     string
		row      sqlc.Rentals
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success: contained rental found", row: builder.NewRentalBuilder().WithCarID(carID).BuildInfra()},
		{name: "error: nothing contained", dbErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errConnectionLost, wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockRentalWriteQueries(ctrl)
			q.EXPECT().FindContainedRental(ctx, gomock.Any(), wantParams).Return(tc.row, tc.dbErr)

			got, err := repository.NewRentalRepository(q).FindContained(ctx, nil, carID, requested.BuildWindow())
			if tc.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.ID, got.ID)
			assert.Equal(t, carID, got.CarID)
		})
	}
}
