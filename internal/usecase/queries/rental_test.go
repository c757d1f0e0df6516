//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/patch"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRentalQueries_ListUserRentals(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func(t *testing.T) (queries.RentalQueries, *queriesmock.MockRentalReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRentalReadStore(ctrl)
		return queries.NewRentalQueries(store, queries.NewPaginator(queries.DefaultPageSize, queries.MaxPageSize)), store
	}

	t.Run("success: returns the user's rentals", func(t *testing.T) {
		q, store := setup(t)
		views := []queries.RentalView{builder.NewRentalBuilder().WithUserID(userID).BuildView()}
		store.EXPECT().ListByUser(ctx, userID, queries.QueryOptions{Offset: 0, Limit: 10}).Return(views, nil)
		store.EXPECT().CountByUser(ctx, userID).Return(1, nil)

		got, err := q.ListUserRentals(ctx, userID, nil, nil)
		require.NoError(t, err)

		want := &queries.RentalList{
			Rentals:    views,
			Pagination: queries.Summary{CurrentPage: 1, PageSize: 10, TotalCount: 1, TotalPages: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("RentalList mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: invalid page number", func(t *testing.T) {
		q, _ := setup(t)

		_, err := q.ListUserRentals(ctx, userID, nil, patch.Ptr(0))
		assert.True(t, errs.Is(err, queries.ErrInvalidPagination))
	})

	t.Run("error: store failure is propagated", func(t *testing.T) {
		q, store := setup(t)
		storeErr := errors.New("timeout")
		store.EXPECT().ListByUser(ctx, userID, gomock.Any()).Return(nil, storeErr)

		_, err := q.ListUserRentals(ctx, userID, nil, nil)
		require.ErrorIs(t, err, storeErr)
	})
}
