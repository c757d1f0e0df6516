//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"car-rental-api/internal/infra"
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

func newCarQueries(t *testing.T) (queries.CarQueries, *queriesmock.MockCarReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCarReadStore(ctrl)
	return queries.NewCarQueries(store, queries.NewPaginator(queries.DefaultPageSize, queries.MaxPageSize)), store
}

func TestCarQueries_ListCars(t *testing.T) {
	ctx := context.Background()
	views := []queries.CarView{
		builder.NewCarBuilder().WithName("Car A").BuildView(),
		builder.NewCarBuilder().WithName("Car B").BuildView(),
	}

	t.Run("success: returns cars with pagination summary", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().List(ctx, queries.QueryOptions{Offset: 2, Limit: 2}).Return(views, nil)
		store.EXPECT().Count(ctx).Return(5, nil)

		got, err := q.ListCars(ctx, patch.Ptr(2), patch.Ptr(2))
		require.NoError(t, err)

		want := &queries.CarList{
			Cars:       views,
			Pagination: queries.Summary{CurrentPage: 2, PageSize: 2, TotalCount: 5, TotalPages: 3},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("CarList mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: defaults when parameters are absent", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().List(ctx, queries.QueryOptions{Offset: 0, Limit: queries.DefaultPageSize}).Return([]queries.CarView{}, nil)
		store.EXPECT().Count(ctx).Return(0, nil)

		got, err := q.ListCars(ctx, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got.Cars)
		assert.Equal(t, queries.Summary{CurrentPage: 1, PageSize: 10, TotalCount: 0, TotalPages: 0}, got.Pagination)
	})

	t.Run("error: invalid pagination never reaches the store", func(t *testing.T) {
		q, _ := newCarQueries(t)

		got, err := q.ListCars(ctx, patch.Ptr(0), nil)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errs.Is(err, queries.ErrInvalidPagination))
	})

	t.Run("error: list failure is propagated", func(t *testing.T) {
		q, store := newCarQueries(t)
		storeErr := errors.New("connection reset")
		store.EXPECT().List(ctx, gomock.Any()).Return(nil, storeErr)

		_, err := q.ListCars(ctx, nil, nil)
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("error: count failure is propagated", func(t *testing.T) {
		q, store := newCarQueries(t)
		storeErr := errors.New("connection reset")
		store.EXPECT().List(ctx, gomock.Any()).Return(views, nil)
		store.EXPECT().Count(ctx).Return(0, storeErr)

		_, err := q.ListCars(ctx, nil, nil)
		require.ErrorIs(t, err, storeErr)
	})
}

func TestCarQueries_GetCar(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the car", func(t *testing.T) {
		q, store := newCarQueries(t)
		view := builder.NewCarBuilder().BuildView()
		store.EXPECT().FindByID(ctx, view.ID).Return(&view, nil)

		got, err := q.GetCar(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, &view, got)
	})

	t.Run("error: not found is mapped to ErrCarNotFound", func(t *testing.T) {
		q, store := newCarQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound))

		_, err := q.GetCar(ctx, id)
		assert.True(t, errs.Is(err, queries.ErrCarNotFound))
	})

	t.Run("error: other failures are propagated", func(t *testing.T) {
		q, store := newCarQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("failed", errors.New("boom")))

		_, err := q.GetCar(ctx, id)
		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrCarNotFound))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
