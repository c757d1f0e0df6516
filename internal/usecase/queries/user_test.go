//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		view     *queries.AuthorizedUserView
		storeErr error
		wantErr  error
	}{
		{
			name: "success: active user",
			view: builder.NewUserBuilder().BuildReadModel(),
		},
		{
			name:    "error: inactive user",
			view:    builder.NewUserBuilder().AsInactive().BuildReadModel(),
			wantErr: queries.ErrUserInactive,
		},
		{
			name:     "error: user not found",
			storeErr: infra.WrapRepoErr("user not found", nil, infra.KindNotFound),
			wantErr:  queries.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			q := queries.NewUserQueries(store)

			id := builder.NewUserBuilder().ID
			if tt.view != nil {
				id = tt.view.ID
			}
			store.EXPECT().FindByID(ctx, id).Return(tt.view, tt.storeErr)

			got, err := q.GetCurrentUser(ctx, id)
			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}

	t.Run("error: unexpected failure is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		q := queries.NewUserQueries(store)

		storeErr := errors.New("db down")
		store.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, storeErr)

		_, err := q.GetCurrentUser(ctx, builder.NewUserBuilder().ID)
		require.ErrorIs(t, err, storeErr)
	})
}
