//go:build unit

package commands_test

import (
	"context"
	"testing"

	"car-rental-api/internal/usecase/shared"
	sharedmock "car-rental-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks runs every Within callback synchronously against mocked repositories.
type txMocks struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	cars    *sharedmock.MockCarRepository
	rentals *sharedmock.MockRentalRepository
	users   *sharedmock.MockUserRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		cars:    sharedmock.NewMockCarRepository(ctrl),
		rentals: sharedmock.NewMockRentalRepository(ctrl),
		users:   sharedmock.NewMockUserRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Cars().Return(m.cars).AnyTimes()
	m.tx.EXPECT().Rentals().Return(m.rentals).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	return m
}
