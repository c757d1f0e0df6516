//go:build unit

package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"car-rental-api/internal/handler/job"
	"car-rental-api/internal/pkg/config"
	commandsmock "car-rental-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func configWithSpec(spec string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Rental.SweepSpec = spec
	return cfg
}

func TestNewRentedFlagSweeper(t *testing.T) {
	testCases := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "success: disabled when spec is empty", spec: ""},
		{name: "success: five field spec", spec: "*/5 * * * *"},
		{name: "success: six field spec with seconds", spec: "30 */5 * * * *"},
		{name: "success: descriptor", spec: "@every 1m"},
		{name: "error: malformed spec", spec: "every minute", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmds := commandsmock.NewMockCarCommands(ctrl)

			s, err := job.NewRentedFlagSweeper(configWithSpec(tc.spec), cmds, discardLogger())
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestRentedFlagSweeper_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns changed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCarCommands(ctrl)
		cmds.EXPECT().SyncRentedFlags(ctx).Return(int64(3), nil)

		s, err := job.NewRentedFlagSweeper(configWithSpec(""), cmds, discardLogger())
		require.NoError(t, err)

		n, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("error: sync failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCarCommands(ctrl)
		syncErr := errors.New("database error")
		cmds.EXPECT().SyncRentedFlags(ctx).Return(int64(0), syncErr)

		s, err := job.NewRentedFlagSweeper(configWithSpec(""), cmds, discardLogger())
		require.NoError(t, err)

		n, err := s.Sweep(ctx)
		assert.ErrorIs(t, err, syncErr)
		assert.Zero(t, n)
	})
}

func TestRentedFlagSweeper_StartStop(t *testing.T) {
	t.Run("success: scheduled sweep runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCarCommands(ctrl)
		ran := make(chan struct{}, 1)
		cmds.EXPECT().SyncRentedFlags(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

		s, err := job.NewRentedFlagSweeper(configWithSpec("@every 1s"), cmds, discardLogger())
		require.NoError(t, err)

		s.Start()
		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("sweep did not run")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	})

	t.Run("success: disabled sweeper starts and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCarCommands(ctrl)

		s, err := job.NewRentedFlagSweeper(configWithSpec(""), cmds, discardLogger())
		require.NoError(t, err)

		s.Start()
		s.Stop(context.Background())
	})
}
