package job

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// RentedFlagSweeper keeps cars.is_currently_rented in line with the rentals active now.
type RentedFlagSweeper struct {
	cron   *cron.Cron
	cmds   commands.CarCommands
	logger *slog.Logger
}

func NewRentedFlagSweeper(cfg config.Config, cmds commands.CarCommands, logger *slog.Logger) (*RentedFlagSweeper, error) {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))
	c := cron.New(
		cron.WithParser(cron.NewParser(
			cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor,
		)),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		cron.WithLogger(cronLogger),
	)

	s := &RentedFlagSweeper{cron: c, cmds: cmds, logger: logger}

	if cfg.Rental.SweepSpec == "" {
		return s, nil
	}
	if _, err := c.AddFunc(cfg.Rental.SweepSpec, s.run); err != nil {
		return nil, errs.Wrapf(err, "invalid RENTAL_SWEEP_SPEC %q", cfg.Rental.SweepSpec)
	}
	return s, nil
}

func (s *RentedFlagSweeper) Start() {
	if len(s.cron.Entries()) == 0 {
		s.logger.Info("rented flag sweeper disabled")
		return
	}
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *RentedFlagSweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("rented flag sweeper stop timed out")
	}
}

// Sweep runs one synchronization pass.
func (s *RentedFlagSweeper) Sweep(ctx context.Context) (int64, error) {
	changed, err := s.cmds.SyncRentedFlags(ctx)
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.logger.Info("rented flags synced", "changed", changed)
	}
	return changed, nil
}

func (s *RentedFlagSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error("rented flag sweep failed", "error", err)
	}
}
