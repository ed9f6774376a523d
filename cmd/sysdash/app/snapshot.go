package app

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/metrics"
	"sysdash/internal/render"
)

func NewSnapshotCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Sample twice, one interval apart, and print the report",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = config.ModeSnapshot
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := openLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			sampler := metrics.NewSampler(cfg, log)
			defer sampler.Close()

			scheduler := metrics.NewScheduler(cfg.Interval, log, sampler, metrics.NewEngine(cfg.ShowStacked), nil)

			report, err := snapshot(cmd.Context(), scheduler, cfg.Interval)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), cfg.Output, report)
		},
	}

	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format (text, json, yaml)")
	return cmd
}

// snapshot primes the scheduler with one sample and returns the report of
// the second one.
func snapshot(ctx context.Context, scheduler *metrics.Scheduler, interval time.Duration) (domain.Report, error) {
	scheduler.Cycle(ctx)

	select {
	case <-ctx.Done():
		return domain.Report{}, ctx.Err()
	case <-time.After(interval):
	}

	return scheduler.Cycle(ctx), nil
}
