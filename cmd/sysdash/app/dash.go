package app

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/metrics"
	"sysdash/internal/tui"
)

func NewDashCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Run the interactive dashboard (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(cmd.Context(), cfg)
		},
	}
}

func runDash(ctx context.Context, cfg *config.Config) error {
	cfg.Mode = config.ModeDash

	// The dashboard owns the terminal, so logs only go to a file.
	log, closeLog, err := openLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	sampler := metrics.NewSampler(cfg, log)
	defer sampler.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(tui.NewModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	scheduler := metrics.NewScheduler(cfg.Interval, log, sampler, metrics.NewEngine(cfg.ShowStacked), func(r domain.Report) {
		program.Send(tui.ReportMsg(r))
	})

	log.Info("sysdash: starting dashboard", "interval", cfg.Interval)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Start(gCtx)
		return nil
	})

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	return g.Wait()
}
