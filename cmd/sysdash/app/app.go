// Package app wires the sysdash commands.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sysdash/internal/config"
	"sysdash/internal/logger"
)

const Name string = "sysdash"

func NewCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           Name,
		Short:         "Terminal dashboard for disks, mounts, network and CPU",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(cmd.Context(), cfg)
		},
	}

	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(NewDashCommand(cfg))
	root.AddCommand(NewSnapshotCommand(cfg))
	return root
}

// openLogger writes to the configured log file, or to fallback when none is
// set. The returned func closes the file.
func openLogger(cfg *config.Config, fallback io.Writer) (logger.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return logger.NewWithWriter(cfg, fallback), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.NewWithWriter(cfg, f), f.Close, nil
}
