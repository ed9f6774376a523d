// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	Mode        string        `validate:"oneof=dash snapshot"`
	Interval    time.Duration `validate:"min=100ms"`
	LogLevel    string        `validate:"oneof=debug info warn warning error"`
	LogFormat   string        `validate:"oneof=text json"`
	LogFile     string
	SysRoot     string `validate:"required"`
	ProcRoot    string `validate:"required"`
	MountTable  string
	OSRelease   string
	ShowStacked bool
	Output      string `validate:"oneof=text json yaml"`
}

const (
	ModeDash     = "dash"
	ModeSnapshot = "snapshot"
)

func Load() *Config {
	_ = godotenv.Load()

	interval := time.Second
	if raw := os.Getenv("SCRAPE_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			interval = parsed
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	sysRoot := os.Getenv("SYSDASH_SYS")
	if sysRoot == "" {
		sysRoot = "/sys"
	}

	procRoot := os.Getenv("SYSDASH_PROC")
	if procRoot == "" {
		procRoot = "/proc"
	}

	osRelease := os.Getenv("SYSDASH_OS_RELEASE")
	if osRelease == "" {
		osRelease = "/etc/os-release"
	}

	showStacked, _ := strconv.ParseBool(os.Getenv("SYSDASH_SHOW_STACKED"))

	return &Config{
		Mode:        ModeDash,
		Interval:    interval,
		LogLevel:    strings.ToLower(logLevel),
		LogFormat:   strings.ToLower(logFormat),
		LogFile:     os.Getenv("LOG_FILE"),
		SysRoot:     sysRoot,
		ProcRoot:    procRoot,
		MountTable:  os.Getenv("SYSDASH_MOUNTS"),
		OSRelease:   osRelease,
		ShowStacked: showStacked,
		Output:      "text",
	}
}

// BindFlags registers command line overrides; the current values are the
// defaults, so flags win over the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.DurationVarP(&c.Interval, "interval", "i", c.Interval, "refresh interval")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text, json)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.StringVar(&c.SysRoot, "sys", c.SysRoot, "sysfs mount point")
	fs.StringVar(&c.ProcRoot, "proc", c.ProcRoot, "procfs mount point")
	fs.StringVar(&c.MountTable, "mounts", c.MountTable, "mount table file (default <proc>/self/mounts)")
	fs.BoolVar(&c.ShowStacked, "show-stacked", c.ShowStacked, "also list stacked dm/md devices at top level")
}

func (c *Config) BlockRoot() string {
	return filepath.Join(c.SysRoot, "block")
}

func (c *Config) CPURoot() string {
	return filepath.Join(c.SysRoot, "devices", "system", "cpu")
}

func (c *Config) MountTablePath() string {
	if c.MountTable != "" {
		return c.MountTable
	}
	return filepath.Join(c.ProcRoot, "self", "mounts")
}

var validate = validator.New()

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
