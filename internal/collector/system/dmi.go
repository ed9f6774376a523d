package system

import (
	"context"

	"github.com/jaypipes/ghw"

	"sysdash/internal/domain"
)

// ghw reports unreadable DMI attributes with this placeholder.
const dmiUnknown = "unknown"

func dmiValue(s string) string {
	if s == dmiUnknown {
		return ""
	}
	return s
}

func (c *Collector) ghwArgs(ctx context.Context) []any {
	return []any{
		ctx,
		ghw.WithPathOverrides(map[string]string{"/sys": c.sysRoot}),
		ghw.WithDisableWarnings(),
	}
}

func (c *Collector) getBoard(ctx context.Context) domain.BoardInfo {
	board, err := ghw.Baseboard(c.ghwArgs(ctx)...)
	if err != nil {
		c.log.Debug("failed to read baseboard", "error", err)
		return domain.BoardInfo{}
	}

	return domain.BoardInfo{
		Vendor:  dmiValue(board.Vendor),
		Name:    dmiValue(board.Product),
		Version: dmiValue(board.Version),
	}
}

func (c *Collector) getBIOS(ctx context.Context) domain.BIOSInfo {
	bios, err := ghw.BIOS(c.ghwArgs(ctx)...)
	if err != nil {
		c.log.Debug("failed to read bios", "error", err)
		return domain.BIOSInfo{}
	}

	return domain.BIOSInfo{
		Vendor:  dmiValue(bios.Vendor),
		Version: dmiValue(bios.Version),
		Date:    dmiValue(bios.Date),
	}
}
