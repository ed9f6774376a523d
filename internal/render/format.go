package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"sysdash/internal/domain"
)

const unknown = "-"

func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

// ByteRate formats a bytes per second rate, "-" when it is not known.
func ByteRate(r domain.Rate) string {
	if !r.Known {
		return unknown
	}
	return humanize.IBytes(uint64(r.Value)) + "/s"
}

func CountRate(r domain.Rate) string {
	if !r.Known {
		return unknown
	}
	return humanize.CommafWithDigits(r.Value, 1) + "/s"
}

func Percent(pct float64) string {
	return fmt.Sprintf("%5.1f%%", pct)
}

func RatePercent(r domain.Rate) string {
	if !r.Known {
		return unknown
	}
	return Percent(r.Value)
}

// Bar draws a fixed width usage bar.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct = min(max(pct, 0), 100)
	filled := int(pct / 100 * float64(width))
	return levelStyle(pct).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

func Uptime(seconds float64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	d -= time.Duration(days) * 24 * time.Hour
	return fmt.Sprintf("%dd %02dh %02dm", days, int(d.Hours()), int(d.Minutes())%60)
}

func Celsius(millidegrees *int64) string {
	if millidegrees == nil {
		return unknown
	}
	return fmt.Sprintf("%.0f°C", float64(*millidegrees)/1000)
}
