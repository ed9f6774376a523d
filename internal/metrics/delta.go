package metrics

import (
	"time"

	"sysdash/internal/domain"
)

// SaturatingSub returns cur-prev, or 0 with reset set when the counter went
// backwards.
func SaturatingSub(cur, prev uint64) (delta uint64, reset bool) {
	if cur < prev {
		return 0, true
	}
	return cur - prev, false
}

// PerSecond spreads amount over dt. A non-positive dt has no rate.
func PerSecond(amount float64, dt time.Duration) domain.Rate {
	if dt <= 0 {
		return domain.Rate{}
	}
	return domain.Rate{Value: amount / dt.Seconds(), Known: true}
}

func counterRate(cur, prev uint64, scale float64, dt time.Duration) (domain.Rate, bool) {
	delta, reset := SaturatingSub(cur, prev)
	return PerSecond(float64(delta)*scale, dt), reset
}
