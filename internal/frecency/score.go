package frecency

import (
	"math"
	"time"
)

const (
	// halfLifeDays controls how quickly an unused entry loses weight:
	// 14 days without a run exactly halves the score.
	halfLifeDays = 14.0

	msPerDay = 1000.0 * 60 * 60 * 24
)

// Score calculates the frecency score for an entry with the given use count
// and last-use timestamp (milliseconds since epoch).
// Higher scores indicate more frequently and recently used entries.
// Elapsed time is clamped at zero so clock skew never inflates a score.
func Score(useCount uint32, lastUsedAt, now int64) float64 {
	var ageDays float64
	if now > lastUsedAt {
		ageDays = float64(now-lastUsedAt) / msPerDay
	}
	frequency := math.Log2(float64(useCount)+1) + 1
	return frequency * math.Pow(0.5, ageDays/halfLifeDays)
}

// NowMillis returns the current wall-clock time in milliseconds since epoch,
// the timestamp unit used throughout the recents store.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
