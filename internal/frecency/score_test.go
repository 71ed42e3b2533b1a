package frecency

import (
	"math"
	"testing"
)

func TestScoreHigherCountScoresHigher(t *testing.T) {
	now := NowMillis()

	prev := Score(0, now, now)
	for _, count := range []uint32{1, 2, 5, 10, 100} {
		got := Score(count, now, now)
		if got <= prev {
			t.Errorf("Score(%d) = %v, want > %v", count, got, prev)
		}
		prev = got
	}
}

func TestScoreOlderScoresLower(t *testing.T) {
	now := NowMillis()
	day := int64(24 * 60 * 60 * 1000)

	ages := []int64{0, day, 7 * day, 30 * day, 365 * day}
	prev := math.Inf(1)
	for _, age := range ages {
		got := Score(5, now-age, now)
		if got > prev {
			t.Errorf("Score at age %dms = %v, want <= %v", age, got, prev)
		}
		prev = got
	}
}

func TestScoreHalfLife(t *testing.T) {
	now := NowMillis()
	halfLife := int64(14 * 24 * 60 * 60 * 1000)

	for _, count := range []uint32{1, 3, 10, 50} {
		fresh := Score(count, now, now)
		aged := Score(count, now-halfLife, now)
		ratio := aged / fresh
		if math.Abs(ratio-0.5) > 0.01 {
			t.Errorf("count %d: half-life ratio = %v, want 0.5 +/- 0.01", count, ratio)
		}
	}
}

func TestScoreClampsClockSkew(t *testing.T) {
	now := NowMillis()

	future := Score(5, now+60_000, now)
	present := Score(5, now, now)
	if future != present {
		t.Errorf("future timestamp scored %v, want clamped to %v", future, present)
	}
}

func TestScoreAlwaysPositiveAndFinite(t *testing.T) {
	now := NowMillis()

	// Even a zero count yields a positive score: log2(0+1)+1 == 1.
	for _, count := range []uint32{0, 1, math.MaxUint32} {
		got := Score(count, 0, now)
		if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("Score(%d, 0, now) = %v, want finite positive", count, got)
		}
	}
}
