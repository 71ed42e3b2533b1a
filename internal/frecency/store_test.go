package frecency

import (
	"fmt"
	"testing"
)

func TestRecordExecutionCreatesEntry(t *testing.T) {
	s := NewStore(nil)
	s.RecordExecution("root:dev")

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	r := s.Records()[0]
	if r.Key != "root:dev" || r.UseCount != 1 || r.LastUsedAt == 0 {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestRecordExecutionUpdatesEntry(t *testing.T) {
	now := NowMillis()
	s := NewStore([]Record{{Key: "root:dev", UseCount: 5, LastUsedAt: now - 10_000}})

	s.recordAt("root:dev", now)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	r := s.Records()[0]
	if r.UseCount != 6 {
		t.Errorf("UseCount = %d, want 6", r.UseCount)
	}
	if r.LastUsedAt != now {
		t.Errorf("LastUsedAt = %d, want %d", r.LastUsedAt, now)
	}
}

func TestRecordExecutionEvictsAtCapacity(t *testing.T) {
	now := NowMillis()

	records := make([]Record, 0, MaxRecords)
	for i := 0; i < MaxRecords; i++ {
		records = append(records, Record{
			Key:        fmt.Sprintf("key_%d", i),
			UseCount:   uint32(i + 1),
			LastUsedAt: now - int64(i)*1000,
		})
	}
	s := NewStore(records)

	s.recordAt("new_key", now)

	if s.Len() != MaxRecords {
		t.Fatalf("Len() = %d, want %d", s.Len(), MaxRecords)
	}
	if s.ScoreOf("new_key", now) == 0 {
		t.Error("newly inserted key missing after eviction")
	}
	// key_0 has count 1 at roughly age zero; the evicted entry must have
	// scored at or below it.
	if s.ScoreOf("key_0", now) == 0 {
		t.Error("key_0 evicted despite not having the lowest score")
	}
}

func TestEvictionRemovesLowestScore(t *testing.T) {
	now := NowMillis()
	month := int64(30 * 24 * 60 * 60 * 1000)

	records := make([]Record, 0, MaxRecords)
	records = append(records, Record{Key: "stale", UseCount: 1, LastUsedAt: now - 12*month})
	for i := 1; i < MaxRecords; i++ {
		records = append(records, Record{
			Key:        fmt.Sprintf("key_%d", i),
			UseCount:   10,
			LastUsedAt: now - 1000,
		})
	}
	s := NewStore(records)

	s.recordAt("new_key", now)

	if s.ScoreOf("stale", now) != 0 {
		t.Error("stale entry survived eviction")
	}
	if s.ScoreOf("new_key", now) == 0 {
		t.Error("new entry missing")
	}
}

func TestScoreOfUnknownKeyIsZero(t *testing.T) {
	s := NewStore(nil)
	if got := s.ScoreOf("missing", NowMillis()); got != 0 {
		t.Errorf("ScoreOf(missing) = %v, want 0", got)
	}
}
