package frecency

// Record tracks usage history for a single script key.
type Record struct {
	Key        string `json:"key"`
	UseCount   uint32 `json:"use_count"`
	LastUsedAt int64  `json:"last_used_at"`
}

// MaxRecords bounds the store. Recording an execution that would grow the
// store past this limit evicts the record with the lowest frecency score.
const MaxRecords = 100

// Store is a bounded collection of usage records keyed by script identity.
// It is not safe for concurrent use; the session loop is single-threaded.
type Store struct {
	records []Record
}

// NewStore wraps previously persisted records. A nil slice is a valid empty
// store.
func NewStore(records []Record) *Store {
	return &Store{records: records}
}

// Records exposes the underlying slice for persistence.
func (s *Store) Records() []Record {
	return s.records
}

// Len reports the number of tracked keys.
func (s *Store) Len() int {
	return len(s.records)
}

// RecordExecution creates or updates the record for key: the use count is
// incremented and the last-use timestamp refreshed. If the store then holds
// more than MaxRecords entries, the record with the lowest frecency score at
// the current time is evicted (first encountered wins ties).
func (s *Store) RecordExecution(key string) {
	s.recordAt(key, NowMillis())
}

func (s *Store) recordAt(key string, now int64) {
	updated := false
	for i := range s.records {
		if s.records[i].Key == key {
			s.records[i].UseCount++
			s.records[i].LastUsedAt = now
			updated = true
			break
		}
	}
	if !updated {
		s.records = append(s.records, Record{Key: key, UseCount: 1, LastUsedAt: now})
	}

	if len(s.records) <= MaxRecords {
		return
	}

	lowestIdx := 0
	lowest := Score(s.records[0].UseCount, s.records[0].LastUsedAt, now)
	for i := 1; i < len(s.records); i++ {
		score := Score(s.records[i].UseCount, s.records[i].LastUsedAt, now)
		if score < lowest {
			lowest = score
			lowestIdx = i
		}
	}
	s.records = append(s.records[:lowestIdx], s.records[lowestIdx+1:]...)
}

// ScoreOf returns the frecency score for key evaluated at now, or 0 when the
// key has never been recorded.
func (s *Store) ScoreOf(key string, now int64) float64 {
	for _, r := range s.records {
		if r.Key == key {
			return Score(r.UseCount, r.LastUsedAt, now)
		}
	}
	return 0
}
