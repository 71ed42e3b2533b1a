package store

import (
	"github.com/nrun-sh/nrun/internal/frecency"
)

const recentsFile = "recents.json"

// LoadRecents reads the execution history for a project directory. Missing
// or corrupt files yield an empty store.
func LoadRecents(dir string) *frecency.Store {
	var records []frecency.Record
	loadJSON(dir, recentsFile, &records)
	return frecency.NewStore(records)
}

// SaveRecents writes the execution history back to disk.
func SaveRecents(dir string, store *frecency.Store) error {
	records := store.Records()
	if records == nil {
		records = []frecency.Record{}
	}
	return saveJSON(dir, recentsFile, records)
}
