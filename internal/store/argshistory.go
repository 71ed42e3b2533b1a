package store

const (
	argsHistoryFile = "args_history.json"

	// maxArgsHistory caps the remembered argument strings per project.
	maxArgsHistory = 20
)

// ArgsHistory remembers argument strings entered in the wizard, most
// recent first.
type ArgsHistory struct {
	Entries []string `json:"entries"`
}

// LoadArgsHistory reads the history for a project directory.
func LoadArgsHistory(dir string) *ArgsHistory {
	h := &ArgsHistory{}
	loadJSON(dir, argsHistoryFile, h)
	return h
}

// SaveArgsHistory writes the history back to disk.
func SaveArgsHistory(dir string, h *ArgsHistory) error {
	return saveJSON(dir, argsHistoryFile, h)
}

// Add moves entry to the front, deduplicating and enforcing the cap.
// Empty entries are ignored.
func (h *ArgsHistory) Add(entry string) {
	if entry == "" {
		return
	}
	out := make([]string, 0, len(h.Entries)+1)
	out = append(out, entry)
	for _, e := range h.Entries {
		if e != entry {
			out = append(out, e)
		}
	}
	if len(out) > maxArgsHistory {
		out = out[:maxArgsHistory]
	}
	h.Entries = out
}
