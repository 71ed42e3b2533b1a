package store

const globalEnvFile = "global_env.json"

// GlobalEnv remembers the env files selected for the project as a whole,
// used to pre-check the wizard's picker.
type GlobalEnv struct {
	LastEnvFiles []string `json:"last_env_files"`
}

// LoadGlobalEnv reads the project-wide env selection.
func LoadGlobalEnv(dir string) *GlobalEnv {
	g := &GlobalEnv{}
	loadJSON(dir, globalEnvFile, g)
	return g
}

// SaveGlobalEnv writes the selection back to disk.
func SaveGlobalEnv(dir string, g *GlobalEnv) error {
	return saveJSON(dir, globalEnvFile, g)
}
