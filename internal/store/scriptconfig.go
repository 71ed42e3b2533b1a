package store

import "time"

const scriptConfigsFile = "script_configs.json"

// ScriptConfig remembers the last wizard choices for one script.
type ScriptConfig struct {
	// Args is the extra argument string appended to the script command.
	Args string `json:"args"`
	// EnvFiles are the dotenv paths selected last time.
	EnvFiles []string `json:"env_files,omitempty"`
	// LastUsed is a unix timestamp in seconds.
	LastUsed int64 `json:"last_used"`
}

// ScriptConfigs maps script keys to their remembered configuration.
type ScriptConfigs map[string]ScriptConfig

// LoadScriptConfigs reads the per-script configuration for a project
// directory.
func LoadScriptConfigs(dir string) ScriptConfigs {
	configs := make(ScriptConfigs)
	loadJSON(dir, scriptConfigsFile, &configs)
	return configs
}

// SaveScriptConfigs writes the configurations back to disk.
func SaveScriptConfigs(dir string, configs ScriptConfigs) error {
	return saveJSON(dir, scriptConfigsFile, configs)
}

// Remember stores the wizard outcome for a script key, stamping it with the
// current time.
func (c ScriptConfigs) Remember(key, args string, envFiles []string) {
	c[key] = ScriptConfig{
		Args:     args,
		EnvFiles: envFiles,
		LastUsed: time.Now().Unix(),
	}
}
