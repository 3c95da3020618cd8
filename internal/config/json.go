package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/topup/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config values untouched.
type JsonConfig struct {
	UsersFile     string `json:"users_file"`
	CompaniesFile string `json:"companies_file"`
	OutputFile    string `json:"output_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config flags via
// flagx.JsonConfigFlags; when neither is given, nothing is loaded. Read or
// unmarshal errors panic (caller should recover if desired). Intended usage
// is defaults -> parseJson -> parseFlags, where later stages override
// earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.CompaniesFile != "" {
		cfg.CompaniesFile = jc.CompaniesFile
	}
	if jc.OutputFile != "" {
		cfg.OutputFile = jc.OutputFile
	}
}
