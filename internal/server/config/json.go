package config

import (
	"encoding/json"
	"os"

	"github.com/velvetresearch/velvet/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	Addr      *string `json:"addr"`
	StaticDir *string `json:"static_dir"`
}

// parseJSON overlays Config with values loaded from a JSON file named by
// the -c or -config flag. Panics on read or unmarshal errors.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.StaticDir != nil {
		cfg.StaticDir = *jc.StaticDir
	}
}
