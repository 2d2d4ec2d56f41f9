package config

import (
	"encoding/json"
	"os"

	"github.com/velvetresearch/velvet/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type jsonConfig struct {
	ServerBaseURL *string `json:"server_base_url"`
	StorePath     *string `json:"store_path"`
	ResumePolicy  *string `json:"resume_policy"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigPath().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors; a config file that was asked for but
// cannot be used is a startup failure.
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

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.ResumePolicy != nil {
		cfg.ResumePolicy = *jc.ResumePolicy
	}
}
