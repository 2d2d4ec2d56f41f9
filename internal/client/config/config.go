package config

// Config holds runtime settings for the Velvet Research client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - StorePath: SQLite file backing the local key/value store.
//   - ResumePolicy: what happens to a continue attempt suspended for
//     authentication ("manual" or "auto").
type Config struct {
	ServerBaseURL string
	StorePath     string
	ResumePolicy  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.StorePath = "velvet.db"
	c.ResumePolicy = "manual"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
