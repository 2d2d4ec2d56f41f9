package config

// Config holds runtime settings for the static asset server.
//
// Fields:
//   - Addr: listen address in host:port form.
//   - StaticDir: directory holding the compiled front-end assets.
type Config struct {
	Addr      string
	StaticDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.StaticDir = "web/static"
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
