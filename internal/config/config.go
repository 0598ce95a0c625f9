package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Data   DataConfig   `yaml:"data" json:"data"`
	AI     AIConfig     `yaml:"ai" json:"ai"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type DataConfig struct {
	Dir string `yaml:"dir" json:"dir"`
	// SeedDemoData populates the demo tasks when the store starts
	// empty.
	SeedDemoData bool `yaml:"seed_demo_data" json:"seed_demo_data"`
}

type AIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Model   string `yaml:"model" json:"model"`
	// APIKey is never read from the file; see FromEnv.
	APIKey string `yaml:"-" json:"-"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Data: DataConfig{
			Dir:          "data",
			SeedDemoData: true,
		},
		AI: AIConfig{
			Enabled: true,
			Model:   "gemini-3-flash-preview",
		},
	}
}

// Load reads the yaml config file, falling back to defaults when the
// file does not exist. Env overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AETHER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("AETHER_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("AETHER_SEED"); v != "" {
		c.Data.SeedDemoData = v == "1" || v == "true"
	}
}
