package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds optional repository-local settings read from
// .gitlet/config.toml. A missing file means defaults; the file is never
// created implicitly.
type Config struct {
	Log LogConfig `toml:"log"`
}

// LogConfig controls the debug trace. Level follows zap's level names;
// File is the trace destination. Tracing is off unless File is set.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func loadConfig(gitletDir string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(gitletDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("read config: unmarshal: %w", err)
	}
	return &cfg, nil
}
