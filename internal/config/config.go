// Package config loads the asfdump configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-asf/internal/guid"
	"github.com/robert-malhotra/go-asf/internal/logging"
)

// Config is the resolved dump configuration.
type Config struct {
	LogLevel      zerolog.Level
	MaxObjectSize uint64
	StrictSize    bool
	Fingerprint   bool
	Names         map[guid.GUID]string
}

type fileConfig struct {
	LogLevel      string            `toml:"log_level"`
	MaxObjectSize uint64            `toml:"max_object_size"`
	StrictSize    bool              `toml:"strict_size"`
	Fingerprint   bool              `toml:"fingerprint"`
	Names         map[string]string `toml:"names"`
}

// DefaultMaxObjectSize bounds a single object to 64 MiB.
const DefaultMaxObjectSize = 64 << 20

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		LogLevel:      zerolog.InfoLevel,
		MaxObjectSize: DefaultMaxObjectSize,
		Names:         map[guid.GUID]string{},
	}
}

// Load decodes the TOML file at path over Default. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return Config{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("max_object_size") {
		cfg.MaxObjectSize = raw.MaxObjectSize
	}

	if meta.IsDefined("strict_size") {
		cfg.StrictSize = raw.StrictSize
	}

	if meta.IsDefined("fingerprint") {
		cfg.Fingerprint = raw.Fingerprint
	}

	for key, name := range raw.Names {
		id, err := guid.Parse(key)
		if err != nil {
			return Config{}, fmt.Errorf("parse names: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return Config{}, fmt.Errorf("parse names: empty name for %s", id)
		}
		cfg.Names[id] = name
	}

	return cfg, nil
}
