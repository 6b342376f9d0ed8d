// Package level ties the decode pipeline together: the project
// configuration naming the schema and asset files, catalog loading, and
// the full level decode.
package level

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigName is the project file bmedit looks for.
const DefaultConfigName = "bmedit.toml"

// Config locates the schema database and the level's asset files. Relative
// paths are resolved against the config file's directory when read from
// disk.
type Config struct {
	Types  TypesConfig  `toml:"types"`
	Assets AssetsConfig `toml:"assets"`
	Log    LogConfig    `toml:"log"`
}

// TypesConfig names the schema inputs. Typedefs is a JSON array of type
// declarations, TypeIDs a JSON object mapping hex hashes to type names;
// either may carry a .zst suffix.
type TypesConfig struct {
	Typedefs string `toml:"typedefs"`
	TypeIDs  string `toml:"typeids"`
}

// AssetsConfig names the level's containers: the property instruction
// stream, the geometry entity section, its name side buffer, and the
// primitive chunk container.
type AssetsConfig struct {
	Properties string `toml:"properties"`
	Geometry   string `toml:"geometry"`
	Buffer     string `toml:"buffer"`
	Primitives string `toml:"primitives"`
}

// LogConfig selects the default log level; the CLI flag overrides it.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the starter layout written by init.
func DefaultConfig() *Config {
	return &Config{
		Types: TypesConfig{
			Typedefs: "types/typedefs.json",
			TypeIDs:  "types/typeids.json",
		},
		Assets: AssetsConfig{
			Properties: "assets/scene.prp",
			Geometry:   "assets/scene.gms",
			Buffer:     "assets/scene.buf",
			Primitives: "assets/scene.prm",
		},
		Log: LogConfig{Level: "info"},
	}
}

// ReadConfig loads a project file and resolves its relative paths against
// the file's directory.
func ReadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	resolve(&c.Types.Typedefs)
	resolve(&c.Types.TypeIDs)
	resolve(&c.Assets.Properties)
	resolve(&c.Assets.Geometry)
	resolve(&c.Assets.Buffer)
	resolve(&c.Assets.Primitives)
}

// WriteConfig atomically writes the project file.
func WriteConfig(path string, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("write config: encode: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bmedit-tmp-*")
	if err != nil {
		return fmt.Errorf("write config: tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: rename: %w", err)
	}
	return nil
}
