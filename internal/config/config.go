/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/decode"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root configuration schema of the errno command.
type Config struct {
	Version int `yaml:"version"`

	// Locale is passed to setlocale(3) before any message is read. Empty
	// selects the locale from the environment (LC_ALL, LC_MESSAGES, LANG).
	Locale string `yaml:"locale"`

	// Codeset, when set, overrides the codeset the OS reports for messages.
	Codeset string `yaml:"codeset"`

	// BufferSize is the decoder's working buffer size in bytes.
	BufferSize int `yaml:"buffer_size"`

	// Format selects the output format: "text" or "json".
	Format string `yaml:"format"`

	// Aliases maps vendor codeset names to names the resolver understands,
	// on top of the built-in table.
	Aliases map[string]string `yaml:"aliases"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:    1,
		Locale:     "",
		Codeset:    "",
		BufferSize: decode.DefaultBufferSize,
		Format:     FormatText,
		Aliases:    map[string]string{},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return Config{}, fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	cfg = mergeDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func mergeDefaults(cfg Config) Config {
	def := Default()

	if cfg.BufferSize == 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Aliases == nil {
		cfg.Aliases = def.Aliases
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	return cfg
}

// Validate enforces basic schema constraints.
func Validate(cfg Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	if cfg.BufferSize < decode.MinBufferSize {
		return fmt.Errorf("buffer_size must be >= %d", decode.MinBufferSize)
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return fmt.Errorf("format must be %q or %q", FormatText, FormatJSON)
	}
	if _, err := codeset.Parse(cfg.Codeset); err != nil {
		return fmt.Errorf("codeset %q: %w", cfg.Codeset, err)
	}
	if strings.ContainsAny(cfg.Locale, "\x00\r\n") {
		return fmt.Errorf("locale must be a single line")
	}
	for name, target := range cfg.Aliases {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("aliases: empty name or target (%q -> %q)", name, target)
		}
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Write writes the config to disk with safe permissions.
func Write(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
