// Package config holds the application settings, read from TOML.
package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// BasePath is the path the application is served under.
	BasePath   string `toml:"base_path"`
	ContentURL string `toml:"content_url"`

	// Dev server settings.
	Addr         string `toml:"addr"`
	PublicDir    string `toml:"public_dir"`
	ArticlesFile string `toml:"articles_file"`
	Prerender    bool   `toml:"prerender"`
}

func Default() Config {
	return Config{
		BasePath:     "/",
		ContentURL:   "content.json",
		Addr:         ":8080",
		PublicDir:    "public",
		ArticlesFile: "content.yaml",
		Prerender:    true,
	}
}

// Load reads the TOML file fname over the defaults.
func Load(fname string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(fname, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", fname, err)
	}

	if err := check(md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", fname, err)
	}

	return c, c.Validate()
}

// Decode is Load for TOML text.
func Decode(data string) (Config, error) {
	c := Default()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := check(md); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, c.Validate()
}

func check(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return nil
}

func (c Config) Validate() error {
	if !path.IsAbs(c.BasePath) {
		return fmt.Errorf(`application base path `+
			`must be a valid absolute path, got "%v"`, c.BasePath)
	}

	if c.ContentURL == "" {
		return errors.New("content_url must not be empty")
	}

	return nil
}

// CleanBasePath is the base path without a trailing slash, empty for "/".
func (c Config) CleanBasePath() string {
	p := path.Clean(c.BasePath)
	if p == "/" {
		return ""
	}

	return p
}
