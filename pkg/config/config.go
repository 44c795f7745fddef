package config

import (
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective fontproxy configuration.
type Config struct {
	Fonts  Fonts  `koanf:"fonts" toml:"fonts"`
	Store  Store  `koanf:"store" toml:"store"`
	Reboot Reboot `koanf:"reboot" toml:"reboot"`
	Output Output `koanf:"output" toml:"output"`
}

// Fonts describes the system font directory
type Fonts struct {
	Directory  string   `koanf:"directory" toml:"directory"`
	Extensions []string `koanf:"extensions" toml:"extensions"`
}

// Store selects where the substitution and installed-font tables live
type Store struct {
	Backend string `koanf:"backend" toml:"backend"`
	Path    string `koanf:"path" toml:"path"`
}

// Reboot controls the restart after a change
type Reboot struct {
	Enabled bool     `koanf:"enabled" toml:"enabled"`
	Command []string `koanf:"command" toml:"command"`
}

// Output selects the result format of CLI commands
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Layout returns the font directory layout described by the configuration
func (c *Config) Layout() fontref.Layout {
	return fontref.NewLayout(c.Fonts.Directory, c.Fonts.Extensions...)
}

// TOML renders the configuration as a config file
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// postProcess fills in platform defaults and normalises paths and extensions
func postProcess(cfg *Config) {
	if cfg.Fonts.Directory == "" {
		cfg.Fonts.Directory = paths.DefaultFontDir()
	} else {
		cfg.Fonts.Directory = paths.WithTrailingSeparator(paths.ExpandHome(cfg.Fonts.Directory))
	}

	exts := make([]string, 0, len(cfg.Fonts.Extensions))
	for _, ext := range cfg.Fonts.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, fontref.DefaultExtensions...)
	}
	cfg.Fonts.Extensions = exts

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if cfg.Store.Path == "" {
		cfg.Store.Path = paths.TablesFilePath()
	} else {
		cfg.Store.Path = paths.ExpandHome(cfg.Store.Path)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
}
