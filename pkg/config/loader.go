package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	"github.com/arthur-debert/fontproxy/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "FONTPROXY_"

// Options selects the configuration sources beyond the defaults
type Options struct {
	// File is the user config file, TOML or YAML. Empty means
	// paths.ConfigFilePath(), which may be absent. An explicit file must exist.
	File string

	// Overrides are dotted keys ("store.backend") applied last
	Overrides map[string]interface{}
}

// Load builds the configuration from every layer.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse default configuration")
	}

	// 2. User config file
	path := opts.File
	explicit := path != ""
	if !explicit {
		path = paths.ConfigFilePath()
	}
	path = paths.ExpandHome(path)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	postProcess(&cfg)
	logger.Trace().
		Str("font_dir", cfg.Fonts.Directory).
		Str("store", cfg.Store.Backend).
		Bool("reboot", cfg.Reboot.Enabled).
		Msg("Configuration loaded")
	return &cfg, nil
}

// parserFor picks the parser by extension. Anything but .yaml or .yml is TOML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps FONTPROXY_REBOOT_ENABLED to reboot.enabled
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
