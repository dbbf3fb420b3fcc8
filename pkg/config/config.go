package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	perrors "github.com/arthur-debert/treeprune/pkg/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TREEPRUNE_"

// EnvConfigFile names a config file when --config is not given
const EnvConfigFile = EnvPrefix + "CONFIG"

// Keys shared by the loader and flag overrides
const (
	KeySpecFile      = "spec_file"
	KeyRootDir       = "root_dir"
	KeyClass         = "class"
	KeyIgnoreMissing = "ignore_missing"
	KeyDryRun        = "dry_run"
	KeyDisplayLimit  = "display_limit"
	KeyFormat        = "format"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the fully merged run configuration
type Config struct {
	SpecFile      string   `koanf:"spec_file"`
	RootDir       string   `koanf:"root_dir"`
	Class         string   `koanf:"class"`
	IgnoreMissing []string `koanf:"ignore_missing"`
	DryRun        bool     `koanf:"dry_run"`
	DisplayLimit  int      `koanf:"display_limit"`
	Format        string   `koanf:"format"`
}

// LoadOptions selects the optional layers
type LoadOptions struct {
	// ConfigFile is a TOML file; empty falls back to $TREEPRUNE_CONFIG
	ConfigFile string
	// Overrides are applied last, keyed like the TOML file
	Overrides map[string]interface{}
}

// Load merges defaults, config file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, perrors.Wrapf(err, perrors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail(perrors.DetailPath, configFile)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to apply overrides")
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
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.IgnoreMissing = compact(cfg.IgnoreMissing)
	return &cfg, nil
}

// Validate checks that a run has everything it needs
func (c *Config) Validate() error {
	var missing []string
	if c.SpecFile == "" {
		missing = append(missing, "spec file")
	}
	if c.RootDir == "" {
		missing = append(missing, "root directory")
	}
	if c.Class == "" {
		missing = append(missing, "class")
	}
	if len(missing) > 0 {
		return perrors.Newf(perrors.ErrConfigValid, "missing required settings: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}
	if c.DisplayLimit <= 0 {
		return perrors.Newf(perrors.ErrConfigValid, "display limit must be positive, got %d", c.DisplayLimit)
	}
	return nil
}

// compact trims entries and drops empty ones left by "a,,b" style env values
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
