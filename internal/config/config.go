package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultKeyset favors the keys under the resting fingers of a QWERTY typist.
const DefaultKeyset = "etovxqpdygfblzhckisuran"

// EnvPrefix prefixes every environment override (HOP_KEYSET, HOP_FORMAT, ...).
const EnvPrefix = "HOP_"

// Config holds the defaults a call falls back to when a flag is not given.
type Config struct {
	Keyset          string `yaml:"keyset" mapstructure:"keyset" validate:"required,keyset"`
	Format          string `yaml:"format" mapstructure:"format" validate:"oneof=text json pairs"`
	Strict          bool   `yaml:"strict" mapstructure:"strict"`
	LogLevel        string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	MetricsTextfile string `yaml:"metrics_textfile" mapstructure:"metrics_textfile"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("keyset", validateKeyset)
}

// validateKeyset accepts strings domain.ParseKeyset accepts: distinct, visible symbols.
func validateKeyset(fl validator.FieldLevel) bool {
	_, err := domain.ParseKeyset(fl.Field().String())
	return err == nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keyset:   DefaultKeyset,
		Format:   "text",
		LogLevel: "info",
	}
}

// DefaultPath returns where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hop", "config.yaml")
}

// Load merges the defaults, the YAML file at path and HOP_* environment variables,
// in increasing priority. An empty path reads DefaultPath if it exists; an explicit
// path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	overlayEnv(raw)

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints. A bad keyset wraps the domain error
// (ErrDuplicateKey, ErrInvalidSymbol, ErrEmptyKeyset).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if _, kerr := domain.ParseKeyset(c.Keyset); kerr != nil {
			return fmt.Errorf("invalid config: keyset %q: %w", c.Keyset, kerr)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// overlayEnv copies HOP_<KEY> variables over the matching config keys.
func overlayEnv(raw map[string]any) {
	for _, key := range []string{"keyset", "format", "strict", "log_level", "metrics_textfile"} {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = v
		}
	}
}
