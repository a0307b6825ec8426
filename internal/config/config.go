package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/vango-dev/testkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vtestkit.yaml"

	// EnvPrefix prefixes environment overrides, e.g. VTESTKIT_LOG_LEVEL.
	EnvPrefix = "VTESTKIT"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vtestkit"
)

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete vtestkit.yaml configuration.
type Config struct {
	// Check contains prop contract checking defaults.
	Check CheckConfig `mapstructure:"check"`

	// Output contains terminal output settings.
	Output OutputConfig `mapstructure:"output"`

	// Log contains logger settings.
	Log LogConfig `mapstructure:"log"`

	// Metrics contains metrics export settings.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// CheckConfig contains prop contract checking defaults.
type CheckConfig struct {
	// FailFast reports only the first violation.
	FailFast bool `mapstructure:"fail_fast"`
}

// OutputConfig contains terminal output settings.
type OutputConfig struct {
	// Color is one of auto, always or never.
	Color string `mapstructure:"color"`

	// Pretty indents HTML printed for matched nodes.
	Pretty bool `mapstructure:"pretty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level"`

	// Format is text or json.
	Format string `mapstructure:"format"`
}

// MetricsConfig contains metrics export settings.
type MetricsConfig struct {
	// Namespace prefixes every exported metric name.
	Namespace string `mapstructure:"namespace"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Output:  OutputConfig{Color: ColorAuto},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Namespace: DefaultNamespace},
	}
}

// Load loads vtestkit.yaml from dir. A missing file is not an error: the
// defaults and environment overrides are used instead.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return load("")
		}
		return nil, errors.New("E010").Wrap(err)
	}
	return load(path)
}

// LoadFile loads configuration from an explicit path, which must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.New("E010").
			WithDetail("Config file not found: " + path).
			WithSuggestion("Check the --config path or remove the flag to use defaults").
			Wrap(err)
	}
	return load(path)
}

// load reads path (when set) through viper.
// Precedence: env vars > config file > defaults.
func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults must be registered before Unmarshal so AutomaticEnv knows
	// which keys to look up.
	setDefaults(v, New())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("E010").
				WithLocation(path, 0, 0).
				Wrap(err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E010").Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("check.fail_fast", d.Check.FailFast)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.pretty", d.Output.Pretty)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
}

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(detail string) error {
		e := errors.New("E010").WithDetail(detail)
		if c.configPath != "" {
			e = e.WithLocation(c.configPath, 0, 0)
		}
		return e
	}

	switch strings.ToLower(c.Output.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("output.color must be auto, always or never, got " + quote(c.Output.Color))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return invalid("log.format must be text or json, got " + quote(c.Log.Format))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("log.level must be debug, info, warn or error, got " + quote(c.Log.Level))
	}
	if !metricNameRe.MatchString(c.Metrics.Namespace) {
		return invalid("metrics.namespace must be a valid metric name, got " + quote(c.Metrics.Namespace))
	}
	return nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// ColorEnabled reports whether output to f should be colored.
// NO_COLOR disables color in auto mode.
func (c *Config) ColorEnabled(f *os.File) bool {
	switch strings.ToLower(c.Output.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FindProjectRoot searches for vtestkit.yaml starting from startDir
// and walking up the directory tree. It returns startDir when none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads config from the nearest project root above the
// current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E010").Wrap(err)
	}
	return Load(FindProjectRoot(wd))
}

func quote(s string) string {
	return `"` + s + `"`
}
