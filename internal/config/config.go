// Package config loads fleet-tokens configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fleet-ui/fleet-tokens/internal/export"
	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

// AppName is used for the config file name and the XDG directory.
const AppName = "fleet-tokens"

// EnvPrefix prefixes environment overrides, e.g. FLEET_TOKENS_OUTPUT_DIR.
const EnvPrefix = "FLEET_TOKENS"

// Config is the full application configuration.
type Config struct {
	Inputs     InputsConfig  `mapstructure:"inputs"`
	Output     OutputConfig  `mapstructure:"output"`
	CSS        CSSConfig     `mapstructure:"css"`
	ErrorColor string        `mapstructure:"error_color"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// InputsConfig points at the design-tool exports.
type InputsConfig struct {
	Light   string `mapstructure:"light"`
	Dark    string `mapstructure:"dark"`
	Palette string `mapstructure:"palette"`
}

// OutputConfig names the generated artifacts.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	JSON     string `mapstructure:"json"`
	CSSLight string `mapstructure:"css_light"`
	CSSDark  string `mapstructure:"css_dark"`
}

// CSSConfig controls custom-property rendering.
type CSSConfig struct {
	Prefix        string `mapstructure:"prefix"`
	LightSelector string `mapstructure:"light_selector"`
	DarkSelector  string `mapstructure:"dark_selector"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	names := export.DefaultNames()
	return &Config{
		Output: OutputConfig{
			Dir:      "generated",
			JSON:     names.JSON,
			CSSLight: names.CSSLight,
			CSSDark:  names.CSSDark,
		},
		CSS: CSSConfig{
			Prefix:        export.DefaultPrefix,
			LightSelector: export.DefaultLightSelector,
			DarkSelector:  export.DefaultDarkSelector,
		},
		ErrorColor: tokens.DefaultErrorColor,
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// Loader reads configuration through viper.
type Loader struct {
	v       *viper.Viper
	workDir string
}

// NewLoader creates a loader that searches workDir and the XDG config dir.
func NewLoader(workDir string) *Loader {
	return &Loader{v: viper.New(), workDir: workDir}
}

// Load reads cfgFile when set, otherwise searches for fleet-tokens.yaml.
// A missing search-path file is not an error.
func (l *Loader) Load(cfgFile string) (*Config, error) {
	envFile := filepath.Join(l.workDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	setDefaults(l.v, DefaultConfig())

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if cfgFile != "" {
		l.v.SetConfigFile(cfgFile)
	} else {
		l.v.SetConfigName(AppName)
		l.v.SetConfigType("yaml")
		if l.workDir != "" {
			l.v.AddConfigPath(l.workDir)
		}
		l.v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.resolvePaths(l.baseDir())
	return cfg, nil
}

// ConfigFileUsed returns the file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

func (l *Loader) baseDir() string {
	if used := l.v.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}
	return l.workDir
}

// resolvePaths makes relative paths relative to the config file's directory.
func (c *Config) resolvePaths(base string) {
	if base == "" {
		return
	}
	for _, p := range []*string{&c.Inputs.Light, &c.Inputs.Dark, &c.Inputs.Palette, &c.Output.Dir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("inputs.light", cfg.Inputs.Light)
	v.SetDefault("inputs.dark", cfg.Inputs.Dark)
	v.SetDefault("inputs.palette", cfg.Inputs.Palette)
	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.json", cfg.Output.JSON)
	v.SetDefault("output.css_light", cfg.Output.CSSLight)
	v.SetDefault("output.css_dark", cfg.Output.CSSDark)
	v.SetDefault("css.prefix", cfg.CSS.Prefix)
	v.SetDefault("css.light_selector", cfg.CSS.LightSelector)
	v.SetDefault("css.dark_selector", cfg.CSS.DarkSelector)
	v.SetDefault("error_color", cfg.ErrorColor)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if err := tokens.ValidateHexColor(c.ErrorColor); err != nil {
		return fmt.Errorf("error_color: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir is required")
	}
	return nil
}

// ExportOptions converts CSS settings for the exporter.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Prefix:        c.CSS.Prefix,
		LightSelector: c.CSS.LightSelector,
		DarkSelector:  c.CSS.DarkSelector,
	}
}

// OutputNames converts output settings for the writer.
func (c *Config) OutputNames() export.Names {
	return export.Names{
		JSON:     c.Output.JSON,
		CSSLight: c.Output.CSSLight,
		CSSDark:  c.Output.CSSDark,
	}
}

// SemanticPath is the JSON artifact path inside the output directory.
func (c *Config) SemanticPath() string {
	return filepath.Join(c.Output.Dir, c.Output.JSON)
}
