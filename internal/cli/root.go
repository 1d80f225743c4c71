// Package cli implements the fleet-tokens command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/config"
	"github.com/fleet-ui/fleet-tokens/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile    string
	logLevel   string
	jsonOutput bool
	noColor    bool
	noProgress bool

	appConfig *config.Config
	logger    = zerolog.Nop()

	workDirFunc = os.Getwd
)

var rootCmd = &cobra.Command{
	Use:   "fleet-tokens",
	Short: "Generate Fleet semantic color artifacts",
	Long: `fleet-tokens merges the design tool's light and dark color exports into a
semantic color table and generates the JSON and CSS files the gallery consumes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fleet-tokens.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command and reports errors on stderr.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return exitCode(err)
	}
	return 0
}

func initApp() error {
	if noColor || os.Getenv("NO_COLOR") != "" {
		noColor = true
		color.NoColor = true
	}

	workDir, err := workDirFunc()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	loader := config.NewLoader(workDir)
	cfg, err := loader.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return &PreflightError{
			Message:  fmt.Sprintf("invalid configuration: %v", err),
			Hint:     "Fix the value in fleet-tokens.yaml or the FLEET_TOKENS_* environment",
			NextStep: "fleet-tokens --help",
		}
	}

	log, err := logging.New(os.Stderr, logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		NoColor: noColor,
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = log
	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config loaded")
	}
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
