// Package cli implements the storekeep command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	passcode  string
}

var flags rootFlags

// NewRootCmd creates the top-level "storekeep" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "storekeep",
		Short: "A client-resident storefront catalog and admin tool",
		Long: "Storekeep maintains a product catalog, customer reviews, brand\n" +
			"configuration, and a cart in a local durable store. Admin-only\n" +
			"operations are gated behind a session passcode.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .storekeep)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .storekeep-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.passcode, "passcode", "", "admin passcode for gated commands (or STOREKEEP_PASSCODE)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newProductCmd())
	root.AddCommand(newReviewCmd())
	root.AddCommand(newBrandCmd())
	root.AddCommand(newCartCmd())
	root.AddCommand(newViewCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// setupLogging installs the process-wide slog handler with the level from
// config (default info).
func setupLogging() error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetString(cfgKeyLogLevel))); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveDataDir returns the data directory from flag, config, env, or default.
func resolveDataDir(configYAMLValue string) (string, error) {
	return paths.ResolveDataDir(flags.dataDir, configYAMLValue)
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
