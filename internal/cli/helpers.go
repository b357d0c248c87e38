// Shared helpers for storekeep CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/internal/shop"
	"github.com/dukaforge/storekeep/pkg/types"
)

// openShop loads config, resolves directories, and opens the application
// context with the given start token. The caller must defer s.Close().
func openShop(startToken string) (*shop.Shop, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	dataDir, err := resolveDataDir(cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	s, err := shop.Open(
		types.Config{
			Backend: cfg.GetString(cfgKeyBackend),
			DataDir: dataDir,
		},
		shop.Options{
			Passcode:   cfg.GetString(cfgKeyPasscode),
			StartToken: startToken,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// requireAdmin attempts the passcode from --passcode or STOREKEEP_PASSCODE
// against the session gate. The auth failure is a user-visible message, not
// a stack trace.
func requireAdmin(s *shop.Shop) error {
	passcode := flags.passcode
	if passcode == "" {
		passcode = os.Getenv("STOREKEEP_PASSCODE")
	}

	if err := s.Login(passcode); err != nil {
		if errors.Is(err, types.ErrBadPasscode) {
			return fmt.Errorf("incorrect passcode: admin commands need --passcode or STOREKEEP_PASSCODE")
		}
		return err
	}
	return nil
}

// printResult writes v as indented JSON in --json mode, or calls plain for
// the human-readable form.
func printResult(cmd *cobra.Command, v any, plain func()) error {
	if !flags.jsonMode {
		plain()
		return nil
	}
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
