// Brand commands: show and partial update of the storefront configuration.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/internal/brand"
)

func newBrandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Manage the storefront brand configuration",
	}
	cmd.AddCommand(newBrandShowCmd())
	cmd.AddCommand(newBrandSetCmd())
	return cmd
}

func newBrandShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the brand configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			b := s.Brand.Get()
			return printResult(cmd, b, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:       %s\n", b.Name)
				for slot, color := range b.Colors {
					fmt.Fprintf(out, "Color:      %s = %s\n", slot, color)
				}
				fmt.Fprintf(out, "Logo lines: %s\n", strings.Join(b.LogoLines, ", "))
			})
		},
	}
}

func newBrandSetCmd() *cobra.Command {
	var (
		name      string
		colors    []string
		logoLines string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Merge changes into the brand configuration (admin)",
		Long: `Set merges only the given flags into the brand record; everything else
keeps its prior value. Logo lines are a comma-separated list of color slot
names; unknown names are stored and skipped at render time.

Example:
  storekeep brand set --passcode odgreen --name "Ridgeline Blades"
  storekeep brand set --passcode odgreen --color odGreen=#556b2f --logo-lines "black,odGreen,white"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			if err := requireAdmin(s); err != nil {
				return err
			}

			var patch brand.Patch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if len(colors) > 0 {
				patch.Colors = make(map[string]string, len(colors))
				for _, kv := range colors {
					slot, color, ok := strings.Cut(kv, "=")
					if !ok {
						return fmt.Errorf("invalid --color %q, want slot=value", kv)
					}
					patch.Colors[strings.TrimSpace(slot)] = strings.TrimSpace(color)
				}
			}
			if cmd.Flags().Changed("logo-lines") {
				patch.LogoLines = brand.ParseLogoLines(logoLines)
			}

			b := s.Brand.Set(patch)
			return printResult(cmd, b, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "Brand configuration updated")
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "brand name")
	cmd.Flags().StringSliceVar(&colors, "color", nil, "color slot assignment slot=value (repeatable)")
	cmd.Flags().StringVar(&logoLines, "logo-lines", "", "comma-separated ordered color slot names")
	return cmd
}
