// View command: resolves a navigation token against the session state.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/internal/nav"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [token]",
		Short: "Resolve a navigation token to a view",
		Long: `View maps a navigation token onto the view it reaches. An empty or
omitted token is home; "product/<id>" is that product's detail view;
"admin" is the admin area when the passcode authorizes the session and the
login prompt otherwise; anything else falls back to home.

Example:
  storekeep view product/blade-001
  storekeep view admin --passcode odgreen`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 1 {
				token = args[0]
			}

			s, err := openShop(token)
			if err != nil {
				return err
			}
			defer s.Close()

			// A provided passcode authorizes the session before the token
			// resolves, letting "admin" reach the admin area.
			if flags.passcode != "" {
				if err := s.Login(flags.passcode); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Incorrect passcode; continuing unauthorized")
				}
			}

			v := s.Router.Navigate(token)
			return printResult(cmd, map[string]string{
				"view":      v.Kind.String(),
				"productId": v.ProductID,
			}, func() {
				if v.Kind == nav.KindProductDetail {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Kind, v.ProductID)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Kind)
			})
		},
	}
}
