// Cart commands over persisted product snapshots.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/pkg/types"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}
	cmd.AddCommand(newCartListCmd())
	cmd.AddCommand(newCartAddCmd())
	cmd.AddCommand(newCartRemoveCmd())
	cmd.AddCommand(newCartClearCmd())
	return cmd
}

func newCartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			items := s.Cart.Items()
			return printResult(cmd, items, func() {
				out := cmd.OutOrStdout()
				for _, item := range items {
					fmt.Fprintf(out, "%dx %-24s %8s  (%s)\n",
						item.Qty, item.Product.Name, item.Product.Price.StringFixed(2), item.Product.ID)
				}
				fmt.Fprintf(out, "Total: %s\n", s.Cart.Total().StringFixed(2))
			})
		},
	}
}

func newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product snapshot to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.Catalog.Get(args[0])
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err != nil {
				return err
			}

			item := s.Cart.Add(p)
			return printResult(cmd, item, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Added to cart: %s\n", p.Name)
			})
		},
	}
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove the first matching cart entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Cart.Remove(args[0]); err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("no cart entry for product %q", args[0])
				}
				return err
			}

			return printResult(cmd, map[string]string{"removed": args[0]}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed from cart: %s\n", args[0])
			})
		},
	}
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			s.Cart.Clear()
			return printResult(cmd, map[string]string{"cleared": "cart"}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			})
		},
	}
}
