// Product commands: catalog CRUD.
package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/pkg/types"
)

// productFlags carries the editable product fields for add and update.
type productFlags struct {
	name        string
	price       string
	description string
	sku         string
	images      []string
	status      string
	published   bool
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.price, "price", "", "product price, e.g. 89.50")
	cmd.Flags().StringVar(&f.description, "description", "", "product description")
	cmd.Flags().StringVar(&f.sku, "sku", "", "stock-keeping unit")
	cmd.Flags().StringSliceVar(&f.images, "image", nil, "image reference (repeatable)")
	cmd.Flags().StringVar(&f.status, "status", "", "shipping status: not-shipped, processing, shipped, delivered, pre-order")
	cmd.Flags().BoolVar(&f.published, "published", false, "show the product on the public listing")
}

// apply merges the flags that were actually set into p. The caller passes the
// complete prior record; this is the client-side merge the update contract
// requires.
func (f *productFlags) apply(cmd *cobra.Command, p *types.Product) error {
	if cmd.Flags().Changed("name") {
		p.Name = f.name
	}
	if cmd.Flags().Changed("price") {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", f.price, err)
		}
		p.Price = price
	}
	if cmd.Flags().Changed("description") {
		p.Description = f.description
	}
	if cmd.Flags().Changed("sku") {
		p.SKU = f.sku
	}
	if cmd.Flags().Changed("image") {
		p.Images = f.images
	}
	if cmd.Flags().Changed("status") {
		if err := p.SetShippingStatus(f.status); err != nil {
			return fmt.Errorf("invalid status %q: %w", f.status, err)
		}
	}
	if cmd.Flags().Changed("published") {
		p.Published = f.published
	}
	return nil
}

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}
	cmd.AddCommand(newProductListCmd())
	cmd.AddCommand(newProductShowCmd())
	cmd.AddCommand(newProductAddCmd())
	cmd.AddCommand(newProductUpdateCmd())
	cmd.AddCommand(newProductDeleteCmd())
	return cmd
}

func newProductListCmd() *cobra.Command {
	var publishedOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			list := s.Catalog.List()
			if publishedOnly {
				list = s.Catalog.Published()
			}
			return printResult(cmd, list, func() {
				for _, p := range list {
					printProductLine(cmd, p)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&publishedOnly, "published", false, "only products visible on the public listing")
	return cmd
}

func newProductShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("product/" + args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.Catalog.Get(args[0])
			if errors.Is(err, types.ErrNotFound) {
				// Not-found fallback with a path back home instead of a failure.
				fmt.Fprintf(cmd.OutOrStdout(), "Product %q not found. Try: storekeep product list\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			return printResult(cmd, p, func() { printProductDetail(cmd, p) })
		},
	}
}

func newProductAddCmd() *cobra.Command {
	var pf productFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product (admin)",
		Long: `Add creates a product with generated ID and default fields, then applies
the given flags as an immediate edit.

Example:
  storekeep product add --passcode odgreen --name "Field Blade" --price 89.50
  storekeep product add --passcode odgreen --name "Skinner" --sku SK-12 --published`,
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

			p := s.CreateProduct()
			if err := pf.apply(cmd, &p); err != nil {
				return err
			}
			if err := s.Catalog.Update(p); err != nil {
				return fmt.Errorf("apply product fields: %w", err)
			}

			return printResult(cmd, p, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Created product: %s\n", p.ID)
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func newProductUpdateCmd() *cobra.Command {
	var pf productFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace product fields (admin)",
		Long: `Update loads the product, merges the given flags into the full record,
and replaces it wholesale.

Example:
  storekeep product update p-123 --passcode odgreen --price 74.00 --status shipped`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			if err := requireAdmin(s); err != nil {
				return err
			}

			p, err := s.Catalog.Get(args[0])
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err != nil {
				return err
			}

			if err := pf.apply(cmd, &p); err != nil {
				return err
			}
			if err := s.Catalog.Update(p); err != nil {
				return fmt.Errorf("update product: %w", err)
			}

			return printResult(cmd, p, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated product: %s\n", p.ID)
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func newProductDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product (admin)",
		Long: `Delete removes a product from the catalog. The deletion is irreversible
and requires the --yes confirmation flag. Cart entries keep their snapshot
of the product.

Example:
  storekeep product delete p-123 --passcode odgreen --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			if err := requireAdmin(s); err != nil {
				return err
			}

			deleted := false
			err = s.DeleteProduct(args[0], func(p types.Product) bool {
				if !yes {
					fmt.Fprintf(cmd.OutOrStdout(), "Refusing to delete %q without --yes\n", p.Name)
					return false
				}
				deleted = true
				return true
			})
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			if !deleted {
				return nil
			}

			return printResult(cmd, map[string]string{"deleted": args[0]}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted product: %s\n", args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the irreversible deletion")
	return cmd
}

func printProductLine(cmd *cobra.Command, p types.Product) {
	visibility := "draft"
	if p.Published {
		visibility = "published"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %8s  %-11s %s\n",
		p.ID, p.Name, p.Price.StringFixed(2), p.ShippingStatus, visibility)
}

func printProductDetail(cmd *cobra.Command, p types.Product) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s\n", p.ID)
	fmt.Fprintf(out, "Name:        %s\n", p.Name)
	fmt.Fprintf(out, "Price:       %s\n", p.Price.StringFixed(2))
	fmt.Fprintf(out, "SKU:         %s\n", p.SKU)
	fmt.Fprintf(out, "Status:      %s\n", p.ShippingStatus)
	fmt.Fprintf(out, "Published:   %t\n", p.Published)
	if p.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", p.Description)
	}
	for _, img := range p.Images {
		fmt.Fprintf(out, "Image:       %s\n", img)
	}
}
