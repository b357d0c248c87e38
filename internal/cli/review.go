// Review commands: listing, single add, bulk import.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage customer reviews",
	}
	cmd.AddCommand(newReviewListCmd())
	cmd.AddCommand(newReviewAddCmd())
	cmd.AddCommand(newReviewImportCmd())
	return cmd
}

func newReviewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviews, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			list := s.Reviews.List()
			return printResult(cmd, list, func() {
				for _, r := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %s\n",
						r.Date.Format("2006-01-02"), r.Author, r.Body)
				}
			})
		},
	}
}

func newReviewAddCmd() *cobra.Command {
	var author string
	cmd := &cobra.Command{
		Use:   "add <body>",
		Short: "Add a review",
		Long: `Add records a review dated today. Without --author the review is
attributed to "Anonymous".

Example:
  storekeep review add "Holds an edge beautifully" --author "M. Carter"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop("")
			if err != nil {
				return err
			}
			defer s.Close()

			r := s.Reviews.Add(author, args[0])
			return printResult(cmd, r, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Added review: %s\n", r.ID)
			})
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "review author (default: Anonymous)")
	return cmd
}

func newReviewImportCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import reviews (admin)",
		Long: `Import reads newline-separated records, each "author | body". The pipe
and the body are optional: a line without one becomes a review whose body
equals its author text. No line is rejected. Records are read from --file
or from stdin.

Example:
  storekeep review import --passcode odgreen --file reviews.txt
  echo "M. Carter | Great knife" | storekeep review import --passcode odgreen`,
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

			var raw []byte
			if file != "" {
				raw, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			batch := s.Reviews.BulkIngest(string(raw))
			return printResult(cmd, batch, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d reviews\n", len(batch))
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "file to import (default: stdin)")
	return cmd
}
