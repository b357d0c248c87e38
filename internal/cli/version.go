package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storekeep/pkg/storekeep"
)

const modulePath = "github.com/dukaforge/storekeep"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storekeep version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "storekeep v%s\nmodule: %s\n", storekeep.Version, modulePath)
			return nil
		},
	}
}
