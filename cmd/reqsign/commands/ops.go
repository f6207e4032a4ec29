package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"reqsign/internal/operation"
)

func opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tDESCRIPTION")
			for _, info := range operation.Catalog() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.DisplayName, info.Description)
			}
			return tw.Flush()
		},
	}
}
