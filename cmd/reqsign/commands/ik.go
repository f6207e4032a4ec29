package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqsign/internal/operation"
)

func ikCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ik",
		Short: "Manage the idempotency key",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Generate and store a new idempotency key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := appCtx.Run(cmd.Context(), operation.GenerateIdempotencyKey{}, appCtx.Env(nil, ""))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored idempotency key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := appCtx.IK.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	})
	return cmd
}
