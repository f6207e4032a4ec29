package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the stored public key and its fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if check {
				if _, err := appCtx.Keys.Load(ctx); err != nil {
					return err
				}
			}
			pub, err := appCtx.Keys.PublicKey(ctx)
			if err != nil {
				return err
			}
			fp, err := appCtx.Keys.Fingerprint(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nFingerprint: %s\n", pub, fp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "also verify the private key matches")
	return cmd
}
