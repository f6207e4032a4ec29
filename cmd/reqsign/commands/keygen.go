package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqsign/internal/operation"
	"reqsign/internal/store"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key pair, replacing any stored pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if pp := appCtx.Config.Store.Passphrase; pp != "" {
				if err := store.CheckPassphrase(pp); err != nil {
					return err
				}
			}
			pub, err := appCtx.Run(ctx, operation.GenerateKeys{}, appCtx.Env(nil, ""))
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
}
