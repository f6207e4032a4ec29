package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reqsign/internal/services/signing"
)

func verifyCmd() *cobra.Command {
	var (
		message     string
		messageFile string
		pubkey      string
	)
	cmd := &cobra.Command{
		Use:   "verify <signature>",
		Short: "Verify a base64 signature over a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			msg := []byte(message)
			if messageFile != "" {
				b, err := os.ReadFile(messageFile)
				if err != nil {
					return err
				}
				msg = b
			}

			pub := pubkey
			if pub == "" {
				var err error
				if pub, err = appCtx.Keys.PublicKey(ctx); err != nil {
					return err
				}
			}

			ok, err := signing.Verify(msg, args[0], pub)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature does not verify")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().StringVar(&messageFile, "message-file", "", "read the message from a file")
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "base64 public key (default: the stored one)")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
	return cmd
}
