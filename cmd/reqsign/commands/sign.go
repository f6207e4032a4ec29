package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqsign/internal/operation"
	"reqsign/internal/request"
)

func signCmd() *cobra.Command {
	var (
		withIK bool
		fields string
	)
	cmd := &cobra.Command{
		Use:   "sign <request-file>",
		Short: "Sign a request snapshot and print the base64 signature",
		Long: `Sign a request snapshot read from a YAML or JSON file.

The message is the idempotency key (unless --idempotency=false) followed by
each field in --fields. A field is "$N" for the Nth URL segment, a stored
value, or a top-level body field, checked in that order.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("idempotency") {
				withIK = appCtx.Config.Signing.IncludeIdempotencyKey
			}
			if !cmd.Flags().Changed("fields") {
				fields = appCtx.Config.Signing.Fields
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op := operation.Sign{IncludeIdempotencyKey: withIK, Fields: fields}
			sig, err := appCtx.Run(cmd.Context(), op, appCtx.Env(request.FileSource{}, args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withIK, "idempotency", true, "prefix the message with the idempotency key")
	cmd.Flags().StringVarP(&fields, "fields", "f", "", "comma-separated fields to sign")
	return cmd
}
