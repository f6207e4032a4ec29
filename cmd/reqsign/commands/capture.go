package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"reqsign/internal/operation"
)

func captureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture [response-file]",
		Short: "Store learned fields from a JSON response (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				body []byte
				err  error
			)
			if len(args) == 1 {
				body, err = os.ReadFile(args[0])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			names, err := appCtx.Run(cmd.Context(), operation.CaptureResponseFields{Body: body}, appCtx.Env(nil, ""))
			if err != nil {
				return err
			}
			if names == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing captured")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "captured:", names)
			return nil
		},
	}
}
