package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqsign/internal/logging"
	"reqsign/internal/store"
)

func storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect or edit stored values",
	}

	var reveal bool
	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appCtx.Store.GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !reveal {
				v = logging.SafeValue(args[0], v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	get.Flags().BoolVar(&reveal, "reveal", false, "print sensitive values unredacted")

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value, e.g. a uid used as a signed field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Store.SetItem(cmd.Context(), args[0], args[1])
		},
	}

	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete a stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Store.DeleteItem(cmd.Context(), args[0])
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := appCtx.Store.(store.Lister)
			if !ok {
				return fmt.Errorf("the %s store cannot list keys", appCtx.Config.Store.Backend)
			}
			keys, err := l.Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	cmd.AddCommand(get, set, rm, ls)
	return cmd
}
