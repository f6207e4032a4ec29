package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"reqsign/internal/app"
	"reqsign/internal/config"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/logging"
)

var (
	home       string
	configFile string
	backend    string
	passphrase string
	verbose    bool
	quiet      bool

	appCtx    *app.Wire
	logCloser io.Closer
)

// Execute runs the root command and prints a friendly message on failure.
func Execute() error {
	root := newRootCmd()
	err := root.ExecuteContext(context.Background())
	cleanup()
	if err != nil {
		msg, action := rserrors.Actionable(err)
		fmt.Fprintln(os.Stderr, "error:", msg)
		if action != "" {
			fmt.Fprintln(os.Stderr, "hint: ", action)
		}
		if verbose && msg != err.Error() {
			fmt.Fprintln(os.Stderr, "cause:", err)
		}
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reqsign",
		Short:         "Sign outgoing API requests with Ed25519",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadWithOverrides(ctx, config.Options{Home: home, File: configFile}, &config.Config{
				Store: config.StoreConfig{Backend: backend, Passphrase: passphrase},
			})
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:      cfg.Log.Level,
				Verbose:    verbose,
				Quiet:      quiet,
				File:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAgeDays: cfg.Log.MaxAgeDays,
				Compress:   cfg.Log.Compress,
			})
			if err != nil {
				return err
			}
			logCloser = closer
			ctx = logger.WithContext(ctx)
			cmd.SetContext(ctx)

			w, err := app.NewWire(ctx, cfg, app.Options{})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "state dir (default ~/.reqsign or $REQSIGN_HOME)")
	pf.StringVar(&configFile, "config", "", "config file (default <home>/config.yaml)")
	pf.StringVar(&backend, "store", "", "store backend: file, memory or redis")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the private key at rest")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "warnings and errors only")

	root.AddCommand(
		keygenCmd(),
		pubkeyCmd(),
		ikCmd(),
		signCmd(),
		verifyCmd(),
		captureCmd(),
		sendCmd(),
		storeCmd(),
		opsCmd(),
	)
	return root
}

// cleanup releases what PersistentPreRunE opened. It runs after every
// command, failed ones included.
func cleanup() {
	if appCtx != nil {
		_ = appCtx.Close()
		appCtx = nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}
