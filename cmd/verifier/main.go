package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"reqsign/internal/api"
	"reqsign/internal/config"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", rserrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		home       string
		configFile string
		listen     string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:           "verifier",
		Short:         "Serve Ed25519 signature verification over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.LoadWithOverrides(ctx, config.Options{Home: home, File: configFile}, &config.Config{
				Verifier: config.VerifierConfig{Listen: listen},
			})
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:      cfg.Log.Level,
				Verbose:    verbose,
				File:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAgeDays: cfg.Log.MaxAgeDays,
				Compress:   cfg.Log.Compress,
			})
			if err != nil {
				return err
			}
			defer closer.Close()

			srv := api.NewServer(api.Config{
				Listen:          cfg.Verifier.Listen,
				ReadTimeout:     cfg.Verifier.ReadTimeout,
				WriteTimeout:    cfg.Verifier.WriteTimeout,
				ShutdownTimeout: cfg.Verifier.ShutdownTimeout,
				MaxBodyBytes:    cfg.Verifier.MaxBodyBytes,
			}, logger)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(srv.Start)
			g.Go(func() error {
				<-gctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), cfg.Verifier.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(sctx)
			})
			return g.Wait()
		},
	}
	f := cmd.Flags()
	f.StringVar(&home, "home", "", "state dir (default ~/.reqsign or $REQSIGN_HOME)")
	f.StringVar(&configFile, "config", "", "config file (default <home>/config.yaml)")
	f.StringVar(&listen, "listen", "", "listen address (default from config)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
