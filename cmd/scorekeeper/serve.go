package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/scorekeeper/pkg/api"
	"github.com/cbodonnell/scorekeeper/pkg/config"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/cbodonnell/scorekeeper/pkg/version"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var allowOrigin string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("Starting api server version %s", version.Get())
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := c.tracker.Init(ctx); err != nil {
				return err
			}

			opts := api.NewAPIServerOptions{
				Port:        c.cfg.Port,
				AllowOrigin: allowOrigin,
				Tracker:     c.tracker,
			}
			tlsCertFile := os.Getenv("SCOREKEEPER_API_TLS_CERT_FILE")
			tlsKeyFile := os.Getenv("SCOREKEEPER_API_TLS_KEY_FILE")
			if tlsCertFile != "" && tlsKeyFile != "" {
				opts.TLS = &api.TLSConfig{
					CertFile: tlsCertFile,
					KeyFile:  tlsKeyFile,
				}
			}
			server := api.NewAPIServer(opts)
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil {
				log.Error("Failed to stop server: %v", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().Int("port", 9090, "port to listen on")
	cmd.Flags().StringVar(&allowOrigin, "allow-origin", "*", "comma-separated list of allowed origins")
	c.v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	return cmd
}
