package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eykd/mdvet-go/internal/logger"
	"github.com/eykd/mdvet-go/internal/server"
)

// shutdownGrace bounds how long serve waits for in-flight requests on exit.
const shutdownGrace = 10 * time.Second

// NewServeCmd creates the serve command. Settings resolve flag first, then
// MDVET_* environment variable, then default.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the validation HTTP service",
		Long:         "Serve the validator over HTTP with a browser upload page, a JSON API, and Prometheus metrics. Stops gracefully on interrupt.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("MDVET")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			v.SetDefault("log-format", string(logger.FormatConsole))
			if err := v.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
				return err
			}
			if err := v.BindPFlag("log-level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}

			log := logger.New(v.GetString("log-level"), logger.Format(v.GetString("log-format")))
			defer log.Sync()

			cfg := server.DefaultConfig()
			cfg.Addr = v.GetString("addr")
			srv, err := server.New(cfg, log)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(cmd.Context())
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				if err := srv.Stop(shutdownCtx); err != nil {
					return err
				}
				return <-errCh
			}
		},
	}

	cmd.Flags().String("addr", server.DefaultConfig().Addr, "Listen address")
	cmd.Flags().String("log-level", logger.LevelInfo, "Log level (debug, info, warn, error)")

	return cmd
}
