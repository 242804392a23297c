package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"winsbygroup.com/lunchly/internal/server"
	"winsbygroup.com/lunchly/internal/version"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			root.cfg.DemoMode = demo
			return serve(cmd.Context(), root)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "load sample data on new database (for demos)")
	return cmd
}

func serve(ctx context.Context, root *rootOptions) error {
	fmt.Println(version.Banner())

	srv, err := server.Build(root.cfg)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	defer srv.DB.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", root.cfg.Addr).Msg("listening")
		if err := srv.Echo.StartServer(srv.HTTP); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Echo.Shutdown(shutdownCtx)
}
