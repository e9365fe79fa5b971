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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"paginator/internal/feed"
	"paginator/internal/ports"
)

const defaultServePort = 8700

func newServeCmd() *cobra.Command {
	v := viper.New()
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve a feed over HTTP for 'demo --source http'",
		Long: `Serves the configured memory or file feed as JSON pages:

  GET /?page=N&page_size=M

If --port is taken the next free port is used. Ctrl-C stops the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
	f := c.Flags()
	f.String("host", "127.0.0.1", "interface to listen on")
	f.Int("port", defaultServePort, "port to listen on (0 picks any free port)")
	f.String("source", "", "feed source: memory | file")
	f.String("file", "", "YAML feed file for --source file")
	f.Int("page-size", 0, "page size when the client sends none")
	f.Int("total-items", 0, "number of generated items for --source memory")
	f.Duration("latency", 0, "simulated page latency for --source memory")
	for key, flag := range map[string]string{
		"source":      "source",
		"file":        "file",
		"page_size":   "page-size",
		"total_items": "total-items",
		"latency":     "latency",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return c
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	c, log, err := loadSettings(cmd, v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if c.Source == "http" {
		return fmt.Errorf("serve needs a memory or file source")
	}
	provider, err := newProvider(c)
	if err != nil {
		return err
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	l, err := ports.ListenFrom(host, port, 10)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Handler:           feed.NewHandler(provider, c.PageSize, log.Named("feed")),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	url := fmt.Sprintf("http://%s", l.Addr())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s feed at %s\n", c.Source, url)
	fmt.Fprintf(cmd.OutOrStdout(), "Try: paginator demo --source http --url %s\n", url)
	log.Info("feed server started", zap.String("url", url), zap.String("source", c.Source))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("feed server stopped")
	return nil
}
