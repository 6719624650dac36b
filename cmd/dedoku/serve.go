package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "svw.info/dedoku/internal/adapters/http"
	"svw.info/dedoku/internal/config"
	"svw.info/dedoku/internal/deduce"
	"svw.info/dedoku/internal/infrastructure/storage"
	"svw.info/dedoku/internal/metrics"
	"svw.info/dedoku/internal/usecase"
	"svw.info/dedoku/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration per request.
func requestLogger(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func newServeCmd() *cobra.Command {
	var (
		addr    string
		persist string
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("persist-path") {
				cfg.PersistPath = persist
			}
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				lvl, err := logrus.ParseLevel(cfg.LogLevel)
				if err != nil {
					return err
				}
				logrus.SetLevel(lvl)
			}
			logger := logrus.StandardLogger()

			if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
				return err
			}

			// Wire providers → use cases → HTTP adapter
			uc := usecase.NewService(deduce.NewSolver(), deduce.NewHinter(), validator.New(), storage.NewFS(cfg.PersistPath))
			h := httpadapter.New(uc)

			metrics.Register(prometheus.DefaultRegisterer)

			mux := http.NewServeMux()
			h.Register(mux)
			mux.Handle("/metrics", promhttp.Handler())

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.WithFields(logrus.Fields{"addr": cfg.Addr, "persist": cfg.PersistPath}).Info("listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&cfgPath, "config", "", "optional YAML config file")
	return cmd
}
