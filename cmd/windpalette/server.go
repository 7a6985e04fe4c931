// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/ai"
	"github.com/thatcatcamp/windpalette/internal/auth"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/handlers"
	"github.com/thatcatcamp/windpalette/internal/kv"
	"github.com/thatcatcamp/windpalette/internal/middleware"
	"github.com/thatcatcamp/windpalette/internal/tls"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the WindPalette HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fatal("%v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := kv.NewGormStore(db.GetDB())
		janitor, err := kv.NewJanitor(store, config.GetDuration("cache.purge_interval"))
		if err != nil {
			fatal("starting cache janitor: %v", err)
		}
		janitor.Start()
		defer janitor.Stop()

		deps, closeDeps := buildDeps(store)
		defer closeDeps()

		r, err := newRouter(deps)
		if err != nil {
			fatal("%v", err)
		}

		if config.GetBool("server.tls_enabled") {
			err = serveTLS(ctx, r)
		} else {
			addr := fmt.Sprintf(":%d", config.GetInt("server.http_port"))
			log.Info().Str("addr", addr).Str("base_url", config.GetString("server.base_url")).Msg("Starting HTTP server (TLS disabled)")
			err = serve(ctx, &http.Server{Addr: addr, Handler: r}, false)
		}
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
			os.Exit(1)
		}
		log.Info().Msg("Server stopped")
	},
}

func newAIClient(key string) *ai.Client {
	return ai.NewClient(
		ai.WithEndpoint(config.GetString("ai.endpoint")),
		ai.WithAPIKey(key),
		ai.WithModel(config.GetString("ai.model")),
		ai.WithTimeout(config.GetDuration("ai.timeout")),
	)
}

// buildDeps wires the optional services from config. Missing credentials
// disable the feature with a warning.
func buildDeps(store kv.Store) (handlers.Deps, func()) {
	var deps handlers.Deps

	google, err := auth.NewGoogleProviderFromConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Google sign-in disabled")
	} else {
		deps.Google = google
	}

	if key := config.GetString("ai.api_key"); key != "" {
		deps.AI = ai.NewService(newAIClient(key), store, config.GetDuration("ai.cache_ttl"))
	} else {
		log.Warn().Msg("AI palettes disabled: ai.api_key is not set")
	}

	deps.AILimiter = middleware.NewRateLimiter(config.GetInt("ai.rate_limit"), config.GetDuration("ai.rate_interval"))
	deps.LoginLimiter = middleware.NewRateLimiter(10, time.Minute)

	return deps, func() {
		deps.AILimiter.Close()
		deps.LoginLimiter.Close()
	}
}

// newRouter builds the gin engine with the global middleware stack
func newRouter(deps handlers.Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())

	// Only honor X-Forwarded-For behind a known reverse proxy
	if !config.GetBool("server.trust_proxy") {
		if err := r.SetTrustedProxies(nil); err != nil {
			return nil, fmt.Errorf("failed to configure trusted proxies: %w", err)
		}
	}

	if config.GetBool("server.tls_enabled") {
		r.Use(middleware.HTTPSRedirect(config.GetString("server.base_domain")))
	}

	handlers.RegisterRoutes(r, deps)
	return r, nil
}

// serveTLS runs the ACME/redirect listener on the HTTP port and the main
// HTTPS listener
func serveTLS(ctx context.Context, r *gin.Engine) error {
	tlsCfg, err := tls.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load TLS config: %w", err)
	}

	tlsManager, err := tls.NewManager(tlsCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize TLS manager: %w", err)
	}
	if err := tlsManager.Manage(ctx); err != nil {
		return err
	}
	if statuses, err := tlsManager.GetCertificateStatus(); err == nil {
		for _, s := range statuses {
			log.Info().Str("domain", s.Domain).Int("days_left", s.DaysUntilExpiry).Msg("TLS: certificate on disk")
		}
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.GetInt("server.http_port")),
		Handler: tlsManager.HTTPChallengeHandler(r),
	}
	httpsServer := &http.Server{
		Addr:      fmt.Sprintf(":%d", config.GetInt("server.https_port")),
		Handler:   r,
		TLSConfig: tlsManager.GetTLSConfig(),
	}

	// One listener failing stops the other
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	go func() { errs <- serve(ctx, httpServer, false) }()
	go func() { errs <- serve(ctx, httpsServer, true) }()

	log.Info().Str("base_domain", tlsCfg.BaseDomain).Msg("Starting HTTPS server")

	err = <-errs
	cancel()
	if second := <-errs; err == nil {
		err = second
	}
	return err
}

// serve binds the listener first so port errors surface immediately, then
// serves until ctx is cancelled
func serve(ctx context.Context, srv *http.Server, useTLS bool) error {
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", srv.Addr, err)
	}
	log.Info().Str("addr", srv.Addr).Bool("tls", useTLS).Msg("Listening")

	errCh := make(chan error, 1)
	go func() {
		if useTLS {
			errCh <- srv.ServeTLS(listener, "", "")
		} else {
			errCh <- srv.Serve(listener)
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
