package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/router"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply PostgreSQL migrations before serving")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serveMigrate && cfg.Database.Driver == config.DriverPostgres {
		if err := database.Migrate(ctx, database.PostgresDSN(cfg.Database), log); err != nil {
			return err
		}
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.close()

	checks := map[string]handler.HealthCheck{"database": st.ping}
	opts := router.Options{
		Logger:             log,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}

	if cfg.Redis.Address != "" {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		if cfg.RateLimit.Enabled {
			opts.Limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := websocket.NewHub(log)
	go hub.Run(hubCtx)

	trivia := service.NewTriviaService(st.categories, st.questions,
		service.WithPublisher(hub),
		service.WithLogger(log),
	)

	e := router.New(opts,
		handler.NewCategoryHandler(trivia),
		handler.NewQuestionHandler(trivia),
		handler.NewQuizHandler(trivia),
		handler.NewHealthHandler(cfg.Env, checks),
		handler.NewWebSocketHandler(hub),
	)

	e.Server = &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", e.Server.Addr).Str("driver", cfg.Database.Driver).Msg("starting server")
		if err := e.StartServer(e.Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
