package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/handlers"
	"github.com/mdayat/prayer-surah-service/internal/metrics"
	"github.com/mdayat/prayer-surah-service/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer db.Close()

	configs := configs.NewConfigs(env, db)

	authService := services.NewAuthService(configs)
	authenticator := handlers.NewProdAuthenticator(authService)
	customMiddleware := handlers.NewMiddlewareHandler(configs, authenticator)
	router := handlers.NewRestHandler(configs, customMiddleware, metrics.NewHTTPMetrics())

	server := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	logger.Info().Str("addr", server.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Send()
	}
}
