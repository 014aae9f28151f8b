package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tfxlab/internal/analyzer"
	"tfxlab/internal/http/handlers"
	httpapi "tfxlab/internal/http/httpapi"
	"tfxlab/internal/identity"
	"tfxlab/internal/infra"
	"tfxlab/internal/notify"
	"tfxlab/internal/providers/genai"
	"tfxlab/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	sessions, err := store.Open(cfg.SessionDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	defer sessions.Close()

	notifier := notify.NewCenter(cfg.NotificationTTL)
	identities := identity.NewService(sessions, notifier, cfg.GoogleSignInDelay)
	gemini := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	pipeline := analyzer.New(gemini, notifier, logger)

	app := &handlers.App{
		Logger:    logger,
		Identity:  identities,
		Analyzer:  pipeline,
		Notifier:  notifier,
		Clipboard: infra.NewLogClipboard(logger, notifier),
		Contacts: handlers.Contacts{
			Subscription: cfg.ContactSubs,
			General:      cfg.ContactGeneral,
		},
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:             logger,
		Sessions:           sessions,
		AllowedOrigins:     cfg.AllowedOrigins,
		AnalyzerRatePerMin: cfg.AnalyzerRatePerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
