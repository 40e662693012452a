package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"linguabridge/backend/internal/config"
	"linguabridge/backend/internal/db"
	"linguabridge/backend/internal/handler"
	transport "linguabridge/backend/internal/http"
	"linguabridge/backend/internal/logger"
	"linguabridge/backend/internal/repository"
	"linguabridge/backend/internal/service"
	"linguabridge/backend/internal/snowflake"
	"linguabridge/backend/internal/speech"
	"linguabridge/backend/internal/translate"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open("linguabridge")
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	translator, err := translate.NewTranslator(translate.Config{
		Provider:  cfg.Translator,
		APIKey:    cfg.AIAPIKey,
		BaseURL:   cfg.AIBaseURL,
		Model:     cfg.AIModel,
		StubDelay: cfg.StubDelay,
	})
	if err != nil {
		log.Fatalf("configure translator: %v", err)
	}
	limiter := translate.NewRateLimiter(cfg.AIQPS)

	speechCfg := speech.Config{
		SpeakCommand:  cfg.SpeakCommand,
		ListenCommand: cfg.ListenCommand,
	}

	sessions := service.NewSessionManager()
	conversationRepo := repository.NewConversationRepository(dbConn)

	chatService := service.NewChatService(sessions, translator, limiter)
	conversationService := service.NewConversationService(sessions, conversationRepo)
	speechService := service.NewSpeechService(sessions, speech.NewSynthesizer(speechCfg), speech.NewRecognizer(speechCfg), cfg.ListenTimeout)

	chatHandler := handler.NewChatHandler(chatService)
	conversationHandler := handler.NewConversationHandler(conversationService)
	languageHandler := handler.NewLanguageHandler()
	speechHandler := handler.NewSpeechHandler(speechService)

	router := transport.NewRouter(chatHandler, conversationHandler, languageHandler, speechHandler, sessions, cfg.StaticDir)

	janitor := service.NewJanitor(sessions, conversationRepo, cfg.SessionTTL, cfg.SessionTTL/4)
	janitor.Start()

	logger.Info("server starting", "module", "main", "action", "start", "resource", "server", "result", "ok", "addr", cfg.Addr, "translator", translator.Name())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return router.Start(cfg.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		janitor.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}
