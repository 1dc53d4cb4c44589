package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hathor-chatbot/internal/config"
	"hathor-chatbot/internal/core"
	"hathor-chatbot/internal/db"
	"hathor-chatbot/internal/document"
	httpserver "hathor-chatbot/internal/http"
	"hathor-chatbot/internal/llm"
	"hathor-chatbot/internal/logger"
	"hathor-chatbot/internal/session"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// The database only backs purchases and subscriptions; the chat flow
	// works without it, so a missing DATABASE_URL degrades instead of
	// aborting startup.
	var repo *db.Repository
	var notifier *db.Notifier
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, purchase endpoints disabled")
	} else {
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = dbConn.PingContext(ctx)
		cancel()
		if err != nil {
			log.Warn("database unreachable, purchase endpoints disabled", zap.Error(err))
			_ = dbConn.Close()
		} else {
			if err := db.Migrate(context.Background(), dbConn); err != nil {
				log.Fatal("failed to run migrations", zap.Error(err))
			}
			repo = db.NewRepository(dbConn)
			notifier = db.NewNotifier(dbConn, cfg.DatabaseURL, cfg.NotifyChannel)
			log.Info("database connected")
		}
	}

	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, chat will answer with the fallback response")
	}
	llmClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	store := session.NewLRUStore(cfg.SessionCacheSize, cfg.SessionTTL)
	responder := core.NewResponder(llmClient, store, nil, log)

	srv := httpserver.NewServer(responder, store, document.New(), repo, notifier, log)

	log.Info("listening", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), srv); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
