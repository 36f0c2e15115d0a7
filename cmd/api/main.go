package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tatvaai/careerbot/backend/internal/analysis/match"
	"github.com/tatvaai/careerbot/backend/internal/config"
	"github.com/tatvaai/careerbot/backend/internal/handler"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	"github.com/tatvaai/careerbot/backend/internal/service/chat"
	"github.com/tatvaai/careerbot/backend/internal/service/document"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The FAQ dictionary is the one dependency the bot cannot run without.
	entries, err := faq.Load(cfg.FAQ.CSVPath)
	if err != nil {
		log.Fatalf("failed to load FAQ data: %v", err)
	}
	store := faq.NewMemoryStore(entries)
	log.Printf("loaded %d FAQ entries across %d domains from %s", len(entries), len(store.Domains()), cfg.FAQ.CSVPath)

	chatSvc := chat.NewService()
	matcher := match.New(store, cfg.Match.Threshold, cfg.Match.TypingDelay)
	botSvc := bot.NewService(matcher, chatSvc)
	docSvc := document.NewService(chatSvc, cfg.Upload.MaxBytes)

	router := handler.NewRouter(store, chatSvc, botSvc, docSvc, handler.Options{
		ExportPath:     cfg.Export.Path,
		MaxUploadBytes: cfg.Upload.MaxBytes,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("TatvaAI career bot backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
