package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/hub"
	"github.com/pingr-im/pingr-go/internal/infra"
	"github.com/pingr-im/pingr-go/internal/pkg/token"
	"github.com/pingr-im/pingr-go/internal/pkg/validator"
	db "github.com/pingr-im/pingr-go/internal/repository/postgres"
	"github.com/pingr-im/pingr-go/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	vldtr := validator.New()
	tokenManager := token.New(cfg.Auth.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eventHub := hub.New(logger)

	handler := rest.New(dbRepo, tokenManager, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handler.Register)
		r.Post("/auth/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return infra.AuthInterceptorHTTP(next, tokenManager)
			})
			r.Get("/chat", handler.GetChats)
			r.Post("/chat", handler.CreateChat)
			r.Post("/chat/group", handler.CreateGroupChat)
			r.Get("/message/{chat_id}", handler.GetChatMessages)
			r.Post("/message", handler.CreateMessage)
		})
	})

	router.Get("/socket", eventHub.ServeWS(tokenManager))

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		eventHub.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	logger.Info(fmt.Sprintf("devserver listening on :%s", cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
