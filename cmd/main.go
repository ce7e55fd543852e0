package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/api"
	"github.com/RoyceAzure/lab/bookshop/internal/api/handler"
	"github.com/RoyceAzure/lab/bookshop/internal/api/router"
	"github.com/RoyceAzure/lab/bookshop/internal/appcontext"
	"github.com/RoyceAzure/lab/bookshop/internal/config"
	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title bookshop
// @version 1.0
// @description 網路書店 REST API, 以 session cookie 驗證
// @BasePath  /api/v1

func setUpLogger(env constants.ENV) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env.IsVerbose() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("app", constants.AppName).Logger()
}

func main() {
	cf := config.GetConfig()
	setUpLogger(cf.Env)

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up application")
		return
	}

	// 初始化 handler
	server := api.NewServer(
		handler.NewVersionHandler(cf.AppVersion),
		handler.NewBookHandler(app.BookService),
		handler.NewCartHandler(app.CartService),
		handler.NewOrderHandler(app.OrderService),
		handler.NewUserHandler(app.UserService, app.AuthService, app.Sessions),
	)

	// 設置路由
	r := router.SetupRouter(server, app.Sessions, app.AuthLimiter, &log.Logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:              cf.HttpServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Application shutdown error")
		}

		shutDownCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Info().Str("addr", srv.Addr).Msg("Server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	<-shutDownCompleted
	log.Info().Msg("closed completed")
}
