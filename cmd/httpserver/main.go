package main

import (
	"context"
	"errors"
	"fmt"
	"mflix/comment"
	"mflix/httpserver"
	"mflix/mongodb"
	"mflix/movie"
	"mflix/pkg/config"
	"mflix/pkg/logger"
	"mflix/pkg/sentry"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.NewConnection(ctx, mongodb.Options{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		log.Fatalw("cannot open mongodb connection", "error", err)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Errorw("cannot disconnect mongodb", "error", err)
		}
	}()

	movieRepo := mongodb.NewMovieRepository(db)

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.Logger = log
	server.MovieService = movie.NewUsecase(movieRepo)
	server.CommentService = comment.NewUsecase(mongodb.NewCommentRepository(db), movieRepo)

	go func() {
		log.Infow("server started", "addr", server.Addr, "database", cfg.Mongo.Database)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("cannot shutdown server", "error", err)
	}
	log.Info("server stopped")
}
