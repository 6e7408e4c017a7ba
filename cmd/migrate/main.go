package main

import (
	"context"
	"fmt"
	"mflix/mongodb"
	"mflix/pkg/config"
	"mflix/pkg/logger"
	"os"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	db, err := mongodb.NewConnection(ctx, mongodb.Options{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		log.Fatalw("cannot connect to mongodb", "error", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	names, err := mongodb.EnsureIndexes(ctx, db)
	if err != nil {
		_ = db.Client().Disconnect(ctx)
		log.Fatalw("cannot create indexes", "error", err)
	}

	log.Infow("indexes ready", "database", cfg.Mongo.Database, "indexes", names)
}
