package main

import (
	"context"
	"flag"
	"fmt"
	"mflix/mongodb"
	"mflix/pkg/config"
	"mflix/pkg/logger"
	"os"
	"os/signal"
	"syscall"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

func main() {
	var (
		csvPath   string
		zipURL    string
		limit     int
		batchSize int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.IntVar(&batchSize, "batch", 500, "Movies per bulk write")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, csvPath, zipURL, limit, batchSize, log.Infow); err != nil {
		log.Errorw("import failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, csvPath, zipURL string, limit, batchSize int, logf func(string, ...interface{})) error {
	db, err := mongodb.NewConnection(ctx, mongodb.Options{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if _, err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	if csvPath == "" {
		dir, err := os.MkdirTemp("", "movielens-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		logf("downloading dataset", "url", zipURL)
		if csvPath, err = fetchMoviesCSV(ctx, zipURL, dir); err != nil {
			return err
		}
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	imp := &importer{
		repo:      mongodb.NewMovieRepository(db),
		batchSize: batchSize,
		limit:     limit,
	}
	stats, err := imp.Import(ctx, f)
	if err != nil {
		return err
	}

	logf("import completed",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"inserted", stats.Upserted,
		"updated", stats.Modified,
	)
	return nil
}
