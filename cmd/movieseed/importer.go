package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mflix/movie"
	"regexp"
	"strconv"
	"strings"
)

// MovieLens marks movies without genres this way.
const noGenres = "(no genres listed)"

var titleYear = regexp.MustCompile(`^(.*?)\s*\((\d{4})\)\s*$`)

type upserter interface {
	UpsertMany(ctx context.Context, key string, movies []movie.Movie) (movie.UpsertResult, error)
}

type importer struct {
	repo      upserter
	batchSize int
	limit     int
}

type importStats struct {
	Rows     int
	Skipped  int
	Upserted int64
	Modified int64
}

type columns struct {
	id, title, genres int
}

// Import reads a MovieLens movies.csv and upserts its rows by
// movie.MovieLensIDField in batches.
func (imp *importer) Import(ctx context.Context, r io.Reader) (importStats, error) {
	var stats importStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("read header: %w", err)
	}
	cols, err := parseHeader(header)
	if err != nil {
		return stats, err
	}

	batchSize := imp.batchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	batch := make([]movie.Movie, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		res, err := imp.repo.UpsertMany(ctx, movie.MovieLensIDField, batch)
		if err != nil {
			return err
		}
		stats.Upserted += res.Upserted
		stats.Modified += res.Modified
		batch = batch[:0]
		return nil
	}

	for imp.limit <= 0 || stats.Rows < imp.limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read line %d: %w", stats.Rows+stats.Skipped+2, err)
		}

		m, ok := parseRecord(record, cols)
		if !ok {
			stats.Skipped++
			continue
		}
		batch = append(batch, m)
		stats.Rows++

		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}

	return stats, flush()
}

func parseHeader(header []string) (columns, error) {
	cols := columns{id: -1, title: -1, genres: -1}
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "movieId":
			cols.id = i
		case "title":
			cols.title = i
		case "genres":
			cols.genres = i
		}
	}
	if cols.id == -1 || cols.title == -1 || cols.genres == -1 {
		return cols, errors.New("missing required columns in csv header")
	}
	return cols, nil
}

// parseRecord turns a csv row into a movie document. The release year is
// taken off the end of the title when present.
func parseRecord(record []string, cols columns) (movie.Movie, bool) {
	if cols.id >= len(record) || cols.title >= len(record) || cols.genres >= len(record) {
		return nil, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[cols.id]))
	if err != nil {
		return nil, false
	}

	m := movie.Movie{
		movie.MovieLensIDField: id,
		"title":                strings.TrimSpace(record[cols.title]),
		"genres":               parseGenres(record[cols.genres]),
	}
	if match := titleYear.FindStringSubmatch(m["title"].(string)); match != nil {
		year, _ := strconv.Atoi(match[2])
		m["title"] = match[1]
		m["year"] = year
	}
	return m, true
}

func parseGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	genres := []string{}
	if raw == "" || raw == noGenres {
		return genres
	}
	for _, g := range strings.Split(raw, "|") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
