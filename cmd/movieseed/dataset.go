package main

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

const moviesCSV = "movies.csv"

var httpClient = &http.Client{Timeout: 2 * time.Minute}

// fetchMoviesCSV downloads the MovieLens archive at url into dir and
// extracts its movies.csv, returning the extracted path.
func fetchMoviesCSV(ctx context.Context, url, dir string) (string, error) {
	if url == "" {
		return "", errors.New("dataset url is empty")
	}

	archive := filepath.Join(dir, "dataset.zip")
	if err := download(ctx, url, archive); err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	return extract(archive, moviesCSV, dir)
}

func download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// extract copies the first archive entry whose base name is name into dir.
func extract(archive, name, dir string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, f := range r.File {
		if path.Base(f.Name) != name || f.FileInfo().IsDir() {
			continue
		}

		src, err := f.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		dest := filepath.Join(dir, name)
		out, err := os.Create(dest)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		return dest, out.Close()
	}

	return "", fmt.Errorf("%s not found in %s", name, filepath.Base(archive))
}
