package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalog documents on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalog document from the given path.
func (l *fileLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	catalog, err := decodeCatalog(ctx, file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalog file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("reps", len(catalog.Reps)).
		Int("products", len(catalog.Products)).
		Msg("catalog file loaded")

	return catalog, nil
}

// decodeCatalog parses a catalog document, decompressing .gz sources first.
func decodeCatalog(ctx context.Context, r io.Reader, source string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.HasSuffix(source, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var catalog Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document %s: %w", source, err)
	}

	if len(catalog.Reps) == 0 && len(catalog.Products) == 0 {
		return nil, fmt.Errorf("catalog document %s contains no reps or products", source)
	}

	return &catalog, nil
}
