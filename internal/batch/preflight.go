package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// PreflightResult holds all context resolved before any row is normalized.
type PreflightResult struct {
	// FilePath is the path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the input file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// NumRows is the total row count reported by the Parquet file metadata.
	NumRows int64
	// BatchID uniquely identifies this run; every output row carries it.
	BatchID uuid.UUID
}

// Preflight hashes the input, validates its Parquet schema and counts rows.
func Preflight(log zerolog.Logger, filePath string) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetio.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	pf := &PreflightResult{
		FilePath:   filePath,
		FileSHA256: sha,
		FileSize:   stat.Size(),
		NumRows:    reader.NumRows(),
		BatchID:    uuid.New(),
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", pf.NumRows).
		Str("batch_id", pf.BatchID.String()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return pf, nil
}
