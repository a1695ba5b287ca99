package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// Sink consumes normalized rows until the channel closes.
type Sink interface {
	// Phase names the pipeline phase reported when the sink fails.
	Phase() string
	// Consume drains ch and returns the number of rows persisted.
	Consume(ctx context.Context, pf *PreflightResult, ch <-chan *model.NormalizedRow) (int64, error)
	// Abort discards whatever a failed run left behind.
	Abort(ctx context.Context, pf *PreflightResult) error
}

// Discard counts rows without persisting them; used for dry runs.
type Discard struct{}

func (Discard) Phase() string { return PhaseNormalize }

func (Discard) Consume(_ context.Context, _ *PreflightResult, ch <-chan *model.NormalizedRow) (int64, error) {
	var n int64
	for range ch {
		n++
	}
	return n, nil
}

func (Discard) Abort(context.Context, *PreflightResult) error { return nil }

// ParquetSink writes rows to a Parquet file at Path, BatchSize rows at a time.
type ParquetSink struct {
	Path      string
	BatchSize int
}

func (s *ParquetSink) Phase() string { return PhaseWrite }

func (s *ParquetSink) Consume(_ context.Context, _ *PreflightResult, ch <-chan *model.NormalizedRow) (int64, error) {
	w, err := parquetio.Create(s.Path)
	if err != nil {
		for range ch {
		}
		return 0, err
	}

	size := s.BatchSize
	if size <= 0 {
		size = 1
	}
	buf := make([]model.NormalizedRow, 0, size)
	var writeErr error
	for row := range ch {
		if writeErr != nil {
			continue
		}
		buf = append(buf, *row)
		if len(buf) == size {
			writeErr = w.Write(buf)
			buf = buf[:0]
		}
	}
	if writeErr == nil && len(buf) > 0 {
		writeErr = w.Write(buf)
	}
	closeErr := w.Close()
	if writeErr != nil {
		return w.Rows(), writeErr
	}
	return w.Rows(), closeErr
}

// Abort removes the partially written output file.
func (s *ParquetSink) Abort(context.Context, *PreflightResult) error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove partial output: %w", err)
	}
	return nil
}

// PostgresSink COPY-loads rows into datenorm.normalized_dates under a batch
// registered in datenorm.batches.
type PostgresSink struct {
	Pool     *pgxpool.Pool
	Log      zerolog.Logger
	Timezone string
}

func (s *PostgresSink) Phase() string { return PhaseCopy }

func (s *PostgresSink) Consume(ctx context.Context, pf *PreflightResult, ch <-chan *model.NormalizedRow) (int64, error) {
	if err := db.RegisterBatch(ctx, s.Pool, pf.BatchID, pf.FilePath, pf.FileSHA256, s.Timezone); err != nil {
		for range ch {
		}
		return 0, err
	}

	start := time.Now()
	source := db.NewChannelSource(ch)
	rows, err := s.Pool.CopyFrom(ctx,
		pgx.Identifier{"datenorm", "normalized_dates"},
		model.CopyColumns(),
		source,
	)
	if err != nil {
		// CopyFrom stops reading on failure; let the producer finish.
		for range ch {
		}
		return rows, fmt.Errorf("copy normalized dates: %w", err)
	}

	if err := db.UpdateBatchStatus(ctx, s.Pool, pf.BatchID, db.StatusLoaded, rows); err != nil {
		return rows, err
	}

	dur := time.Since(start)
	s.Log.Info().
		Int64("rows_copied", rows).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rows)/dur.Seconds()).
		Msg("copy complete")
	return rows, nil
}

// Abort deletes the batch row and, by cascade, everything copied under it.
func (s *PostgresSink) Abort(ctx context.Context, pf *PreflightResult) error {
	deleted, err := db.DeleteBatch(ctx, s.Pool, pf.BatchID)
	if err != nil {
		return err
	}
	s.Log.Info().Int64("batches_deleted", deleted).Str("batch_id", pf.BatchID.String()).Msg("batch rolled back")
	return nil
}
