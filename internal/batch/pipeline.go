package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// Pipeline phases, as reported by PipelineError.
const (
	PhasePreflight = "preflight"
	PhaseNormalize = "normalize"
	PhaseWrite     = "write"
	PhaseCopy      = "copy"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full pipeline: preflight → normalize → sink. Rows are
// normalized on a producer goroutine and handed to sink over a channel.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config, sink Sink) (*model.RunSummary, error) {
	totalStart := time.Now()

	loc, err := cfg.Location()
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}

	// Phase 1: Preflight
	log.Info().Str("file", cfg.InputPath).Msg("starting preflight")
	pf, err := Preflight(log, cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	reader, err := parquetio.Open(pf.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseNormalize, Err: err}
	}
	defer reader.Close()

	// Phase 2: Normalize → sink
	log.Info().Str("timezone", loc.String()).Str("sink", sink.Phase()).Msg("starting normalize")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := normalize.Normalizer{Location: loc}
	ch := make(chan *model.NormalizedRow, batchSize)
	errCh := make(chan error, 1)
	var st produceStats
	go func() {
		defer close(ch)
		errCh <- produce(ctx, reader, n, pf.BatchID, batchSize, ch, &st)
	}()

	sinkStart := time.Now()
	written, sinkErr := sink.Consume(ctx, pf, ch)
	sinkDur := time.Since(sinkStart)
	if sinkErr != nil {
		cancel()
	}
	prodErr := <-errCh

	if sinkErr != nil || prodErr != nil {
		if abortErr := sink.Abort(context.WithoutCancel(ctx), pf); abortErr != nil {
			log.Warn().Err(abortErr).Msg("cleanup after failure failed (non-fatal)")
		}
		if sinkErr != nil {
			return nil, &PipelineError{Phase: sink.Phase(), Err: sinkErr}
		}
		return nil, &PipelineError{Phase: PhaseNormalize, Err: prodErr}
	}

	summary := &model.RunSummary{
		InputPath:     pf.FilePath,
		InputSHA256:   pf.FileSHA256,
		BatchID:       pf.BatchID.String(),
		RowsRead:      st.rowsRead,
		RowsValid:     st.rowsValid,
		RowsInvalid:   st.rowsInvalid,
		RowsWritten:   written,
		RowsByShape:   st.byShape,
		DurationRead:  st.duration,
		DurationWrite: sinkDur,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_valid", summary.RowsValid).
		Int64("rows_invalid", summary.RowsInvalid).
		Int64("rows_written", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("pipeline complete")

	return summary, nil
}
