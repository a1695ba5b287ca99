package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// produceStats is written by the producer goroutine and read only after it
// has reported on its error channel.
type produceStats struct {
	rowsRead    int64
	rowsValid   int64
	rowsInvalid int64
	byShape     map[model.Shape]int64
	duration    time.Duration
}

// produce streams rows from reader, normalizes them with n and pushes them
// to ch. It returns when the file is exhausted or ctx is cancelled.
func produce(ctx context.Context, reader *parquetio.Reader, n normalize.Normalizer, batchID uuid.UUID, batchSize int, ch chan<- *model.NormalizedRow, st *produceStats) error {
	start := time.Now()
	defer func() { st.duration = time.Since(start) }()

	st.byShape = make(map[model.Shape]int64)
	buf := make([]model.DateRow, batchSize)
	for {
		k, readErr := reader.Read(buf)
		for i := 0; i < k; i++ {
			st.rowsRead++
			row := n.ToNormalizedRow(&buf[i], batchID)
			st.byShape[model.Shape(row.Shape)]++
			if row.Valid {
				st.rowsValid++
			} else {
				st.rowsInvalid++
			}

			select {
			case ch <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read parquet at row %d: %w", st.rowsRead, readErr)
		}
	}
}
