package model

import "time"

// RunSummary captures metrics from a single normalization run.
type RunSummary struct {
	InputPath     string
	InputSHA256   string
	BatchID       string
	RowsRead      int64
	RowsValid     int64
	RowsInvalid   int64
	RowsWritten   int64
	RowsByShape   map[Shape]int64
	DurationRead  time.Duration
	DurationWrite time.Duration
	DurationTotal time.Duration
}
