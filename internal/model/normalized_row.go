package model

import (
	"time"

	"github.com/google/uuid"
)

// NormalizedRow is the result of normalizing one DateRow. It doubles as the
// Parquet output schema and the COPY row for datenorm.normalized_dates.
// Invalid inputs keep their row with Valid=false and null instant fields.
type NormalizedRow struct {
	BatchID  string  `parquet:"batch_id"`
	ID       int64   `parquet:"id"`
	Raw      *string `parquet:"raw,optional"`
	Shape    string  `parquet:"shape"`
	Valid    bool    `parquet:"valid"`
	UnixMS   *int64  `parquet:"unix_ms,optional"`
	DateOnly *string `parquet:"date_only,optional"`
	DateTime *string `parquet:"date_time,optional"`
}

// Instant returns the row's instant in UTC, or nil when invalid.
func (r *NormalizedRow) Instant() *time.Time {
	if r.UnixMS == nil {
		return nil
	}
	t := time.UnixMilli(*r.UnixMS).UTC()
	return &t
}

// CopyColumns returns the ordered column names for COPY into datenorm.normalized_dates.
func CopyColumns() []string {
	return []string{
		"batch_id",
		"source_id",
		"raw",
		"shape",
		"valid",
		"unix_ms",
		"instant",
		"date_only",
		"date_time",
	}
}

// CopyValues returns the row's values in CopyColumns order.
func (r *NormalizedRow) CopyValues() []any {
	batchID, err := uuid.Parse(r.BatchID)
	if err != nil {
		batchID = uuid.Nil
	}
	return []any{
		batchID,
		r.ID,
		r.Raw,
		r.Shape,
		r.Valid,
		r.UnixMS,
		r.Instant(),
		r.DateOnly,
		r.DateTime,
	}
}
