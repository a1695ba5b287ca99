package normalize

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gyeh/datenorm/internal/model"
)

// Classify reports which parse path Create takes for raw.
func Classify(raw *string) model.Shape {
	if raw == nil {
		return model.ShapeAbsent
	}
	s := strings.TrimSpace(*raw)
	switch {
	case s == "":
		return model.ShapeEmpty
	case strings.Contains(s, "T"):
		return model.ShapeISO
	case strings.Contains(s, " "):
		return model.ShapeDateTime
	default:
		return model.ShapeDate
	}
}

// ToNormalizedRow normalizes a Parquet-read DateRow with n.
func (n Normalizer) ToNormalizedRow(row *model.DateRow, batchID uuid.UUID) *model.NormalizedRow {
	var ts Timestamp
	if row.Raw == nil {
		ts = n.Now()
	} else {
		ts = n.Parse(*row.Raw)
	}

	out := &model.NormalizedRow{
		BatchID: batchID.String(),
		ID:      row.ID,
		Shape:   string(Classify(row.Raw)),
		Valid:   ts.IsValid(),
	}
	// Readers reuse their row buffers; keep a private copy of the source text.
	if row.Raw != nil {
		raw := *row.Raw
		out.Raw = &raw
	}
	if ms, ok := ts.UnixMilli(); ok {
		dateOnly := ts.FormatDateOnly()
		dateTime := n.FormatDateTime(ts)
		out.UnixMS = &ms
		out.DateOnly = &dateOnly
		out.DateTime = &dateTime
	}
	return out
}
