package model

// DateRow mirrors the Parquet schema of an input file: one raw date string
// per row, keyed by a caller-assigned id. A null Raw is an absent input.
type DateRow struct {
	ID  int64   `parquet:"id"`
	Raw *string `parquet:"raw,optional"`
}

// InputColumns are the columns an input file must carry.
var InputColumns = []string{"id", "raw"}
