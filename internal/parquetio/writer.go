package parquetio

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

// Writer streams NormalizedRow records into a new Parquet file.
type Writer struct {
	file   *os.File
	writer *parquet.GenericWriter[model.NormalizedRow]
	rows   int64
}

// Create truncates or creates path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return &Writer{file: f, writer: parquet.NewGenericWriter[model.NormalizedRow](f)}, nil
}

// Write appends rows to the file.
func (w *Writer) Write(rows []model.NormalizedRow) error {
	n, err := w.writer.Write(rows)
	w.rows += int64(n)
	if err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	return nil
}

// Rows returns how many rows have been written.
func (w *Writer) Rows() int64 {
	return w.rows
}

// Close flushes the footer and closes the file.
func (w *Writer) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close writer: %w", err)
	}
	return w.file.Close()
}

// WriteDateRows writes an input file of DateRow records.
func WriteDateRows(path string, rows []model.DateRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create input file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.DateRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return f.Close()
}
