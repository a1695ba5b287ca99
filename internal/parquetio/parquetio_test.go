package parquetio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

func strPtr(s string) *string { return &s }

func TestReadDateRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.parquet")
	in := []model.DateRow{
		{ID: 1, Raw: strPtr("2022-01-01")},
		{ID: 2},
		{ID: 3, Raw: strPtr("2022-01-01 17:04:03")},
	}
	if err := WriteDateRows(path, in); err != nil {
		t.Fatalf("WriteDateRows: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.NumRows() != 3 {
		t.Fatalf("NumRows = %d", r.NumRows())
	}

	var got []model.DateRow
	buf := make([]model.DateRow, 2)
	for {
		n, readErr := r.Read(buf)
		got = append(got, buf[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			t.Fatalf("Read: %v", readErr)
		}
	}
	if len(got) != 3 {
		t.Fatalf("read %d rows", len(got))
	}
	if got[1].Raw != nil {
		t.Errorf("row 2: expected null raw, got %q", *got[1].Raw)
	}
	if got[2].ID != 3 || got[2].Raw == nil || *got[2].Raw != "2022-01-01 17:04:03" {
		t.Errorf("row 3: %+v", got[2])
	}
}

func TestOpen_MissingColumns(t *testing.T) {
	type idOnly struct {
		ID int64 `parquet:"id"`
	}
	path := filepath.Join(t.TempDir(), "bad.parquet")
	if err := parquet.WriteFile(path, []idOnly{{ID: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	w, err := Create(path)
	if err != nil {
		t.Fatal(err)
	}
	ms := int64(1640995200000)
	rows := []model.NormalizedRow{
		{BatchID: "b", ID: 1, Raw: strPtr("2022-01-01"), Shape: "date", Valid: true, UnixMS: &ms},
		{BatchID: "b", ID: 2, Raw: strPtr(""), Shape: "empty"},
	}
	if err := w.Write(rows); err != nil {
		t.Fatal(err)
	}
	if w.Rows() != 2 {
		t.Errorf("Rows = %d", w.Rows())
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := parquet.ReadFile[model.NormalizedRow](path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !got[0].Valid || *got[0].UnixMS != ms || got[1].UnixMS != nil {
		t.Errorf("unexpected rows: %+v", got)
	}
}
