package batch_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/batch"
	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/logging"
)

const (
	testPort     = 15433
	testDB       = "datenormtest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

// Postgres tests download and start a real server, so they only run when
// DATENORM_PG_TESTS is set.
func TestMain(m *testing.M) {
	if os.Getenv("DATENORM_PG_TESTS") == "" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB connects to the embedded server, drops the schema and reapplies migrations.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("set DATENORM_PG_TESTS=1 to run Postgres tests")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS datenorm CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text", "warn")
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}
	// A second pass must be a no-op.
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations rerun: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func TestRun_PostgresSink(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	cfg := testConfig(writeFixture(t))

	sink := &batch.PostgresSink{Pool: pool, Log: zerolog.Nop(), Timezone: cfg.Timezone}
	summary, err := batch.Run(ctx, zerolog.Nop(), cfg, sink)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsWritten != 7 {
		t.Errorf("rows written = %d", summary.RowsWritten)
	}

	var status string
	var loaded int64
	err = pool.QueryRow(ctx,
		"SELECT status, rows_loaded FROM datenorm.batches WHERE batch_id = $1", summary.BatchID,
	).Scan(&status, &loaded)
	if err != nil {
		t.Fatalf("query batch: %v", err)
	}
	if status != db.StatusLoaded || loaded != 7 {
		t.Errorf("batch status=%s rows=%d", status, loaded)
	}

	var valid, invalid int64
	err = pool.QueryRow(ctx,
		"SELECT count(*) FILTER (WHERE valid), count(*) FILTER (WHERE NOT valid) FROM datenorm.normalized_dates",
	).Scan(&valid, &invalid)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if valid != 5 || invalid != 2 {
		t.Errorf("valid=%d invalid=%d", valid, invalid)
	}

	var instant time.Time
	var dateOnly string
	err = pool.QueryRow(ctx,
		"SELECT instant, date_only FROM datenorm.normalized_dates WHERE source_id = 1",
	).Scan(&instant, &dateOnly)
	if err != nil {
		t.Fatalf("query row 1: %v", err)
	}
	if !instant.Equal(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)) || dateOnly != "2022-01-01" {
		t.Errorf("row 1: instant=%v date_only=%s", instant, dateOnly)
	}
}

func TestPostgresSink_AbortDeletesBatch(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	cfg := testConfig(writeFixture(t))

	sink := &batch.PostgresSink{Pool: pool, Log: zerolog.Nop(), Timezone: cfg.Timezone}
	summary, err := batch.Run(ctx, zerolog.Nop(), cfg, sink)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	pf := &batch.PreflightResult{}
	if err := pf.BatchID.UnmarshalText([]byte(summary.BatchID)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Abort(ctx, pf); err != nil {
		t.Fatalf("Abort: %v", err)
	}

	var remaining int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM datenorm.normalized_dates").Scan(&remaining); err != nil {
		t.Fatal(err)
	}
	if remaining != 0 {
		t.Errorf("%d rows survived the abort", remaining)
	}
}
