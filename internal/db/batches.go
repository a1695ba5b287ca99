package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// Batch statuses recorded in datenorm.batches.
const (
	StatusLoading = "loading"
	StatusLoaded  = "loaded"
	StatusFailed  = "failed"
)

// RegisterBatch records a new load batch with status "loading".
func RegisterBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, sourceFile, sha, timezone string) error {
	if _, err := pool.Exec(ctx, embedsql.RegisterBatch, batchID, sourceFile, sha, timezone); err != nil {
		return fmt.Errorf("register batch: %w", err)
	}
	return nil
}

// UpdateBatchStatus sets the batch status and loaded row count.
func UpdateBatchStatus(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, status string, rows int64) error {
	if _, err := pool.Exec(ctx, embedsql.UpdateBatchStatus, batchID, status, rows); err != nil {
		return fmt.Errorf("update batch status: %w", err)
	}
	return nil
}

// DeleteBatch removes a batch and, by cascade, its rows.
func DeleteBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) (int64, error) {
	tag, err := pool.Exec(ctx, embedsql.DeleteBatch, batchID)
	if err != nil {
		return 0, fmt.Errorf("delete batch: %w", err)
	}
	return tag.RowsAffected(), nil
}
