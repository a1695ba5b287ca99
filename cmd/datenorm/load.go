package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/batch"
	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Normalize a Parquet file of date strings and COPY the results into Postgres",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&cfg.InputPath, "in", "", "Input Parquet file with id and raw columns (required)")
	_ = loadCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	loc, _ := cfg.Location()

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	sink := &batch.PostgresSink{Pool: pool, Log: log, Timezone: loc.String()}
	summary, err := batch.Run(ctx, log, &cfg, sink)
	if err != nil {
		pool.Close()
		exitPipeline(log, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Load complete: batch %s, %d rows copied (%d valid, %d invalid) (%.1fs)\n",
		summary.BatchID, summary.RowsWritten, summary.RowsValid, summary.RowsInvalid,
		summary.DurationTotal.Seconds())
	return nil
}
