package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/batch"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Normalize a Parquet file of date strings into a new Parquet file",
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Input Parquet file with id and raw columns (required)")
	f.StringVar(&cfg.OutputPath, "out", "", "Output Parquet file (required)")
	_ = convertCmd.MarkFlagRequired("in")
	_ = convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sink := &batch.ParquetSink{Path: cfg.OutputPath, BatchSize: cfg.BatchSize}
	summary, err := batch.Run(ctx, log, &cfg, sink)
	if err != nil {
		exitPipeline(log, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Convert complete: %d rows read, %d valid, %d invalid, %d written to %s (%.1fs)\n",
		summary.RowsRead, summary.RowsValid, summary.RowsInvalid, summary.RowsWritten, cfg.OutputPath,
		summary.DurationTotal.Seconds())
	return nil
}
