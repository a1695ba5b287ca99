package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/batch"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
	"github.com/gyeh/datenorm/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run normalization and report stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.InputPath, "in", "", "Input Parquet file with id and raw columns (required)")
	_ = planCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	loc, _ := cfg.Location()

	summary, err := batch.Run(context.Background(), log, &cfg, batch.Discard{})
	if err != nil {
		exitPipeline(log, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== datenorm plan ===")
	fmt.Fprintf(out, "File:       %s\n", summary.InputPath)
	fmt.Fprintf(out, "SHA-256:    %s\n", summary.InputSHA256)
	fmt.Fprintf(out, "Timezone:   %s\n", loc)
	fmt.Fprintf(out, "Total rows: %d\n", summary.RowsRead)
	fmt.Fprintf(out, "Valid:      %d\n", summary.RowsValid)
	fmt.Fprintf(out, "Invalid:    %d\n", summary.RowsInvalid)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Shape distribution:")
	for _, shape := range model.AllShapes {
		if count := summary.RowsByShape[shape]; count > 0 {
			fmt.Fprintf(out, "  %-10s %8d\n", shape, count)
		}
	}
	return nil
}
