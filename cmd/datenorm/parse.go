package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
	"github.com/gyeh/datenorm/internal/normalize"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [date-string...]",
	Short: "Normalize date strings given on the command line (no arguments: now)",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print one JSON object per input")
	rootCmd.AddCommand(parseCmd)
}

// parseResult is one line of parse output.
type parseResult struct {
	Input     *string             `json:"input"`
	Shape     string              `json:"shape"`
	Valid     bool                `json:"valid"`
	Timestamp normalize.Timestamp `json:"timestamp"`
	ISO       string              `json:"iso"`
	DateOnly  string              `json:"date_only"`
	DateTime  string              `json:"date_time"`
}

func runParse(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	n := normalize.Normalizer{Location: loc}

	inputs := make([]*string, len(args))
	for i := range args {
		inputs[i] = &args[i]
	}
	if len(inputs) == 0 {
		inputs = []*string{nil}
	}

	results := make([]parseResult, 0, len(inputs))
	for _, in := range inputs {
		var ts normalize.Timestamp
		if in == nil {
			ts = n.Now()
		} else {
			ts = n.Parse(*in)
		}
		results = append(results, parseResult{
			Input:     in,
			Shape:     string(normalize.Classify(in)),
			Valid:     ts.IsValid(),
			Timestamp: ts,
			ISO:       ts.String(),
			DateOnly:  ts.FormatDateOnly(),
			DateTime:  n.FormatDateTime(ts),
		})
		log.Debug().Str("shape", results[len(results)-1].Shape).Bool("valid", ts.IsValid()).Msg("parsed")
	}

	out := cmd.OutOrStdout()
	if parseJSON {
		enc := json.NewEncoder(out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tSHAPE\tVALID\tUNIX_MS\tDATE\tDATETIME")
	for _, r := range results {
		input := "<now>"
		if r.Input != nil {
			input = fmt.Sprintf("%q", *r.Input)
		}
		ms := "NaN"
		if v, ok := r.Timestamp.UnixMilli(); ok {
			ms = fmt.Sprint(v)
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\n", input, r.Shape, r.Valid, ms, r.DateOnly, r.DateTime)
	}
	return tw.Flush()
}
