package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/batch"
	"github.com/gyeh/datenorm/internal/exitcode"
)

// exitPipeline logs err and exits with the code for the failed phase.
func exitPipeline(log zerolog.Logger, err error) {
	var pe *batch.PipelineError
	if !errors.As(err, &pe) {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitcode.NormalizeError)
	}
	log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("run failed")
	switch pe.Phase {
	case batch.PhasePreflight:
		os.Exit(exitcode.ValidationError)
	case batch.PhaseCopy:
		os.Exit(exitcode.CopyError)
	case batch.PhaseWrite:
		os.Exit(exitcode.WriteError)
	default:
		os.Exit(exitcode.NormalizeError)
	}
}
