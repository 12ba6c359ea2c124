// Package bench runs perft benchmark plans and reports the results in the
// Go benchmark text format, so the output can be fed straight into
// benchstat.
package bench

import (
	"io"

	"github.com/google/uuid"

	"github.com/perft-tools/perftgo/internal/benchconf"
)

type RunConfig struct {
	Plan *benchconf.Config

	// RunFilter selects variants by regexp match on the full benchmark
	// name. Empty means all.
	RunFilter string

	// RunID tags the output header so separate runs can be told apart.
	// Empty means a fresh random id.
	RunID string

	Output     io.Writer
	DebugPrint func(string)
}

func Run(conf *RunConfig) error {
	if conf.RunID == "" {
		conf.RunID = uuid.NewString()
	}
	var r = newRunner(conf)
	return r.Run()
}
