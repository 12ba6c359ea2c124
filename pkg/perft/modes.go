package perft

import (
	"context"
	"fmt"

	"github.com/perft-tools/perftgo/pkg/chess"
)

// A mode picks the tree-walking strategy; every mode returns the same count.
const (
	ModePlain    = "plain"
	ModeHashed   = "hashed"
	ModeParallel = "parallel"
)

func Modes() []string {
	return []string{ModeHashed, ModeParallel, ModePlain}
}

// Options selects the mode and its tuning knobs. Zero values select the
// plain single-threaded walker.
type Options struct {
	Mode    string
	HashMB  int
	Workers int
}

const DefaultHashMB = 128

// Run dispatches to the walker selected by opts.
func Run(ctx context.Context, p *chess.Position, depth int, opts Options) (int64, error) {
	switch opts.Mode {
	case ModePlain, "":
		return Perft(p, depth), nil
	case ModeHashed:
		var megabytes = opts.HashMB
		if megabytes <= 0 {
			megabytes = DefaultHashMB
		}
		return HashedPerft(p, depth, megabytes), nil
	case ModeParallel:
		return ParallelPerft(ctx, p, depth, opts.Workers)
	}
	return 0, fmt.Errorf("perft: unknown mode %q (have %v)", opts.Mode, Modes())
}
