package perft

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/perft-tools/perftgo/pkg/chess"
)

// ParallelPerft splits the tree at the root and counts the subtrees on up to
// workers goroutines. workers <= 0 means GOMAXPROCS. Cancelling the context
// abandons subtrees that have not started yet; the returned count is only
// meaningful when the error is nil.
func ParallelPerft(ctx context.Context, p *chess.Position, depth, workers int) (int64, error) {
	if depth <= 1 {
		return Perft(p, depth), nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var total int64
	var g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var buffer [chess.MaxMoves]chess.Move
	var child chess.Position
	for _, move := range chess.GenerateMoves(buffer[:], p) {
		if !p.MakeMove(move, &child) {
			continue
		}
		var root = child
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			atomic.AddInt64(&total, Perft(&root, depth-1))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return atomic.LoadInt64(&total), nil
}
