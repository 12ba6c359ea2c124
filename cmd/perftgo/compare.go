package main

import (
	"flag"
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

// cmdCompare recomputes a divide with a second, independently written move
// generator and diffs the per-move counts. A mismatch pinpoints the root
// move whose subtree disagrees.
func cmdCompare(args []string) error {
	fs := flag.NewFlagSet("perftgo compare", flag.ExitOnError)
	flagFen := fs.String("fen", chess.InitialPositionFen,
		`position to walk`)
	flagDepth := fs.Int("depth", 0,
		`walk depth, must be positive`)
	flagBackend := fs.String("backend", chess.BackendClassic,
		`slider attack backend: classic, magic, or pext`)
	fs.Parse(args)

	if *flagDepth <= 0 {
		return fmt.Errorf("-depth must be positive")
	}
	if err := chess.UseAttackBackend(*flagBackend); err != nil {
		return err
	}
	p, err := chess.NewPositionFromFEN(*flagFen)
	if err != nil {
		return err
	}

	entries, total := perft.Divide(&p, *flagDepth)
	ours := make(map[string]int64, len(entries))
	for _, e := range entries {
		ours[e.Move] = e.Nodes
	}

	board := dragontoothmg.ParseFen(*flagFen)
	theirs := make(map[string]int64)
	for _, move := range board.GenerateLegalMoves() {
		unapply := board.Apply(move)
		nodes := referencePerft(&board, *flagDepth-1)
		unapply()
		theirs[move.String()] = nodes
	}

	if diff := cmp.Diff(theirs, ours); diff != "" {
		return fmt.Errorf("divide differs (-reference +ours):\n%s", diff)
	}

	fmt.Printf("ok \tdepth %d \t%d nodes \tboth generators agree\n", *flagDepth, total)
	return nil
}

func referencePerft(board *dragontoothmg.Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var result int64
	for _, move := range board.GenerateLegalMoves() {
		unapply := board.Apply(move)
		if depth > 1 {
			result += referencePerft(board, depth-1)
		} else {
			result++
		}
		unapply()
	}
	return result
}
