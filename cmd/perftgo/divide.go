package main

import (
	"flag"
	"fmt"

	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

func cmdDivide(args []string) error {
	fs := flag.NewFlagSet("perftgo divide", flag.ExitOnError)
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
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("Total: %d\n", total)

	return nil
}
