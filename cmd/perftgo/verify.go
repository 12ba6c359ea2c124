package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/perft-tools/perftgo/internal/suite"
	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("perftgo verify", flag.ExitOnError)
	flagSuite := fs.String("suite", "",
		`EPD suite file; empty means the built-in suite`)
	flagMaxDepth := fs.Int("max-depth", 0,
		`skip suite operations deeper than this, 0 means no limit`)
	flagMode := fs.String("mode", perft.ModePlain,
		`tree walking mode: plain, hashed, or parallel`)
	flagBackend := fs.String("backend", "",
		`slider attack backend to check; empty means all of them`)
	fs.Parse(args)

	var items []suite.Item
	if *flagSuite == "" {
		items = suite.Default()
	} else {
		var err error
		items, err = suite.Load(*flagSuite)
		if err != nil {
			return err
		}
	}

	backends := chess.AttackBackends()
	if *flagBackend != "" {
		backends = []string{*flagBackend}
	}

	opts := perft.Options{Mode: *flagMode}
	checked := 0
	failed := 0
	start := time.Now()
	for _, backend := range backends {
		if err := chess.UseAttackBackend(backend); err != nil {
			return err
		}
		for _, item := range items {
			p, err := chess.NewPositionFromFEN(item.Fen)
			if err != nil {
				return fmt.Errorf("%s: %w", item.Fen, err)
			}
			for _, expect := range item.Expects {
				if *flagMaxDepth > 0 && expect.Depth > *flagMaxDepth {
					continue
				}
				got, err := perft.Run(context.Background(), &p, expect.Depth, opts)
				if err != nil {
					return err
				}
				checked++
				if got != expect.Nodes {
					failed++
					fmt.Printf("FAIL %s backend=%s D%d: want %d nodes, got %d\n",
						item.Fen, backend, expect.Depth, expect.Nodes, got)
				}
			}
		}
	}
	chess.UseAttackBackend(chess.BackendClassic)

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, checked)
	}
	fmt.Printf("ok \t%d checks \t%v\n", checked, time.Since(start))
	return nil
}
