package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

func cmdPerft(args []string) error {
	fs := flag.NewFlagSet("perftgo perft", flag.ExitOnError)
	flagFen := fs.String("fen", chess.InitialPositionFen,
		`position to walk`)
	flagDepth := fs.Int("depth", 0,
		`walk depth, must be positive`)
	flagBackend := fs.String("backend", chess.BackendClassic,
		`slider attack backend: classic, magic, or pext`)
	flagMode := fs.String("mode", perft.ModePlain,
		`tree walking mode: plain, hashed, or parallel`)
	flagHashMB := fs.Int("hash", perft.DefaultHashMB,
		`transposition table size in megabytes (hashed mode)`)
	flagWorkers := fs.Int("workers", 0,
		`worker goroutines, 0 means GOMAXPROCS (parallel mode)`)
	flagRepeat := fs.Int("repeat", 1,
		`repeat the walk n times for steadier timings`)
	flagLabel := fs.String("label", "perft",
		`label prefix for the result line`)
	flagCPUProfile := fs.String("cpuprofile", "",
		`write a CPU profile to file during the run`)
	flagMemProfile := fs.String("memprofile", "",
		`write a heap profile to file after the run`)
	fs.Parse(args)

	if *flagDepth <= 0 {
		return fmt.Errorf("-depth must be positive")
	}
	if *flagRepeat < 1 {
		return fmt.Errorf("-repeat must be at least 1")
	}
	if err := chess.UseAttackBackend(*flagBackend); err != nil {
		return err
	}
	p, err := chess.NewPositionFromFEN(*flagFen)
	if err != nil {
		return err
	}
	opts := perft.Options{
		Mode:    *flagMode,
		HashMB:  *flagHashMB,
		Workers: *flagWorkers,
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	var totalNodes int64
	start := time.Now()
	for i := 0; i < *flagRepeat; i++ {
		nodes, err := perft.Run(context.Background(), &p, *flagDepth, opts)
		if err != nil {
			return err
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t%d \t%s \t%.0f\n",
		*flagLabel, *flagDepth, totalNodes, elapsed, nps)

	if *flagMemProfile != "" {
		f, err := os.Create(*flagMemProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}
