package main

import (
	"fmt"
	"log"

	"github.com/cespare/subcmd"
)

// Build* variables are initialized during the build via -ldflags.
var (
	BuildVersion string
	BuildTime    string
	BuildOSUname string
	BuildCommit  string
)

func main() {
	log.SetFlags(0)

	cmds := []subcmd.Command{
		{
			Name:        "perft",
			Description: "count the leaf nodes of the move tree to a given depth",
			Do:          perftMain,
		},

		{
			Name:        "divide",
			Description: "split the perft count across the root moves",
			Do:          divideMain,
		},

		{
			Name:        "verify",
			Description: "check an EPD suite against every attack backend",
			Do:          verifyMain,
		},

		{
			Name:        "compare",
			Description: "cross-check divide output against an independent move generator",
			Do:          compareMain,
		},

		{
			Name:        "bench",
			Description: "run a benchmark plan, reporting in Go benchmark format",
			Do:          benchMain,
		},

		{
			Name:        "benchstat",
			Description: "compute and compare statistics about benchmark results",
			Do:          benchstatMain,
		},

		{
			Name:        "version",
			Description: "print perftgo version info",
			Do:          versionMain,
		},
	}

	subcmd.Run(cmds)
}

func versionMain(args []string) {
	if BuildCommit == "" {
		fmt.Printf("perftgo built without version info\n")
	} else {
		fmt.Printf("perftgo version %s\nbuilt on: %s\nos: %s\ncommit: %s\n",
			BuildVersion, BuildTime, BuildOSUname, BuildCommit)
	}
}

func perftMain(args []string) {
	if err := cmdPerft(args); err != nil {
		log.Fatalf("perftgo perft: error: %v", err)
	}
}

func divideMain(args []string) {
	if err := cmdDivide(args); err != nil {
		log.Fatalf("perftgo divide: error: %v", err)
	}
}

func verifyMain(args []string) {
	if err := cmdVerify(args); err != nil {
		log.Fatalf("perftgo verify: error: %v", err)
	}
}

func compareMain(args []string) {
	if err := cmdCompare(args); err != nil {
		log.Fatalf("perftgo compare: error: %v", err)
	}
}

func benchMain(args []string) {
	if err := cmdBench(args); err != nil {
		log.Fatalf("perftgo bench: error: %v", err)
	}
}

func benchstatMain(args []string) {
	if err := cmdBenchstat(args); err != nil {
		log.Fatalf("perftgo benchstat: error: %v", err)
	}
}
