package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/perft-tools/perftgo/internal/bench"
	"github.com/perft-tools/perftgo/internal/benchconf"
)

func cmdBench(args []string) error {
	conf := &bench.RunConfig{}

	fs := flag.NewFlagSet("perftgo bench", flag.ExitOnError)
	debug := fs.Bool("debug", false,
		`print debug info`)
	flagPlan := fs.String("plan", "",
		`HCL benchmark plan file; empty means the built-in plan`)
	flagOutput := fs.String("o", "",
		`write results to file instead of stdout`)
	fs.StringVar(&conf.RunFilter, "run", "",
		`regexp that selects the benchmark variants to run`)
	fs.StringVar(&conf.RunID, "run-id", "",
		`tag for the output header; empty means a random id`)
	flagCount := fs.Int("count", 0,
		`override the plan's count`)
	flagWarmup := fs.Int("warmup", -1,
		`override the plan's warmup`)
	fs.Parse(args)

	var plan *benchconf.Config
	if *flagPlan == "" {
		plan = benchconf.Default()
	} else {
		var err error
		plan, err = benchconf.ParseFile(*flagPlan)
		if err != nil {
			return err
		}
	}
	if *flagCount > 0 {
		plan.Count = flagCount
	}
	if *flagWarmup >= 0 {
		plan.Warmup = flagWarmup
	}
	conf.Plan = plan

	var output io.Writer = os.Stdout
	if *flagOutput != "" {
		f, err := os.Create(*flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}
	conf.Output = output

	if *debug {
		conf.DebugPrint = func(msg string) {
			log.Print(msg)
		}
	}

	return bench.Run(conf)
}
