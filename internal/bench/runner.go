package bench

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"time"

	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

type variant struct {
	name    string
	fen     string
	depth   int
	backend string
	mode    string
}

type runner struct {
	conf *RunConfig

	variants []variant
}

func newRunner(conf *RunConfig) *runner {
	return &runner{conf: conf}
}

func (r *runner) debugf(format string, args ...interface{}) {
	if r.conf.DebugPrint != nil {
		r.conf.DebugPrint(fmt.Sprintf(format, args...))
	}
}

func (r *runner) Run() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"validate plan", r.stepValidatePlan},
		{"expand variants", r.stepExpandVariants},
		{"filter variants", r.stepFilterVariants},
		{"print header", r.stepPrintHeader},
		{"run variants", r.stepRunVariants},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func (r *runner) stepValidatePlan() error {
	if r.conf.Plan == nil {
		return errors.New("no plan given")
	}
	return r.conf.Plan.Validate()
}

// stepExpandVariants builds the position x backend x mode matrix. The name
// layout mirrors Go subbenchmarks so benchstat groups runs per variant.
func (r *runner) stepExpandVariants() error {
	var plan = r.conf.Plan
	for _, position := range plan.Positions {
		for _, backend := range plan.Backends {
			for _, mode := range plan.Modes {
				r.variants = append(r.variants, variant{
					name: fmt.Sprintf("BenchmarkPerft/pos=%s/backend=%s/mode=%s",
						position.Name, backend, mode),
					fen:     position.Fen,
					depth:   position.Depth,
					backend: backend,
					mode:    mode,
				})
			}
		}
	}
	return nil
}

func (r *runner) stepFilterVariants() error {
	if r.conf.RunFilter == "" {
		return nil
	}
	var re, err = regexp.Compile(r.conf.RunFilter)
	if err != nil {
		return err
	}
	var selected = r.variants[:0]
	for _, v := range r.variants {
		if re.MatchString(v.name) {
			selected = append(selected, v)
		}
	}
	if len(selected) == 0 {
		return errors.New("selected variants set is empty")
	}
	r.variants = selected

	for _, v := range r.variants {
		r.debugf("variant: %q", v.name)
	}
	return nil
}

func (r *runner) stepPrintHeader() error {
	fmt.Fprintf(r.conf.Output, "goos: %s\n", runtime.GOOS)
	fmt.Fprintf(r.conf.Output, "goarch: %s\n", runtime.GOARCH)
	fmt.Fprintf(r.conf.Output, "pkg: github.com/perft-tools/perftgo\n")
	fmt.Fprintf(r.conf.Output, "run-id: %s\n", r.conf.RunID)
	return nil
}

func (r *runner) stepRunVariants() error {
	for _, v := range r.variants {
		if err := r.runVariant(v); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	return nil
}

func (r *runner) runVariant(v variant) error {
	defer chess.UseAttackBackend(chess.BackendClassic)
	if err := chess.UseAttackBackend(v.backend); err != nil {
		return err
	}
	var p, err = chess.NewPositionFromFEN(v.fen)
	if err != nil {
		return err
	}
	var opts = perft.Options{
		Mode:    v.mode,
		HashMB:  r.conf.Plan.HashMB,
		Workers: r.conf.Plan.Workers,
	}

	for i := 0; i < *r.conf.Plan.Warmup; i++ {
		var nodes int64
		nodes, err = perft.Run(context.Background(), &p, v.depth, opts)
		if err != nil {
			return err
		}
		r.debugf("%s: warmup %d: %d nodes", v.name, i+1, nodes)
	}

	var want int64 = -1
	for i := 0; i < *r.conf.Plan.Count; i++ {
		var start = time.Now()
		var nodes int64
		nodes, err = perft.Run(context.Background(), &p, v.depth, opts)
		var elapsed = time.Since(start)
		if err != nil {
			return err
		}
		if want == -1 {
			want = nodes
		} else if nodes != want {
			return fmt.Errorf("unstable node count: %d then %d", want, nodes)
		}
		var nps = float64(nodes) / elapsed.Seconds()
		fmt.Fprintf(r.conf.Output, "%s \t%8d\t%12d ns/op\t%12d nodes/op\t%14.0f nps\n",
			v.name, 1, elapsed.Nanoseconds(), nodes, nps)
	}
	return nil
}
