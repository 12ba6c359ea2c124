package bench

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/perft-tools/perftgo/internal/benchconf"
	"github.com/perft-tools/perftgo/pkg/chess"
)

func shallowPlan(warmup int) *benchconf.Config {
	var plan, err = benchconf.Parse("test.hcl", []byte(fmt.Sprintf(`
warmup = %d
count  = 1

position "startpos" {
  fen   = pos.startpos
  depth = 1
}
`, warmup)))
	if err != nil {
		panic(err)
	}
	return plan
}

// Three backends times three modes gives the nine benchmark variants.
func TestExpandVariants(t *testing.T) {
	var r = newRunner(&RunConfig{Plan: shallowPlan(0)})
	if err := r.stepExpandVariants(); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, v := range r.variants {
		names = append(names, v.name)
	}
	var want = []string{
		"BenchmarkPerft/pos=startpos/backend=classic/mode=hashed",
		"BenchmarkPerft/pos=startpos/backend=classic/mode=parallel",
		"BenchmarkPerft/pos=startpos/backend=classic/mode=plain",
		"BenchmarkPerft/pos=startpos/backend=magic/mode=hashed",
		"BenchmarkPerft/pos=startpos/backend=magic/mode=parallel",
		"BenchmarkPerft/pos=startpos/backend=magic/mode=plain",
		"BenchmarkPerft/pos=startpos/backend=pext/mode=hashed",
		"BenchmarkPerft/pos=startpos/backend=pext/mode=parallel",
		"BenchmarkPerft/pos=startpos/backend=pext/mode=plain",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("variant names:\n%v", diff)
	}
}

func TestRunOutputFormat(t *testing.T) {
	var out bytes.Buffer
	var err = Run(&RunConfig{
		Plan:      shallowPlan(0),
		RunFilter: "backend=classic/mode=plain",
		RunID:     "test-run",
		Output:    &out,
	})
	if err != nil {
		t.Fatal(err)
	}

	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("want 4 header lines and 1 result line, got %v:\n%v", len(lines), out.String())
	}
	if lines[3] != "run-id: test-run" {
		t.Errorf("header: got %q", lines[3])
	}
	var result = lines[4]
	if !strings.HasPrefix(result, "BenchmarkPerft/pos=startpos/backend=classic/mode=plain") {
		t.Errorf("result line: got %q", result)
	}
	for _, unit := range []string{"ns/op", "nodes/op", "nps"} {
		if !strings.Contains(result, unit) {
			t.Errorf("result line missing %v: %q", unit, result)
		}
	}
	// Depth 1 from the start position walks exactly 20 nodes.
	if !strings.Contains(result, "20 nodes/op") {
		t.Errorf("result line must report 20 nodes/op: %q", result)
	}
}

// Warmup iterations run but must not show up in the output: with two warmup
// rounds and one measured round there is still exactly one result line.
func TestRunWarmupNotEmitted(t *testing.T) {
	var out bytes.Buffer
	var err = Run(&RunConfig{
		Plan:      shallowPlan(2),
		RunFilter: "backend=classic/mode=plain",
		RunID:     "test-run",
		Output:    &out,
	})
	if err != nil {
		t.Fatal(err)
	}

	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("want 4 header lines and 1 result line, got %v:\n%v", len(lines), out.String())
	}
	if lines[3] != "run-id: test-run" {
		t.Errorf("header: got %q", lines[3])
	}
	var benchLines = 0
	for _, line := range lines {
		if strings.HasPrefix(line, "BenchmarkPerft/") {
			benchLines++
		}
	}
	if benchLines != 1 {
		t.Errorf("want 1 benchmark line, got %v:\n%v", benchLines, out.String())
	}
}

func TestRunFilterRejectsEverything(t *testing.T) {
	var err = Run(&RunConfig{
		Plan:      shallowPlan(0),
		RunFilter: "no-such-variant",
		Output:    &bytes.Buffer{},
	})
	if err == nil {
		t.Error("empty selection must be an error")
	}
}

func TestRunRestoresBackend(t *testing.T) {
	var err = Run(&RunConfig{
		Plan:      shallowPlan(0),
		RunFilter: "backend=pext",
		Output:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if chess.AttackBackendName() != chess.BackendClassic {
		t.Errorf("backend after run: got %v", chess.AttackBackendName())
	}
}
