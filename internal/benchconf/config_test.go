package benchconf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/perft-tools/perftgo/pkg/chess"
)

func TestParse(t *testing.T) {
	var src = `
warmup   = 2
count    = 3
backends = ["magic"]
modes    = ["plain", "hashed"]
hash_mb  = 64

position "kiwipete" {
  fen   = pos.kiwipete
  depth = 4
}

position "endgame" {
  fen   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
  depth = 5
}
`
	var config, err = Parse("plan.hcl", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if *config.Warmup != 2 || *config.Count != 3 || config.HashMB != 64 {
		t.Errorf("attributes: %+v", config)
	}
	if diff := cmp.Diff([]string{"magic"}, config.Backends); diff != "" {
		t.Errorf("backends:\n%v", diff)
	}
	if diff := cmp.Diff([]string{"plain", "hashed"}, config.Modes); diff != "" {
		t.Errorf("modes:\n%v", diff)
	}
	var want = []Position{
		{Name: "kiwipete", Fen: chess.KiwipeteFen, Depth: 4},
		{Name: "endgame", Fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Depth: 5},
	}
	if diff := cmp.Diff(want, config.Positions); diff != "" {
		t.Errorf("positions:\n%v", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	var src = `
position "startpos" {
  fen   = pos.startpos
  depth = 3
}
`
	var config, err = Parse("plan.hcl", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if *config.Warmup != DefaultWarmup {
		t.Errorf("default warmup: want %v, got %v", DefaultWarmup, *config.Warmup)
	}
	if *config.Count != DefaultCount {
		t.Errorf("default count: want %v, got %v", DefaultCount, *config.Count)
	}
	if len(config.Backends) != 3 {
		t.Errorf("default backends: got %v", config.Backends)
	}
	if len(config.Modes) != 3 {
		t.Errorf("default modes: got %v", config.Modes)
	}
}

func TestParseErrors(t *testing.T) {
	var bad = map[string]string{
		"syntax": `position "x" {`,
		"unknown backend": `
backends = ["avx512"]
position "startpos" {
  fen   = pos.startpos
  depth = 3
}`,
		"unknown mode": `
modes = ["quantum"]
position "startpos" {
  fen   = pos.startpos
  depth = 3
}`,
		"bad fen": `
position "x" {
  fen   = "not a position"
  depth = 3
}`,
		"bad depth": `
position "startpos" {
  fen   = pos.startpos
  depth = 0
}`,
		"no positions": `warmup = 5`,
		"negative warmup": `
warmup = -1
position "startpos" {
  fen   = pos.startpos
  depth = 3
}`,
	}
	for name, src := range bad {
		if _, err := Parse(name+".hcl", []byte(src)); err == nil {
			t.Errorf("%v: expected error", name)
		}
	}
}

func TestDefaultPlan(t *testing.T) {
	var config = Default()
	if err := config.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(config.Positions) != 3 {
		t.Errorf("default plan positions: got %v", len(config.Positions))
	}
	if *config.Warmup != DefaultWarmup {
		t.Errorf("default plan warmup: got %v", *config.Warmup)
	}
}
