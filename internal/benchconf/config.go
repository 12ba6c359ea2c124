// Package benchconf loads benchmark plans from HCL. A plan names the
// positions to walk and the backend/mode matrix to walk them with:
//
//	warmup   = 5
//	count    = 3
//	backends = ["classic", "magic", "pext"]
//	modes    = ["plain"]
//
//	position "kiwipete" {
//	  fen   = pos.kiwipete
//	  depth = 4
//	}
//
// The pos.* constants expose the standard test positions so plans do not
// have to repeat FEN strings.
package benchconf

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/perft-tools/perftgo/pkg/chess"
	"github.com/perft-tools/perftgo/pkg/perft"
)

// Position is one benchmarked position of the plan.
type Position struct {
	Name  string `hcl:"name,label"`
	Fen   string `hcl:"fen"`
	Depth int    `hcl:"depth"`
}

// Config is a benchmark plan. Unset attributes take defaults: warmup 5,
// count 10, every backend, every mode.
type Config struct {
	Warmup    *int       `hcl:"warmup,optional"`
	Count     *int       `hcl:"count,optional"`
	Backends  []string   `hcl:"backends,optional"`
	Modes     []string   `hcl:"modes,optional"`
	HashMB    int        `hcl:"hash_mb,optional"`
	Workers   int        `hcl:"workers,optional"`
	Positions []Position `hcl:"position,block"`
}

// benchstat wants at least 5 samples per variant to report significance.
const (
	DefaultWarmup = 5
	DefaultCount  = 10
)

var standardPositions = map[string]string{
	"startpos": chess.InitialPositionFen,
	"kiwipete": chess.KiwipeteFen,
	"pos3":     "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"pos4":     "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"pos5":     "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"pos6":     "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

func evalContext() *hcl.EvalContext {
	var vals = make(map[string]cty.Value, len(standardPositions))
	for name, fen := range standardPositions {
		vals[name] = cty.StringVal(fen)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pos": cty.ObjectVal(vals),
		},
	}
}

// Parse decodes a plan from src; filename is used in diagnostics only.
func Parse(filename string, src []byte) (*Config, error) {
	var parser = hclparse.NewParser()
	var file, diags = parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("benchconf: parse %s: %w", filename, diags)
	}
	var config Config
	diags = gohcl.DecodeBody(file.Body, evalContext(), &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("benchconf: decode %s: %w", filename, diags)
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseFile loads a plan from disk.
func ParseFile(path string) (*Config, error) {
	var src, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src)
}

// Default returns the built-in plan: the three classic positions across the
// full backend/mode matrix.
func Default() *Config {
	var config = &Config{
		Positions: []Position{
			{Name: "startpos", Fen: standardPositions["startpos"], Depth: 5},
			{Name: "kiwipete", Fen: standardPositions["kiwipete"], Depth: 4},
			{Name: "pos3", Fen: standardPositions["pos3"], Depth: 5},
		},
	}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Warmup == nil {
		var w = DefaultWarmup
		c.Warmup = &w
	}
	if c.Count == nil {
		var n = DefaultCount
		c.Count = &n
	}
	if len(c.Backends) == 0 {
		c.Backends = chess.AttackBackends()
	}
	if len(c.Modes) == 0 {
		c.Modes = perft.Modes()
	}
	if c.HashMB == 0 {
		c.HashMB = perft.DefaultHashMB
	}
}

func (c *Config) Validate() error {
	if *c.Warmup < 0 {
		return fmt.Errorf("benchconf: warmup must not be negative")
	}
	if *c.Count < 1 {
		return fmt.Errorf("benchconf: count must be at least 1")
	}
	for _, backend := range c.Backends {
		var found = false
		for _, known := range chess.AttackBackends() {
			if backend == known {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("benchconf: unknown backend %q (have %v)",
				backend, chess.AttackBackends())
		}
	}
	for _, mode := range c.Modes {
		var found = false
		for _, known := range perft.Modes() {
			if mode == known {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("benchconf: unknown mode %q (have %v)", mode, perft.Modes())
		}
	}
	if len(c.Positions) == 0 {
		return fmt.Errorf("benchconf: plan has no positions")
	}
	for _, position := range c.Positions {
		if position.Depth < 1 {
			return fmt.Errorf("benchconf: position %q: depth must be at least 1", position.Name)
		}
		if _, err := chess.NewPositionFromFEN(position.Fen); err != nil {
			return fmt.Errorf("benchconf: position %q: %w", position.Name, err)
		}
	}
	return nil
}
