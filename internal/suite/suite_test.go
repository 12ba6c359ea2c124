package suite

import (
	"strings"
	"testing"

	"github.com/perft-tools/perftgo/pkg/chess"
)

func TestParse(t *testing.T) {
	var src = `
# comment
4k3/8/8/8/8/8/8/4K3 w - - ;D1 5 ;D2 25

8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - ;D1 14
`
	var items, err = Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %v", len(items))
	}
	if items[0].Fen != "4k3/8/8/8/8/8/8/4K3 w - -" {
		t.Errorf("fen: got %q", items[0].Fen)
	}
	if len(items[0].Expects) != 2 ||
		items[0].Expects[0] != (Expect{Depth: 1, Nodes: 5}) ||
		items[0].Expects[1] != (Expect{Depth: 2, Nodes: 25}) {
		t.Errorf("expects: got %v", items[0].Expects)
	}
	if items[0].MaxDepth() != 2 || items[1].MaxDepth() != 1 {
		t.Error("MaxDepth")
	}
}

func TestParseErrors(t *testing.T) {
	var bad = []string{
		"4k3/8/8/8/8/8/8/4K3 w - -",
		";D1 5",
		"4k3/8/8/8/8/8/8/4K3 w - - ;D1",
		"4k3/8/8/8/8/8/8/4K3 w - - ;Dx 5",
		"4k3/8/8/8/8/8/8/4K3 w - - ;D0 5",
		"4k3/8/8/8/8/8/8/4K3 w - - ;D1 -5",
		"4k3/8/8/8/8/8/8/4K3 w - - ;bm e2e4",
	}
	for _, src := range bad {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestDefaultSuite(t *testing.T) {
	var items = Default()
	if len(items) != 8 {
		t.Fatalf("want 8 default items, got %v", len(items))
	}
	for _, item := range items {
		if _, err := chess.NewPositionFromFEN(item.Fen); err != nil {
			t.Errorf("default suite fen does not parse: %v", err)
		}
		if len(item.Expects) == 0 {
			t.Errorf("%v: no expects", item.Fen)
		}
	}
	if items[0].Expects[0].Nodes != 20 {
		t.Error("first default item must be the start position")
	}
}
