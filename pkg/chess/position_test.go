package chess

import (
	"math/rand"
	"strings"
	"testing"
)

var testFens = []string{
	InitialPositionFen,
	KiwipeteFen,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("parse %v: %v", fen, err)
		}
		var want = strings.Join(strings.Split(fen, " ")[:4], " ")
		var got = strings.Join(strings.Split(p.String(), " ")[:4], " ")
		if got != want {
			t.Errorf("fen round-trip:\nwant %v\ngot  %v", want, got)
		}
	}
}

func TestFenErrors(t *testing.T) {
	var bad = []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		// no kings
		"8/8/8/8/8/8/8/8 w - - 0 1",
		// side not to move is in check
		"4k3/8/8/8/8/8/8/q3K3 b - - 0 1",
	}
	for _, fen := range bad {
		if _, err := NewPositionFromFEN(fen); err == nil {
			t.Errorf("expected error for %q", fen)
		}
	}
}

func TestCheckers(t *testing.T) {
	var tests = []struct {
		fen      string
		checkers string
	}{
		{InitialPositionFen, "()"},
		{"4k3/8/8/8/8/8/8/4K2q w - - 0 1", "(h1)"},
		{"4k3/8/8/8/8/8/5n2/4K3 w - - 0 1", "(f2)"},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "(h4)"},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := BitboardString(p.Checkers); got != test.checkers {
			t.Errorf("%v: checkers want %v, got %v", test.fen, test.checkers, got)
		}
	}
}

// The incrementally maintained zobrist key must match a from-scratch
// recomputation along random legal walks.
func TestZobristIncremental(t *testing.T) {
	var r = rand.New(rand.NewSource(7))
	for _, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		for ply := 0; ply < 60; ply++ {
			if p.Key != p.computeKey() {
				t.Fatalf("%v ply %v: incremental key %x, recomputed %x",
					fen, ply, p.Key, p.computeKey())
			}
			var moves = GenerateLegalMoves(&p)
			if len(moves) == 0 {
				break
			}
			var child Position
			if !p.MakeMove(moves[r.Intn(len(moves))], &child) {
				t.Fatal("legal move rejected")
			}
			p = child
		}
	}
}

func TestMakeMoveRejectsIllegal(t *testing.T) {
	// The d-file knight is pinned by the rook.
	var p, err = NewPositionFromFEN("3rk3/8/8/8/8/8/3N4/3K4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var buffer [MaxMoves]Move
	var child Position
	for _, m := range GenerateMoves(buffer[:], &p) {
		if m.MovingPiece() == Knight && p.MakeMove(m, &child) {
			t.Errorf("pinned knight move %v must be rejected", m)
		}
	}
}

func TestMakeMoveLAN(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var next, ok = p.MakeMoveLAN("e2e4")
	if !ok {
		t.Fatal("e2e4 is legal from the start position")
	}
	if next.EpSquare != SquareE3 {
		t.Errorf("ep square after e2e4: want e3, got %v", next.EpSquare)
	}
	if _, ok := p.MakeMoveLAN("e2e5"); ok {
		t.Error("e2e5 is not legal")
	}
}
