package chess

import (
	"math/rand"
	"testing"
)

func TestSquareHelpers(t *testing.T) {
	if SquareName(SquareA1) != "a1" || SquareName(SquareH8) != "h8" {
		t.Errorf("square names: %v %v", SquareName(SquareA1), SquareName(SquareH8))
	}
	if ParseSquare("e4") != SquareE4 {
		t.Errorf("ParseSquare(e4)=%v", ParseSquare("e4"))
	}
	if ParseSquare("-") != SquareNone ||
		ParseSquare("") != SquareNone ||
		ParseSquare("i9") != SquareNone {
		t.Error("bad squares should parse to SquareNone")
	}
	for sq := 0; sq < 64; sq++ {
		if ParseSquare(SquareName(sq)) != sq {
			t.Errorf("square %v does not round-trip", sq)
		}
	}
	if FlipSquare(SquareA1) != SquareA8 || FlipSquare(SquareE4) != SquareE5 {
		t.Error("FlipSquare mirrors ranks")
	}
}

func TestBitHelpers(t *testing.T) {
	if PopCount(0) != 0 || PopCount(Rank2Mask) != 8 {
		t.Error("PopCount")
	}
	if FirstOne(SquareMask[SquareD3]) != SquareD3 ||
		LastOne(SquareMask[SquareD3]) != SquareD3 {
		t.Error("FirstOne/LastOne on single bit")
	}
	if FirstOne(Rank5Mask) != SquareA5 || LastOne(Rank5Mask) != SquareH5 {
		t.Error("FirstOne/LastOne on rank")
	}
	if MoreThanOne(0) || MoreThanOne(SquareMask[SquareB2]) || !MoreThanOne(Rank1Mask) {
		t.Error("MoreThanOne")
	}
}

func TestBetweenMask(t *testing.T) {
	var tests = []struct {
		s1, s2  int
		between uint64
	}{
		{SquareA1, SquareH8, SquareMask[SquareB2] | SquareMask[SquareC3] |
			SquareMask[SquareD4] | SquareMask[SquareE5] |
			SquareMask[SquareF6] | SquareMask[SquareG7]},
		{SquareE1, SquareE3, SquareMask[SquareE2]},
		{SquareE1, SquareE2, 0},
		{SquareA1, SquareB3, 0},
	}
	for _, test := range tests {
		if betweenMask[test.s1][test.s2] != test.between {
			t.Errorf("between %v-%v: want %v, got %v",
				SquareName(test.s1), SquareName(test.s2),
				BitboardString(test.between), BitboardString(betweenMask[test.s1][test.s2]))
		}
		if betweenMask[test.s1][test.s2] != betweenMask[test.s2][test.s1] {
			t.Errorf("between %v-%v not symmetric", SquareName(test.s1), SquareName(test.s2))
		}
	}
}

// Every slider backend must agree with the reference ray walker on random
// occupancies for every origin square.
func TestAttackBackendsAgree(t *testing.T) {
	var r = rand.New(rand.NewSource(42))
	for _, name := range AttackBackends() {
		var backend = attackBackends[name]
		for sq := 0; sq < 64; sq++ {
			for trial := 0; trial < 200; trial++ {
				var occ = r.Uint64() & r.Uint64()
				if got, want := backend.bishop(sq, occ), bishopSlideAttacks(sq, occ); got != want {
					t.Fatalf("%v: bishop %v occ=%x: want %v, got %v",
						name, SquareName(sq), occ, BitboardString(want), BitboardString(got))
				}
				if got, want := backend.rook(sq, occ), rookSlideAttacks(sq, occ); got != want {
					t.Fatalf("%v: rook %v occ=%x: want %v, got %v",
						name, SquareName(sq), occ, BitboardString(want), BitboardString(got))
				}
			}
		}
	}
}

func TestUseAttackBackend(t *testing.T) {
	defer UseAttackBackend(BackendClassic)
	for _, name := range AttackBackends() {
		if err := UseAttackBackend(name); err != nil {
			t.Fatal(err)
		}
		if AttackBackendName() != name {
			t.Errorf("backend name: want %v, got %v", name, AttackBackendName())
		}
	}
	if err := UseAttackBackend("avx512"); err == nil {
		t.Error("unknown backend must be rejected")
	}
}

func TestPextExtract(t *testing.T) {
	var tests = []struct {
		x, mask, want uint64
	}{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0b1010, 0b1111, 0b1010},
		{0b1010, 0b1010, 0b11},
		{0x8000000000000001, 0x8000000000000001, 0b11},
	}
	for _, test := range tests {
		if got := pext(test.x, test.mask); got != test.want {
			t.Errorf("pext(%x, %x): want %x, got %x", test.x, test.mask, test.want, got)
		}
	}
}
