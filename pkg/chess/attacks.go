package chess

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Slider attacks are served by one of several interchangeable backends. The
// backend is selected by name at runtime; all of them produce identical
// attack sets and differ only in how the lookup is performed.
const (
	BackendClassic = "classic"
	BackendMagic   = "magic"
	BackendPext    = "pext"
)

type sliderBackend struct {
	bishop func(from int, occ uint64) uint64
	rook   func(from int, occ uint64) uint64
}

var attackBackends = map[string]sliderBackend{
	BackendClassic: {bishop: classicBishopAttacks, rook: classicRookAttacks},
	BackendMagic:   {bishop: magicBishopAttacks, rook: magicRookAttacks},
	BackendPext:    {bishop: pextBishopAttacks, rook: pextRookAttacks},
}

var (
	bishopAttacksFn   = classicBishopAttacks
	rookAttacksFn     = classicRookAttacks
	attackBackendName = BackendClassic
)

// UseAttackBackend switches the slider attack implementation. Not safe to
// call concurrently with move generation.
func UseAttackBackend(name string) error {
	var b, ok = attackBackends[name]
	if !ok {
		return fmt.Errorf("chess: unknown attack backend %q (have %v)", name, AttackBackends())
	}
	bishopAttacksFn = b.bishop
	rookAttacksFn = b.rook
	attackBackendName = name
	return nil
}

func AttackBackendName() string {
	return attackBackendName
}

func AttackBackends() []string {
	var names = maps.Keys(attackBackends)
	slices.Sort(names)
	return names
}

func BishopAttacks(from int, occ uint64) uint64 {
	return bishopAttacksFn(from, occ)
}

func RookAttacks(from int, occ uint64) uint64 {
	return rookAttacksFn(from, occ)
}

func QueenAttacks(from int, occ uint64) uint64 {
	return bishopAttacksFn(from, occ) | rookAttacksFn(from, occ)
}
