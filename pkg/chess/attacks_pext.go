package chess

// PEXT-indexed slider attacks: the table slot is the occupancy's relevant
// bits extracted contiguously, so no magic multiplier is needed and the
// per-square tables are perfectly dense. Go exposes no BMI2 intrinsic, so
// the extraction is done in software; the table layout is identical to what
// a hardware PEXT would index.

type pextEntry struct {
	mask    uint64
	attacks []uint64
}

func (p *pextEntry) attack(occ uint64) uint64 {
	return p.attacks[pext(occ, p.mask)]
}

// pext gathers the bits of x selected by mask into the low bits of the
// result, preserving their order.
func pext(x, mask uint64) uint64 {
	var result uint64
	var bit uint64 = 1
	for m := mask; m != 0; m &= m - 1 {
		if x&m&-m != 0 {
			result |= bit
		}
		bit <<= 1
	}
	return result
}

func initPextTable(slide func(int, uint64) uint64) [64]pextEntry {
	var table [64]pextEntry
	for sq := 0; sq < 64; sq++ {
		var p = &table[sq]
		p.mask = sliderMask(sq, slide)
		p.attacks = make([]uint64, 1<<uint(PopCount(p.mask)))
		enumerateOccupancies(p.mask, func(occ uint64) {
			p.attacks[pext(occ, p.mask)] = slide(sq, occ)
		})
	}
	return table
}

var (
	bishopPext = initPextTable(bishopSlideAttacks)
	rookPext   = initPextTable(rookSlideAttacks)
)

func pextBishopAttacks(from int, occ uint64) uint64 {
	return bishopPext[from].attack(occ)
}

func pextRookAttacks(from int, occ uint64) uint64 {
	return rookPext[from].attack(occ)
}
