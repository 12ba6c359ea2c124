package chess

// Fancy magic bitboards. The magic multipliers are not hardcoded: they are
// searched at startup with a seeded xorshift64* generator, so the tables are
// reproducible between runs.
// https://www.chessprogramming.org/Magic_Bitboards

type magicEntry struct {
	mask    uint64
	mult    uint64
	shift   uint
	attacks []uint64
}

func (m *magicEntry) attack(occ uint64) uint64 {
	return m.attacks[((occ&m.mask)*m.mult)>>m.shift]
}

// https://vigna.di.unimi.it/ftp/papers/xorshift.pdf
type xorshiftPRNG struct {
	seed uint64
}

func (p *xorshiftPRNG) next() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

// sparse returns a candidate with few set bits; sparse multipliers converge
// to valid magics far faster than uniform ones.
func (p *xorshiftPRNG) sparse() uint64 {
	return p.next() & p.next() & p.next()
}

// Seeds per rank of the origin square, picked so the search terminates
// quickly for every square on that rank.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func sliderMask(sq int, slide func(int, uint64) uint64) uint64 {
	var edges = ((Rank1Mask | Rank8Mask) &^ (Rank1Mask << uint(8*Rank(sq)))) |
		((FileAMask | FileHMask) &^ (FileAMask << uint(File(sq))))
	return slide(sq, 0) &^ edges
}

// enumerateOccupancies visits every subset of mask (Carry-Rippler traversal).
func enumerateOccupancies(mask uint64, visit func(occ uint64)) {
	var b uint64 = 0
	for {
		visit(b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
}

func initMagicTable(slide func(int, uint64) uint64) [64]magicEntry {
	var table [64]magicEntry
	var occupancy, reference [4096]uint64
	var epoch [4096]int
	var count = 0

	for sq := 0; sq < 64; sq++ {
		var m = &table[sq]
		m.mask = sliderMask(sq, slide)
		m.shift = uint(64 - PopCount(m.mask))

		var size = 0
		enumerateOccupancies(m.mask, func(occ uint64) {
			occupancy[size] = occ
			reference[size] = slide(sq, occ)
			size++
		})
		m.attacks = make([]uint64, size)

		var prng = xorshiftPRNG{seed: magicSeeds[Rank(sq)]}
		for i := 0; i < size; {
			for m.mult = 0; PopCount((m.mult*m.mask)>>56) < 6; {
				m.mult = prng.sparse()
			}
			// The epoch trick lets us reuse the attack slots across failed
			// candidates without clearing the table each time.
			count++
			for i = 0; i < size; i++ {
				var index = (occupancy[i] * m.mult) >> m.shift
				if epoch[index] < count {
					epoch[index] = count
					m.attacks[index] = reference[i]
				} else if m.attacks[index] != reference[i] {
					break
				}
			}
		}
	}
	return table
}

var (
	bishopMagics = initMagicTable(bishopSlideAttacks)
	rookMagics   = initMagicTable(rookSlideAttacks)
)

func magicBishopAttacks(from int, occ uint64) uint64 {
	return bishopMagics[from].attack(occ)
}

func magicRookAttacks(from int, occ uint64) uint64 {
	return rookMagics[from].attack(occ)
}
