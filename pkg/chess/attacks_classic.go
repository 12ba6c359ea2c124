package chess

// Classic ray lookup: the full ray for each direction is precomputed, the
// attack set is truncated at the first blocker found on the ray.

const (
	dirN = iota
	dirNE
	dirE
	dirSE
	dirS
	dirSW
	dirW
	dirNW
)

var rayShifts = [8]func(uint64) uint64{
	dirN: Up, dirNE: UpRight, dirE: Right, dirSE: DownRight,
	dirS: Down, dirSW: DownLeft, dirW: Left, dirNW: UpLeft,
}

// A ray is "positive" when it runs toward higher square indexes, so the
// nearest blocker on it is the lowest set bit.
var rayPositive = [8]bool{
	dirN: true, dirNE: true, dirE: true, dirNW: true,
}

var classicRays = initClassicRays()

func initClassicRays() [8][64]uint64 {
	var rays [8][64]uint64
	for dir := 0; dir < 8; dir++ {
		var shift = rayShifts[dir]
		for sq := 0; sq < 64; sq++ {
			for x := shift(uint64(1) << uint(sq)); x != 0; x = shift(x) {
				rays[dir][sq] |= x
			}
		}
	}
	return rays
}

func rayAttack(dir, from int, occ uint64) uint64 {
	var attacks = classicRays[dir][from]
	var blockers = attacks & occ
	if blockers != 0 {
		var sq int
		if rayPositive[dir] {
			sq = FirstOne(blockers)
		} else {
			sq = LastOne(blockers)
		}
		attacks &^= classicRays[dir][sq]
	}
	return attacks
}

func classicBishopAttacks(from int, occ uint64) uint64 {
	return rayAttack(dirNE, from, occ) | rayAttack(dirSE, from, occ) |
		rayAttack(dirSW, from, occ) | rayAttack(dirNW, from, occ)
}

func classicRookAttacks(from int, occ uint64) uint64 {
	return rayAttack(dirN, from, occ) | rayAttack(dirE, from, occ) |
		rayAttack(dirS, from, occ) | rayAttack(dirW, from, occ)
}
