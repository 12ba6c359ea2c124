package perft

import (
	"sync/atomic"

	"github.com/perft-tools/perftgo/pkg/chess"
)

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// 24 bytes
type tableEntry struct {
	gate  int32
	key32 uint32
	depth int32
	nodes int64
}

// Table memoizes subtree counts by zobrist key and remaining depth. Entries
// are guarded by a per-entry gate so concurrent probes never read a torn
// value; a gated-out probe is just treated as a miss.
type Table struct {
	megabytes int
	entries   []tableEntry
	mask      uint32
}

func NewTable(megabytes int) *Table {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 24)
	return &Table{
		megabytes: megabytes,
		entries:   make([]tableEntry, size),
		mask:      uint32(size - 1),
	}
}

func (tt *Table) Size() int {
	return tt.megabytes
}

func (tt *Table) Clear() {
	for i := range tt.entries {
		tt.entries[i] = tableEntry{}
	}
}

func (tt *Table) read(key uint64, depth int) (nodes int64, ok bool) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		if entry.key32 == uint32(key>>32) && entry.depth == int32(depth) {
			nodes = entry.nodes
			ok = true
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
	return
}

func (tt *Table) update(key uint64, depth int, nodes int64) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		// Deeper subtrees are worth more probes than shallow ones.
		if entry.key32 != uint32(key>>32) || int32(depth) >= entry.depth {
			entry.key32 = uint32(key >> 32)
			entry.depth = int32(depth)
			entry.nodes = nodes
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
}

// Perft counts leaf nodes like the plain walker, memoizing interior subtree
// counts in the table. Zobrist keys ignore the halfmove clock, so two
// positions that differ only there share an entry; perft counts are not
// affected by that clock, which keeps the sharing sound.
func (tt *Table) Perft(p *chess.Position, depth int) int64 {
	if depth <= 1 {
		return Perft(p, depth)
	}
	if nodes, ok := tt.read(p.Key, depth); ok {
		return nodes
	}
	var result int64
	var buffer [chess.MaxMoves]chess.Move
	var child chess.Position
	for _, move := range chess.GenerateMoves(buffer[:], p) {
		if p.MakeMove(move, &child) {
			result += tt.Perft(&child, depth-1)
		}
	}
	tt.update(p.Key, depth, result)
	return result
}

// HashedPerft is the one-shot form for callers that do not reuse a table.
func HashedPerft(p *chess.Position, depth, megabytes int) int64 {
	return NewTable(megabytes).Perft(p, depth)
}
