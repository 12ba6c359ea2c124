// Package perft counts the leaf nodes of the legal move tree to a fixed
// depth. The node counts have known reference values for standard positions,
// which makes perft the workhorse for validating move generation and for
// benchmarking it.
package perft

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/perft-tools/perftgo/pkg/chess"
)

// Perft returns the number of leaf nodes at the given depth. Depth 0 is one
// node by convention.
func Perft(p *chess.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var result int64
	var buffer [chess.MaxMoves]chess.Move
	var child chess.Position
	for _, move := range chess.GenerateMoves(buffer[:], p) {
		if p.MakeMove(move, &child) {
			if depth > 1 {
				result += Perft(&child, depth-1)
			} else {
				result++
			}
		}
	}
	return result
}

// DivideEntry is the perft count of the subtree below one root move.
type DivideEntry struct {
	Move  string
	Nodes int64
}

// Divide splits the perft count across the root moves, sorted by move
// string. The sum of the entries equals Perft(p, depth).
func Divide(p *chess.Position, depth int) ([]DivideEntry, int64) {
	var entries []DivideEntry
	var total int64
	var buffer [chess.MaxMoves]chess.Move
	var child chess.Position
	for _, move := range chess.GenerateMoves(buffer[:], p) {
		if p.MakeMove(move, &child) {
			var nodes = Perft(&child, depth-1)
			entries = append(entries, DivideEntry{Move: move.String(), Nodes: nodes})
			total += nodes
		}
	}
	slices.SortFunc(entries, func(a, b DivideEntry) int {
		return strings.Compare(a.Move, b.Move)
	})
	return entries, total
}
