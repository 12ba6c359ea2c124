package chess

import "strings"

// Move packs from, to, the moving piece, the captured piece and the
// promotion piece into 21 bits. En passant is encoded as a pawn capturing a
// pawn on the ep square; castling as the king move of two files.
type Move int32

const MoveEmpty = Move(0)

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func makePawnMove(from, to, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) IsCastle() bool {
	return m.MovingPiece() == King && SquareDistance(m.From(), m.To()) == 2
}

// String renders the move in long algebraic notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// ParseMoveUCI resolves a long-algebraic move string against the legal moves
// of the position. The move kind (castle, en passant, promotion) is inferred
// from the board, so plain "e1g1" or "e7e8q" are enough.
func ParseMoveUCI(p *Position, lan string) Move {
	for _, mv := range GenerateLegalMoves(p) {
		if strings.EqualFold(mv.String(), lan) {
			return mv
		}
	}
	return MoveEmpty
}

// MakeMoveLAN applies the move given in long algebraic notation, if legal.
func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var mv = ParseMoveUCI(p, lan)
	if mv == MoveEmpty {
		return Position{}, false
	}
	var child = Position{}
	if !p.MakeMove(mv, &child) {
		return Position{}, false
	}
	return child, true
}
