package checkers

import (
	"fmt"
	"strings"
)

// NewPosition is the initial makhos setup: twelve white men on the dark
// squares of ranks 1-3, twelve black men on ranks 6-8, white to move.
func NewPosition() Position {
	var p = Position{WhiteMove: true, ChainFrom: SquareNone}
	for sq := 0; sq < 64; sq++ {
		if !IsPlaySquare(sq) {
			continue
		}
		switch {
		case Rank(sq) <= Rank3:
			p.Board[sq] = WhiteMan
		case Rank(sq) >= Rank6:
			p.Board[sq] = BlackMan
		}
	}
	return p
}

// NewPositionFromString parses an eight-row diagram, rank 8 first, made of
// '.' (empty), 'w'/'b' (men) and 'W'/'B' (kings). Rows may be separated by
// any whitespace.
func NewPositionFromString(diagram string, whiteMove bool) (Position, error) {
	var rows = strings.Fields(diagram)
	if len(rows) != 8 {
		return Position{}, fmt.Errorf("checkers: diagram has %d rows, want 8", len(rows))
	}
	var p = Position{WhiteMove: whiteMove, ChainFrom: SquareNone}
	for i, row := range rows {
		if len(row) != 8 {
			return Position{}, fmt.Errorf("checkers: row %q has %d cells, want 8", row, len(row))
		}
		var rank = Rank8 - i
		for file := FileA; file <= FileH; file++ {
			var pc Piece
			switch row[file] {
			case '.':
				continue
			case 'w':
				pc = WhiteMan
			case 'W':
				pc = WhiteKing
			case 'b':
				pc = BlackMan
			case 'B':
				pc = BlackKing
			default:
				return Position{}, fmt.Errorf("checkers: bad cell %q", row[file])
			}
			var sq = MakeSquare(file, rank)
			if !IsPlaySquare(sq) {
				return Position{}, fmt.Errorf("checkers: piece on light square %v", SquareName(sq))
			}
			p.Board[sq] = pc
		}
	}
	return p, nil
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			switch p.Board[MakeSquare(file, rank)] {
			case WhiteMan:
				sb.WriteByte('w')
			case WhiteKing:
				sb.WriteByte('W')
			case BlackMan:
				sb.WriteByte('b')
			case BlackKing:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
		if rank > Rank1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// MakeMove applies m to a copy of p stored in child. It returns false if m
// is not among the legal moves of p; child is then unspecified. Promotion
// happens on landing, before the chain-capture check, so a fresh king may
// keep jumping backwards within the same turn.
func (p *Position) MakeMove(m Move, child *Position) bool {
	var buffer [MaxMoves]Move
	if !containsMove(p.GenerateMoves(buffer[:]), m) {
		return false
	}
	*child = *p
	var pc = p.Board[m.From()]
	child.Board[m.From()] = Empty
	if m.IsCapture() {
		child.Board[m.CapturedSquare()] = Empty
	}
	if m.IsPromotion() {
		if pc.IsWhite() {
			pc = WhiteKing
		} else {
			pc = BlackKing
		}
	}
	child.Board[m.To()] = pc
	child.LastMove = m
	child.ChainFrom = SquareNone
	if m.IsCapture() && child.HasCaptureFrom(m.To()) {
		child.ChainFrom = m.To()
	} else {
		child.WhiteMove = !p.WhiteMove
	}
	return true
}

// Chainable reports whether the last move left a capture chain open: the
// same side must move again, with the piece on ChainFrom.
func (p *Position) Chainable() bool {
	return p.ChainFrom != SquareNone
}

func containsMove(ml []Move, m Move) bool {
	for i := range ml {
		if ml[i] == m {
			return true
		}
	}
	return false
}

// Winner decides the position: a side with no pieces has lost, and a side
// to move with pieces but no legal move has lost as well.
func (p *Position) Winner() Side {
	var white, black = p.PieceCount(SideWhite), p.PieceCount(SideBlack)
	if white == 0 {
		return SideBlack
	}
	if black == 0 {
		return SideWhite
	}
	var buffer [MaxMoves]Move
	if len(p.GenerateMoves(buffer[:])) == 0 {
		if p.WhiteMove {
			return SideBlack
		}
		return SideWhite
	}
	return SideNone
}

func (p *Position) IsTerminal() bool {
	return p.Winner() != SideNone
}

func (p *Position) PieceCount(side Side) int {
	var count = 0
	for sq := 0; sq < 64; sq++ {
		if p.Board[sq].Side() == side {
			count++
		}
	}
	return count
}

func (p *Position) MenCount(side Side) int {
	var count = 0
	for sq := 0; sq < 64; sq++ {
		var pc = p.Board[sq]
		if pc.Side() == side && !pc.IsKing() {
			count++
		}
	}
	return count
}

func (p *Position) KingCount(side Side) int {
	var count = 0
	for sq := 0; sq < 64; sq++ {
		var pc = p.Board[sq]
		if pc.Side() == side && pc.IsKing() {
			count++
		}
	}
	return count
}

func (p *Position) AllPieceCount() int {
	return p.PieceCount(SideWhite) + p.PieceCount(SideBlack)
}
