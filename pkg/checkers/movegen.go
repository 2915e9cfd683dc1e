package checkers

// Diagonal directions as (rank delta, file delta). The first two point up
// the board (white's forward), the last two down (black's forward).
var dirs = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

func pieceDirs(pc Piece) [][2]int {
	switch pc {
	case WhiteMan:
		return dirs[0:2]
	case BlackMan:
		return dirs[2:4]
	case WhiteKing, BlackKing:
		return dirs[0:4]
	}
	return nil
}

func promotionRank(pc Piece) int {
	if pc.IsWhite() {
		return Rank8
	}
	return Rank1
}

// GenerateMoves fills ml with the legal moves for the side to move and
// returns the filled prefix. Captures are forced: if any piece of the
// moving side can jump, only jumps are generated. In the middle of a
// multi-jump only the chaining piece moves.
func (p *Position) GenerateMoves(ml []Move) []Move {
	var count = 0
	if p.ChainFrom != SquareNone {
		count = p.genCaptures(ml, p.ChainFrom, count)
		return ml[:count]
	}
	for sq := 0; sq < 64; sq++ {
		if p.sideToMoveOwns(sq) {
			count = p.genCaptures(ml, sq, count)
		}
	}
	if count > 0 {
		return ml[:count]
	}
	for sq := 0; sq < 64; sq++ {
		if p.sideToMoveOwns(sq) {
			count = p.genSteps(ml, sq, count)
		}
	}
	return ml[:count]
}

func (p *Position) sideToMoveOwns(sq int) bool {
	var pc = p.Board[sq]
	if p.WhiteMove {
		return pc.IsWhite()
	}
	return pc.IsBlack()
}

func (p *Position) genSteps(ml []Move, sq, count int) int {
	var pc = p.Board[sq]
	var r, f = Rank(sq), File(sq)
	for _, d := range pieceDirs(pc) {
		var tr, tf = r + d[0], f + d[1]
		if tr < Rank1 || tr > Rank8 || tf < FileA || tf > FileH {
			continue
		}
		var to = MakeSquare(tf, tr)
		if p.Board[to] != Empty {
			continue
		}
		var promo = !pc.IsKing() && tr == promotionRank(pc)
		ml[count] = makeMove(sq, to, false, promo)
		count++
	}
	return count
}

func (p *Position) genCaptures(ml []Move, sq, count int) int {
	var pc = p.Board[sq]
	var r, f = Rank(sq), File(sq)
	for _, d := range pieceDirs(pc) {
		var mr, mf = r + d[0], f + d[1]
		var tr, tf = r + 2*d[0], f + 2*d[1]
		if tr < Rank1 || tr > Rank8 || tf < FileA || tf > FileH {
			continue
		}
		var mid = p.Board[MakeSquare(mf, mr)]
		if mid == Empty || mid.Side() == pc.Side() {
			continue
		}
		var to = MakeSquare(tf, tr)
		if p.Board[to] != Empty {
			continue
		}
		var promo = !pc.IsKing() && tr == promotionRank(pc)
		ml[count] = makeMove(sq, to, true, promo)
		count++
	}
	return count
}

// HasCaptureFrom reports whether the piece on sq can jump right now.
func (p *Position) HasCaptureFrom(sq int) bool {
	var buffer [4]Move
	return p.genCaptures(buffer[:], sq, 0) > 0
}

// SideHasCapture reports whether any piece of side can jump.
func (p *Position) SideHasCapture(side Side) bool {
	for sq := 0; sq < 64; sq++ {
		if p.Board[sq].Side() == side && p.HasCaptureFrom(sq) {
			return true
		}
	}
	return false
}

// CaptureCount counts the capture moves available to side's pieces,
// regardless of whose turn it is.
func (p *Position) CaptureCount(side Side) int {
	var buffer [4]Move
	var count = 0
	for sq := 0; sq < 64; sq++ {
		if p.Board[sq].Side() == side {
			count += p.genCaptures(buffer[:], sq, 0)
		}
	}
	return count
}

// MobilityCount counts side's legal moves as if it were side's turn, with
// the forced-capture restriction applied.
func (p *Position) MobilityCount(side Side) int {
	var q = *p
	q.WhiteMove = side == SideWhite
	q.ChainFrom = SquareNone
	var buffer [MaxMoves]Move
	return len(q.GenerateMoves(buffer[:]))
}

// IsThreatened reports whether the piece on sq could be jumped by some
// enemy piece if that side moved now.
func (p *Position) IsThreatened(sq int) bool {
	var pc = p.Board[sq]
	if pc == Empty {
		return false
	}
	var r, f = Rank(sq), File(sq)
	for _, d := range dirs {
		var ar, af = r + d[0], f + d[1]
		var lr, lf = r - d[0], f - d[1]
		if ar < Rank1 || ar > Rank8 || af < FileA || af > FileH ||
			lr < Rank1 || lr > Rank8 || lf < FileA || lf > FileH {
			continue
		}
		var attacker = p.Board[MakeSquare(af, ar)]
		if attacker == Empty || attacker.Side() == pc.Side() {
			continue
		}
		if p.Board[MakeSquare(lf, lr)] != Empty {
			continue
		}
		// The jump direction for the attacker is -d; men only jump forward.
		if attacker.IsKing() ||
			(attacker.IsWhite() && d[0] == -1) ||
			(attacker.IsBlack() && d[0] == 1) {
			return true
		}
	}
	return false
}

// FindMove looks up the legal move between two squares, recovering the
// capture and promotion flags the caller cannot know from coordinates.
func (p *Position) FindMove(from, to int) Move {
	var buffer [MaxMoves]Move
	for _, m := range p.GenerateMoves(buffer[:]) {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	return MoveEmpty
}
