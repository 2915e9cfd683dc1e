package eval

import (
	"github.com/kasidit/makhos/pkg/checkers"
)

const (
	valueTerminal = 50000

	manValue  = 100
	kingValue = 500

	// Aggregate material differences on top of the per-piece values; the
	// engine fights much harder for the last men this way.
	menDiffWeight   = 250
	kingsDiffWeight = 400

	// White is the engine's side, so its placement is weighted higher.
	centralityWhite = 12
	centralityBlack = 8

	edgePenalty      = 10
	backRankGuard    = 15
	advancePerRank   = 6
	mobilityWeight   = 3
	threatPenalty    = 30
	protectionBonus  = 10
	captureOppWeight = 100

	// Extra promotion push once eight or fewer pieces remain.
	endgameAdvance = 10
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate is a weighted feature sum over material, placement, mobility
// and tactics, white-positive. A side with no pieces is an absolute
// terminal and overrides the sum.
func (e *EvaluationService) Evaluate(p *checkers.Position) int {
	var whitePieces = p.PieceCount(checkers.SideWhite)
	var blackPieces = p.PieceCount(checkers.SideBlack)
	if blackPieces == 0 {
		return valueTerminal
	}
	if whitePieces == 0 {
		return -valueTerminal
	}

	var endgame = whitePieces+blackPieces <= 8
	var score = 0

	for sq := 0; sq < 64; sq++ {
		var pc = p.Board[sq]
		if pc == checkers.Empty {
			continue
		}
		var sign, centrality = 1, centralityWhite
		if pc.IsBlack() {
			sign, centrality = -1, centralityBlack
		}

		if pc.IsKing() {
			score += sign * kingValue
		} else {
			score += sign * manValue
			score += sign * advancePerRank * rankProgress(pc, sq)
			if endgame {
				score += sign * endgameAdvance * rankProgress(pc, sq)
			}
			if checkers.Rank(sq) == backRank(pc) {
				score += sign * backRankGuard
			}
		}

		score += sign * centrality * (14 - centerDistance(sq))
		if onEdge(sq) {
			score -= sign * edgePenalty
		}
		if p.IsThreatened(sq) {
			score -= sign * threatPenalty
		}
		score += sign * protectionBonus * friendlyNeighbors(p, sq)
	}

	score += menDiffWeight *
		(p.MenCount(checkers.SideWhite) - p.MenCount(checkers.SideBlack))
	score += kingsDiffWeight *
		(p.KingCount(checkers.SideWhite) - p.KingCount(checkers.SideBlack))

	score += mobilityWeight *
		(p.MobilityCount(checkers.SideWhite) - p.MobilityCount(checkers.SideBlack))
	score += captureOppWeight *
		(p.CaptureCount(checkers.SideWhite) - p.CaptureCount(checkers.SideBlack))

	return score
}

// centerDistance is the doubled manhattan distance from the board center,
// 2 for the four central squares up to 14 in the corners.
func centerDistance(sq int) int {
	var dr = 2*checkers.Rank(sq) - 7
	if dr < 0 {
		dr = -dr
	}
	var df = 2*checkers.File(sq) - 7
	if df < 0 {
		df = -df
	}
	return dr + df
}

// rankProgress is how far a man has advanced toward promotion, 0..7.
func rankProgress(pc checkers.Piece, sq int) int {
	if pc.IsWhite() {
		return checkers.Rank(sq)
	}
	return checkers.Rank8 - checkers.Rank(sq)
}

func backRank(pc checkers.Piece) int {
	if pc.IsWhite() {
		return checkers.Rank1
	}
	return checkers.Rank8
}

func onEdge(sq int) bool {
	var f = checkers.File(sq)
	var r = checkers.Rank(sq)
	return f == checkers.FileA || f == checkers.FileH ||
		r == checkers.Rank1 || r == checkers.Rank8
}

func friendlyNeighbors(p *checkers.Position, sq int) int {
	var pc = p.Board[sq]
	var r, f = checkers.Rank(sq), checkers.File(sq)
	var count = 0
	for _, d := range [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}} {
		var nr, nf = r + d[0], f + d[1]
		if nr < checkers.Rank1 || nr > checkers.Rank8 ||
			nf < checkers.FileA || nf > checkers.FileH {
			continue
		}
		if p.Board[checkers.MakeSquare(nf, nr)].Side() == pc.Side() {
			count++
		}
	}
	return count
}
