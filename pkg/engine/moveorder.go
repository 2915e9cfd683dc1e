package engine

import (
	"github.com/kasidit/makhos/pkg/checkers"
)

// orderMoves sorts ml so that the moves most likely to be best come first,
// tightening the alpha-beta window early: captures before quiet moves,
// king moves before man moves, more-advancing destinations on ties.
func orderMoves(p *checkers.Position, ml []checkers.Move, keys []int) {
	for i, move := range ml {
		keys[i] = moveKey(p, move)
	}
	// insertion sort, descending by key
	for i := 1; i < len(ml); i++ {
		var move, key = ml[i], keys[i]
		var j = i - 1
		for ; j >= 0 && keys[j] < key; j-- {
			ml[j+1], keys[j+1] = ml[j], keys[j]
		}
		ml[j+1], keys[j+1] = move, key
	}
}

func moveKey(p *checkers.Position, move checkers.Move) int {
	var key = advancement(p, move)
	if move.IsCapture() {
		key += 1 << 16
	}
	if move.IsPromotion() {
		key += 1 << 12
	}
	if p.Board[move.From()].IsKing() {
		key += 1 << 8
	}
	return key
}

// advancement is the rank progress toward promotion the move gains.
func advancement(p *checkers.Position, move checkers.Move) int {
	if p.Board[move.From()].IsWhite() {
		return checkers.Rank(move.To()) - checkers.Rank(move.From())
	}
	return checkers.Rank(move.From()) - checkers.Rank(move.To())
}
