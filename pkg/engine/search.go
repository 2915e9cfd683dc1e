package engine

import (
	"github.com/kasidit/makhos/pkg/checkers"
)

const (
	stackSize     = 64
	maxHeight     = stackSize - 2
	valueWin      = 50000
	valueInfinity = valueWin + 1
)

// alphaBeta explores the tree below e.stack[height].position and returns a
// white-positive score. Minimax roles follow the side to move of each node
// rather than alternating by ply, because a multi-jump keeps the same side
// on the move across several nodes.
func (e *Engine) alphaBeta(alpha, beta, depth, height int) int {
	e.nodes++
	var position = &e.stack[height].position

	if winner := position.Winner(); winner != checkers.SideNone {
		// Depth-adjusted so that nearer wins outrank distant ones.
		if winner == checkers.SideWhite {
			return valueWin - height
		}
		return -valueWin + height
	}
	if depth <= 0 || height >= maxHeight {
		return e.evaluator.Evaluate(position)
	}

	var ml = position.GenerateMoves(e.stack[height].moveList[:])
	orderMoves(position, ml, e.stack[height].keys[:])
	var child = &e.stack[height+1].position

	if position.WhiteMove {
		var best = -valueInfinity
		for _, move := range ml {
			if !position.MakeMove(move, child) {
				continue
			}
			var score = e.alphaBeta(alpha, beta, nextDepth(depth, move), height+1)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	var best = valueInfinity
	for _, move := range ml {
		if !position.MakeMove(move, child) {
			continue
		}
		var score = e.alphaBeta(alpha, beta, nextDepth(depth, move), height+1)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// nextDepth spends one ply, except that captures extend the search by one
// so a capture sequence is never cut off mid-exchange by the horizon.
func nextDepth(depth int, move checkers.Move) int {
	if move.IsCapture() {
		return depth
	}
	return depth - 1
}
