package xo

const (
	valueWin      = 10000
	valueInfinity = valueWin + 1

	// A settled draw scores below any undecided continuation so the search
	// keeps hunting for a forced win instead of settling early.
	drawPenalty = -100

	// Breaks ties between equal minimax scores in favor of the move that
	// opens two threats at once.
	forkBonus = 50
)

// BestMoveMinimax exhaustively searches the full game tree and returns the
// best cell for ai, or -1 on a terminal board. The tree is at most nine
// plies, so no depth cutoff is needed. This is the correctness oracle for
// the cascade in BestMove: it never loses a drawn game and never misses a
// forced win.
func BestMoveMinimax(b Board, ai Piece) int {
	var bestCell = -1
	var bestScore = -valueInfinity
	for _, cell := range b.LegalMoves() {
		var child = b.With(cell, ai)
		var score = minimax(child, ai, 1, false, -valueInfinity, valueInfinity)
		if child.WinningLines(ai) >= 2 {
			score += forkBonus
		}
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}
	return bestCell
}

// minimax scores b from ai's point of view: wins reached sooner score
// higher, losses reached later score higher, draws carry a flat penalty
// deepened by distance.
func minimax(b Board, ai Piece, depth int, maximizing bool, alpha, beta int) int {
	if winner := b.Winner(); winner != Empty {
		if winner == ai {
			return valueWin - depth
		}
		return depth - valueWin
	}
	if b.IsFull() {
		return drawPenalty - depth
	}
	if maximizing {
		var best = -valueInfinity
		for _, cell := range b.LegalMoves() {
			var score = minimax(b.With(cell, ai), ai, depth+1, false, alpha, beta)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}
	var best = valueInfinity
	var opponent = ai.Opponent()
	for _, cell := range b.LegalMoves() {
		var score = minimax(b.With(cell, opponent), ai, depth+1, true, alpha, beta)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
