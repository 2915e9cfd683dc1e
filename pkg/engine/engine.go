package engine

import (
	"time"

	"github.com/kasidit/makhos/pkg/checkers"
)

type Evaluator interface {
	Evaluate(p *checkers.Position) int
}

type Options struct {
	Depth        int
	CaptureBonus int
}

func NewOptions() Options {
	return Options{
		Depth:        7,
		CaptureBonus: 1200,
	}
}

type Engine struct {
	Options   Options
	evaluator Evaluator
	nodes     int64
	stack     [stackSize]frame
}

type frame struct {
	position checkers.Position
	moveList [checkers.MaxMoves]checkers.Move
	keys     [checkers.MaxMoves]int
}

// MoveEvaluation is the per-candidate record of one BestMove decision,
// returned for observability; the decision itself is already made.
type MoveEvaluation struct {
	Move      checkers.Move
	Score     int
	Capture   bool
	Promotion bool
}

type SearchInfo struct {
	Depth      int
	Score      int
	Nodes      int64
	Time       time.Duration
	Candidates []MoveEvaluation
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{
		Options:   NewOptions(),
		evaluator: evaluator,
	}
}

// BestMove returns the strongest move for the side to move in p, with the
// search diagnostics. p itself is never mutated. On a terminal position it
// returns MoveEmpty; callers are expected to have checked IsTerminal.
//
// Scores are from the mover's point of view. Capturing root moves carry a
// flat bonus; ties prefer capture over non-capture, then promotion over
// non-promotion, then the first candidate found.
func (e *Engine) BestMove(p *checkers.Position) (checkers.Move, SearchInfo) {
	var start = time.Now()
	e.nodes = 0

	var depth = e.effectiveDepth(p)
	var root = &e.stack[0]
	root.position = *p

	var ml = root.position.GenerateMoves(root.moveList[:])
	orderMoves(&root.position, ml, root.keys[:])

	var whiteToMove = root.position.WhiteMove
	var bestMove = checkers.MoveEmpty
	var bestScore = -valueInfinity
	var candidates = make([]MoveEvaluation, 0, len(ml))
	var child = &e.stack[1].position

	for _, move := range ml {
		if !root.position.MakeMove(move, child) {
			continue
		}
		var score = e.alphaBeta(-valueInfinity, valueInfinity, nextDepth(depth, move), 1)
		if !whiteToMove {
			score = -score
		}
		if move.IsCapture() {
			score += e.Options.CaptureBonus
		}
		candidates = append(candidates, MoveEvaluation{
			Move:      move,
			Score:     score,
			Capture:   move.IsCapture(),
			Promotion: move.IsPromotion(),
		})
		if better(move, score, bestMove, bestScore) {
			bestMove = move
			bestScore = score
		}
	}

	return bestMove, SearchInfo{
		Depth:      depth,
		Score:      bestScore,
		Nodes:      e.nodes,
		Time:       time.Since(start),
		Candidates: candidates,
	}
}

func better(move checkers.Move, score int, bestMove checkers.Move, bestScore int) bool {
	if bestMove == checkers.MoveEmpty {
		return true
	}
	if score != bestScore {
		return score > bestScore
	}
	if move.IsCapture() != bestMove.IsCapture() {
		return move.IsCapture()
	}
	if move.IsPromotion() != bestMove.IsPromotion() {
		return move.IsPromotion()
	}
	return false
}

// effectiveDepth deepens the nominal depth as material comes off the
// board: the endgame tree is narrow enough to afford it, and the horizon
// is where won endings get thrown away.
func (e *Engine) effectiveDepth(p *checkers.Position) int {
	var depth = e.Options.Depth
	var pieces = p.AllPieceCount()
	if pieces <= 8 {
		return max(depth, 10)
	}
	if pieces <= 12 {
		return max(depth, 9)
	}
	return depth
}
