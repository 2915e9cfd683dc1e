package xo

import "testing"

func TestMinimaxPrefersImmediateWin(t *testing.T) {
	// X can win right away at 2, or wander toward a slower forced win.
	// The depth discount must pick the immediate one.
	var b = mustBoard(t, "XX.OO....")
	if cell := BestMoveMinimax(b, X); cell != 2 {
		t.Errorf("cell = %d, want 2", cell)
	}
}

func TestMinimaxBlocksForcedLoss(t *testing.T) {
	var b = mustBoard(t, "XX.O.....")
	if cell := BestMoveMinimax(b, O); cell != 2 {
		t.Errorf("cell = %d, want 2", cell)
	}
}

func TestMinimaxTerminalBoard(t *testing.T) {
	if cell := BestMoveMinimax(mustBoard(t, "XOXXOOOXX"), X); cell != -1 {
		t.Errorf("cell = %d on a full board, want -1", cell)
	}
}

func TestMinimaxScoreSigns(t *testing.T) {
	// One move from an X win: the position scores near valueWin for X
	// and near -valueWin for O.
	var b = mustBoard(t, "XX.OO....")
	var forX = minimax(b, X, 0, true, -valueInfinity, valueInfinity)
	if forX < valueWin-16 {
		t.Errorf("score for X = %d, want a near-immediate win", forX)
	}
	var forO = minimax(b, O, 0, false, -valueInfinity, valueInfinity)
	if forO > -valueWin+16 {
		t.Errorf("score for O = %d, want a near-immediate loss", forO)
	}
}

func TestMinimaxDrawScoresBelowZero(t *testing.T) {
	// A perfectly played game is a draw; the settled-draw penalty keeps
	// the root score strictly negative but far from a loss.
	var score = minimax(Board{}, X, 0, true, -valueInfinity, valueInfinity)
	if score >= 0 || score <= -valueWin+16 {
		t.Errorf("empty-board score = %d, want a small negative draw value", score)
	}
}
