package xo

import "testing"

// mustBoard builds a board from a nine-character string in cell order,
// 'X', 'O' or '.' per cell.
func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	if len(s) != 9 {
		t.Fatalf("board string %q has %d cells, want 9", s, len(s))
	}
	var b Board
	for i := 0; i < 9; i++ {
		switch s[i] {
		case 'X':
			b[i] = X
		case 'O':
			b[i] = O
		case '.':
		default:
			t.Fatalf("bad cell %q in %q", s[i], s)
		}
	}
	return b
}

func TestBestMoveCascade(t *testing.T) {
	var tests = []struct {
		name  string
		board string
		ai    Piece
		cell  int
		tag   string
	}{
		// Completing a-b-? beats everything else.
		{name: "win", board: "XX.O.....", ai: X, cell: 2, tag: "win"},
		// The same threat seen from the other side is a block.
		{name: "block", board: "XX.O.....", ai: O, cell: 2, tag: "block"},
		{name: "block from center", board: "XX..O....", ai: O, cell: 2, tag: "block"},
		// Win outranks block when both are on the table.
		{name: "win over block", board: "XX.OO....", ai: X, cell: 2, tag: "win"},
		// Cell 6 opens the 0-3-6 and 2-4-6 threats at once; the other
		// fork at cell 3 is edge-anchored and ranks below it.
		{name: "fork", board: "OX..O...X", ai: O, cell: 6, tag: "fork"},
		// Opponent on both ends of a diagonal: the edge reply defuses
		// the corner fork.
		{name: "anti-fork edge", board: "X...O...X", ai: O, cell: 1, tag: "anti-fork-edge"},
		{name: "center", board: ".........", ai: X, cell: 4, tag: "center"},
		// Center is gone and the opponent sits on corner 0.
		{name: "opposite corner", board: "X...O....", ai: O, cell: 8, tag: "opposite-corner"},
	}
	for _, test := range tests {
		var cell, decisions = BestMove(mustBoard(t, test.board), test.ai)
		if cell != test.cell {
			t.Errorf("%v: cell = %d, want %d", test.name, cell, test.cell)
			continue
		}
		var found = false
		for _, d := range decisions {
			if d.Cell == cell && d.Tag == test.tag {
				found = true
			}
		}
		if !found {
			t.Errorf("%v: no decision with tag %q for cell %d: %v",
				test.name, test.tag, cell, decisions)
		}
	}
}

func TestBestMoveTerminalBoard(t *testing.T) {
	var won = mustBoard(t, "XXXOO....")
	if cell, _ := BestMove(won, O); cell != -1 {
		t.Errorf("cell = %d on a decided board, want -1", cell)
	}
	var full = mustBoard(t, "XOXXOOOXX")
	if cell, _ := BestMove(full, X); cell != -1 {
		t.Errorf("cell = %d on a full board, want -1", cell)
	}
}

func TestBestMoveDecisionFlags(t *testing.T) {
	var cell, decisions = BestMove(mustBoard(t, "XX.O....."), X)
	if cell != 2 || len(decisions) != 1 {
		t.Fatalf("cell = %d, decisions = %v", cell, decisions)
	}
	if !decisions[0].Winning || decisions[0].Blocking {
		t.Errorf("decision flags = %+v, want winning and not blocking", decisions[0])
	}
}

func TestPreventForkKnightOpening(t *testing.T) {
	// X on a corner and the far edge threatens the classic corner fork;
	// only replies that keep X under two simultaneous threats are safe,
	// and among those the cascade prefers a corner.
	var cell, _ = BestMove(mustBoard(t, "X...OX..."), O)
	var child = mustBoard(t, "X...OX...").With(cell, O)
	var worst = 0
	for _, reply := range child.LegalMoves() {
		worst = max(worst, child.With(reply, X).WinningLines(X))
	}
	if worst >= 2 {
		t.Errorf("cell %d still concedes a fork to X", cell)
	}
}

func TestBestOppositeCornerWeighting(t *testing.T) {
	// Both opposite corners are free; with 5 occupied, corner 6 keeps
	// three open neighbors against two for corner 8.
	var b = mustBoard(t, "X.X..O...")
	var cell, _ = bestOppositeCorner(b, X)
	if cell != 6 {
		t.Errorf("cell = %d, want 6", cell)
	}
}

func TestBestOpenCellSkipsSpoiledLines(t *testing.T) {
	// With X on edge 1 the top row is spoiled; corners 6 and 8 keep
	// three clean lines each while 0 and 2 keep two.
	var b = mustBoard(t, ".X..O....")
	var cell, decisions = bestOpenCell(b, O, corners[:], "corner")
	if cell != 6 {
		t.Errorf("cell = %d, want 6", cell)
	}
	for _, d := range decisions {
		if d.Tag != "corner" {
			t.Errorf("decision tag = %q, want corner", d.Tag)
		}
	}
}

// sweep plays every opponent line against BestMove and fails the test if
// the engine ever ends up lost.
func sweep(t *testing.T, b Board, ai, toMove Piece) {
	if winner := b.Winner(); winner != Empty {
		if winner != ai {
			t.Fatalf("engine lost as %v:\n%v", ai, b)
		}
		return
	}
	if b.IsFull() {
		return
	}
	if toMove == ai {
		var cell, _ = BestMove(b, ai)
		if cell < 0 {
			t.Fatalf("no move on a live board:\n%v", b)
		}
		sweep(t, b.With(cell, ai), ai, ai.Opponent())
		return
	}
	for _, cell := range b.LegalMoves() {
		sweep(t, b.With(cell, toMove), ai, ai)
	}
}

func TestBestMoveNeverLoses(t *testing.T) {
	// First as X against every O line, then as O against every X line.
	sweep(t, Board{}, X, X)
	sweep(t, Board{}, O, X)
}

func TestSelfPlayDraws(t *testing.T) {
	var b Board
	var toMove = X
	for !b.IsTerminal() {
		var cell, _ = BestMove(b, toMove)
		if cell < 0 {
			t.Fatalf("no move on a live board:\n%v", b)
		}
		b = b.With(cell, toMove)
		toMove = toMove.Opponent()
	}
	if winner := b.Winner(); winner != Empty {
		t.Errorf("self play produced a winner %v:\n%v", winner, b)
	}
	if !b.IsFull() {
		t.Errorf("self play ended before the board filled:\n%v", b)
	}
}
