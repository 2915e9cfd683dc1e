package xo

import "strings"

type Piece int8

const (
	Empty Piece = iota
	X
	O
)

// Board is the 3x3 grid in row-major order, cell 0 top-left.
type Board [9]Piece

// The eight winning triples: rows, columns, diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

const Center = 4

var corners = [4]int{0, 2, 6, 8}
var edges = [4]int{1, 3, 5, 7}

// oppositeCorner maps each corner to the diagonally opposite one.
var oppositeCorner = map[int]int{0: 8, 8: 0, 2: 6, 6: 2}

func (pc Piece) Opponent() Piece {
	switch pc {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

func (pc Piece) String() string {
	switch pc {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

func (b Board) Winner() Piece {
	for _, line := range winLines {
		var pc = b[line[0]]
		if pc != Empty && pc == b[line[1]] && pc == b[line[2]] {
			return pc
		}
	}
	return Empty
}

func (b Board) IsFull() bool {
	for _, pc := range b {
		if pc == Empty {
			return false
		}
	}
	return true
}

func (b Board) IsTerminal() bool {
	return b.IsFull() || b.Winner() != Empty
}

// LegalMoves lists the empty cells in increasing index order.
func (b Board) LegalMoves() []int {
	var moves []int
	for cell, pc := range b {
		if pc == Empty {
			moves = append(moves, cell)
		}
	}
	return moves
}

// With returns a copy of b with pc placed on cell.
func (b Board) With(cell int, pc Piece) Board {
	b[cell] = pc
	return b
}

// WinningLines counts the lines where pc holds two cells and the third is
// empty, i.e. the simultaneous one-move-from-win threats pc has.
func (b Board) WinningLines(pc Piece) int {
	var count = 0
	for _, line := range winLines {
		var own, empty = 0, 0
		for _, cell := range line {
			switch b[cell] {
			case pc:
				own++
			case Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			count++
		}
	}
	return count
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(b[3*row+col].String())
		}
		if row < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
