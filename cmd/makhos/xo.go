package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/kasidit/makhos/pkg/xo"
)

// playXO runs tic-tac-toe on a 1-9 keypad layout. X always moves first.
func playXO(humanIsX, verbose bool, input *bufio.Scanner, logger zerolog.Logger) error {
	var out = termenv.NewOutput(os.Stdout)
	var board xo.Board
	var human, ai = xo.X, xo.O
	if !humanIsX {
		human, ai = xo.O, xo.X
	}
	var turn = xo.X

	for {
		printXOBoard(out, board)
		if winner := board.Winner(); winner != xo.Empty {
			if winner == human {
				fmt.Println("you win")
			} else {
				fmt.Println("engine wins")
			}
			return nil
		}
		if board.IsFull() {
			fmt.Println("draw")
			return nil
		}

		if turn == human {
			cell, err := readXOCell(board, input)
			if err != nil {
				return err
			}
			board = board.With(cell, human)
		} else {
			var cell, decisions = xo.BestMove(board, ai)
			logger.Info().Int("cell", cell+1).Msg("engine move")
			if verbose {
				for _, d := range decisions {
					logger.Info().
						Int("cell", d.Cell+1).
						Str("tag", d.Tag).
						Int("score", d.Score).
						Msg("candidate")
				}
			}
			board = board.With(cell, ai)
		}
		turn = turn.Opponent()
	}
}

func readXOCell(board xo.Board, input *bufio.Scanner) (int, error) {
	for {
		fmt.Print("your cell (1-9, left to right, top to bottom): ")
		if !input.Scan() {
			return 0, fmt.Errorf("input closed")
		}
		var n, err = strconv.Atoi(strings.TrimSpace(input.Text()))
		if err != nil || n < 1 || n > 9 {
			fmt.Println("enter a number between 1 and 9")
			continue
		}
		if board[n-1] != xo.Empty {
			fmt.Println("that cell is taken")
			continue
		}
		return n - 1, nil
	}
}

func printXOBoard(out *termenv.Output, board xo.Board) {
	var x = out.String("").Foreground(termenv.ANSIBrightCyan)
	var o = out.String("").Foreground(termenv.ANSIBrightRed)
	var dim = out.String("").Faint()

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var cell = 3*row + col
			switch board[cell] {
			case xo.X:
				fmt.Print(x.Styled("X"))
			case xo.O:
				fmt.Print(o.Styled("O"))
			default:
				fmt.Print(dim.Styled(strconv.Itoa(cell + 1)))
			}
			if col < 2 {
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}
