package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/kasidit/makhos/pkg/checkers"
	"github.com/kasidit/makhos/pkg/engine"
)

func playCheckers(eng *engine.Engine, humanIsWhite, verbose bool, input *bufio.Scanner, logger zerolog.Logger) error {
	var out = termenv.NewOutput(os.Stdout)
	var position = checkers.NewPosition()
	var child checkers.Position

	for {
		printCheckersBoard(out, &position)
		if winner := position.Winner(); winner != checkers.SideNone {
			if (winner == checkers.SideWhite) == humanIsWhite {
				fmt.Println("you win")
			} else {
				fmt.Println("engine wins")
			}
			return nil
		}

		if position.WhiteMove == humanIsWhite {
			move, err := readCheckersMove(&position, input)
			if err != nil {
				return err
			}
			position.MakeMove(move, &child)
			position = child
			continue
		}

		var move, info = eng.BestMove(&position)
		logger.Info().
			Str("move", move.String()).
			Int("score", info.Score).
			Int("depth", info.Depth).
			Int64("nodes", info.Nodes).
			Dur("time", info.Time).
			Msg("engine move")
		if verbose {
			for _, c := range info.Candidates {
				logger.Info().
					Str("move", c.Move.String()).
					Int("score", c.Score).
					Bool("capture", c.Capture).
					Bool("promotion", c.Promotion).
					Msg("candidate")
			}
		}
		if !position.MakeMove(move, &child) {
			return fmt.Errorf("engine played illegal move %v", move)
		}
		position = child
	}
}

func readCheckersMove(p *checkers.Position, input *bufio.Scanner) (checkers.Move, error) {
	for {
		if p.Chainable() {
			fmt.Printf("continue the jump from %v: ", checkers.SquareName(p.ChainFrom))
		} else {
			fmt.Print("your move (e.g. b3-c4 or c3xe5): ")
		}
		if !input.Scan() {
			return checkers.MoveEmpty, fmt.Errorf("input closed")
		}
		var text = strings.TrimSpace(input.Text())
		var parsed = checkers.ParseMove(text)
		if parsed == checkers.MoveEmpty {
			fmt.Println("cannot parse that; use square-square")
			continue
		}
		var move = p.FindMove(parsed.From(), parsed.To())
		if move == checkers.MoveEmpty {
			fmt.Println("not a legal move here (captures are forced)")
			continue
		}
		return move, nil
	}
}

func printCheckersBoard(out *termenv.Output, p *checkers.Position) {
	var white = out.String("").Foreground(termenv.ANSIBrightCyan)
	var black = out.String("").Foreground(termenv.ANSIBrightRed)
	var dim = out.String("").Faint()

	for rank := checkers.Rank8; rank >= checkers.Rank1; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := checkers.FileA; file <= checkers.FileH; file++ {
			var sq = checkers.MakeSquare(file, rank)
			var cell string
			switch p.Board[sq] {
			case checkers.WhiteMan:
				cell = white.Styled("w")
			case checkers.WhiteKing:
				cell = white.Styled("W")
			case checkers.BlackMan:
				cell = black.Styled("b")
			case checkers.BlackKing:
				cell = black.Styled("B")
			default:
				if checkers.IsPlaySquare(sq) {
					cell = dim.Styled(".")
				} else {
					cell = " "
				}
			}
			fmt.Printf("%s ", cell)
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}
