package arena

import (
	"fmt"
	"math/rand"

	"github.com/kasidit/makhos/pkg/checkers"
	"github.com/kasidit/makhos/pkg/engine"
)

type gameInfo struct {
	gameNumber int
	opening    checkers.Position
	aIsWhite   bool
}

type gameResult struct {
	gameInfo
	winner  checkers.Side
	plies   int
	comment string
}

// playGame runs one game to the end. The core defines no draws; the arena
// adjudicates one after maxPlies so matches always terminate.
func playGame(engineWhite, engineBlack *engine.Engine, info gameInfo, maxPlies int) (gameResult, error) {
	var position = info.opening
	var child checkers.Position

	for plies := 0; ; plies++ {
		if winner := position.Winner(); winner != checkers.SideNone {
			return gameResult{gameInfo: info, winner: winner, plies: plies, comment: "decided"}, nil
		}
		if plies >= maxPlies {
			return gameResult{gameInfo: info, winner: checkers.SideNone, plies: plies, comment: "move cap"}, nil
		}

		var eng = engineBlack
		if position.WhiteMove {
			eng = engineWhite
		}
		var move, _ = eng.BestMove(&position)
		if move == checkers.MoveEmpty {
			return gameResult{}, fmt.Errorf("arena: engine returned no move in game %d", info.gameNumber)
		}
		if !position.MakeMove(move, &child) {
			return gameResult{}, fmt.Errorf("arena: illegal move %v in game %d", move, info.gameNumber)
		}
		position = child
	}
}

// randomOpening plays a few uniformly random plies from the start so the
// two engines do not repeat a single game line all match long. It never
// returns a terminal position.
func randomOpening(rnd *rand.Rand, plies int) checkers.Position {
	var position = checkers.NewPosition()
	var child checkers.Position
	var buffer [checkers.MaxMoves]checkers.Move
	for i := 0; i < plies; i++ {
		var ml = position.GenerateMoves(buffer[:])
		if len(ml) == 0 {
			break
		}
		if !position.MakeMove(ml[rnd.Intn(len(ml))], &child) || child.IsTerminal() {
			break
		}
		position = child
	}
	return position
}
