package arena

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kasidit/makhos/pkg/checkers"
	"github.com/kasidit/makhos/pkg/engine"
	material "github.com/kasidit/makhos/pkg/eval/material"
)

func newShallowEngine() *engine.Engine {
	var e = engine.NewEngine(material.NewEvaluationService())
	e.Options.Depth = 2
	return e
}

func TestRunTalliesAllGames(t *testing.T) {
	var a = &Arena{
		Config: Config{
			Games:        4,
			Concurrency:  2,
			MaxPlies:     60,
			OpeningPlies: 2,
			Seed:         1,
		},
		NewEngineA: newShallowEngine,
		NewEngineB: newShallowEngine,
		Logger:     zerolog.Nop(),
	}
	var score, err = a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := score.WinsA + score.WinsB + score.Draws; got != 4 {
		t.Errorf("tallied %d games, want 4: %+v", got, score)
	}
	if points := score.Points(); points < 0 || points > 4 {
		t.Errorf("points = %v, out of range for a 4-game match", points)
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var a = &Arena{
		Config:     Config{Games: 100, Concurrency: 1, MaxPlies: 60, Seed: 1},
		NewEngineA: newShallowEngine,
		NewEngineB: newShallowEngine,
		Logger:     zerolog.Nop(),
	}
	if _, err := a.Run(ctx); err == nil {
		t.Error("expected a context error from a cancelled run")
	}
}

func TestPlayGameAdjudicatesMoveCap(t *testing.T) {
	var res, err = playGame(newShallowEngine(), newShallowEngine(),
		gameInfo{gameNumber: 1, opening: checkers.NewPosition(), aIsWhite: true}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.plies > 10 {
		t.Errorf("game ran %d plies past the cap", res.plies)
	}
	if res.comment != "decided" && res.comment != "move cap" {
		t.Errorf("comment = %q", res.comment)
	}
	if res.comment == "move cap" && res.winner != checkers.SideNone {
		t.Errorf("capped game has winner %v, want none", res.winner)
	}
}

func TestRandomOpeningNeverTerminal(t *testing.T) {
	var rnd = rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		var position = randomOpening(rnd, 8)
		if position.IsTerminal() {
			t.Fatalf("opening %d is terminal:\n%v", i, &position)
		}
	}
}

func TestScoreAdd(t *testing.T) {
	var s Score
	s.add(gameResult{gameInfo: gameInfo{aIsWhite: true}, winner: checkers.SideWhite})
	s.add(gameResult{gameInfo: gameInfo{aIsWhite: false}, winner: checkers.SideWhite})
	s.add(gameResult{gameInfo: gameInfo{aIsWhite: true}, winner: checkers.SideNone})
	if s.WinsA != 1 || s.WinsB != 1 || s.Draws != 1 {
		t.Errorf("score = %+v, want one of each", s)
	}
	if got := s.Points(); got != 1.5 {
		t.Errorf("points = %v, want 1.5", got)
	}
}
