package arena

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kasidit/makhos/pkg/checkers"
	"github.com/kasidit/makhos/pkg/engine"
)

type Config struct {
	Games        int
	Concurrency  int
	MaxPlies     int
	OpeningPlies int
	Seed         int64
}

type Arena struct {
	Config     Config
	NewEngineA func() *engine.Engine
	NewEngineB func() *engine.Engine
	Logger     zerolog.Logger
}

// Score tallies the match from engine A's side.
type Score struct {
	WinsA, WinsB, Draws int
}

func (s Score) Points() float64 {
	return float64(s.WinsA) + 0.5*float64(s.Draws)
}

// Run plays the configured number of games between A and B, alternating
// colors, with the same opening played once per color pairing. Games run
// on Concurrency workers; each worker owns its two engine instances.
func (a *Arena) Run(ctx context.Context) (Score, error) {
	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		var rnd = rand.New(rand.NewSource(a.Config.Seed))
		for i := 0; i < a.Config.Games; i++ {
			var info = gameInfo{
				gameNumber: i + 1,
				opening:    randomOpening(rnd, a.Config.OpeningPlies),
				aIsWhite:   i%2 == 0,
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	var score Score
	var done = make(chan struct{})
	go func() {
		defer close(done)
		for res := range gameResults {
			score.add(res)
			a.Logger.Info().
				Int("game", res.gameNumber).
				Bool("aIsWhite", res.aIsWhite).
				Str("winner", sideName(res.winner)).
				Int("plies", res.plies).
				Str("comment", res.comment).
				Float64("pointsA", score.Points()).
				Msg("game finished")
		}
	}()

	var workers = errgroup.Group{}
	for i := 0; i < a.Config.Concurrency; i++ {
		workers.Go(func() error {
			var engineA = a.NewEngineA()
			var engineB = a.NewEngineB()
			for info := range gameInfos {
				var white, black = engineA, engineB
				if !info.aIsWhite {
					white, black = engineB, engineA
				}
				res, err := playGame(white, black, info, a.Config.MaxPlies)
				if err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case gameResults <- res:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(gameResults)
		return workers.Wait()
	})

	if err := g.Wait(); err != nil {
		return Score{}, err
	}
	<-done
	return score, nil
}

func (s *Score) add(res gameResult) {
	switch {
	case res.winner == checkers.SideNone:
		s.Draws++
	case (res.winner == checkers.SideWhite) == res.aIsWhite:
		s.WinsA++
	default:
		s.WinsB++
	}
}

func sideName(side checkers.Side) string {
	switch side {
	case checkers.SideWhite:
		return "white"
	case checkers.SideBlack:
		return "black"
	}
	return "none"
}
