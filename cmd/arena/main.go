package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/kasidit/makhos/internal/arena"
	"github.com/kasidit/makhos/internal/evalbuilder"
	"github.com/kasidit/makhos/pkg/engine"
)

type config struct {
	games        int
	concurrency  int
	maxPlies     int
	openingPlies int
	seed         int64
	evalA        string
	evalB        string
	weightsA     string
	weightsB     string
	depthA       int
	depthB       int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.games, "games", 100, "number of games to play")
	flag.IntVar(&cfg.concurrency, "concurrency", 4, "parallel games")
	flag.IntVar(&cfg.maxPlies, "maxplies", 200, "plies before a game is adjudicated drawn")
	flag.IntVar(&cfg.openingPlies, "openingplies", 4, "random plies to diversify openings")
	flag.Int64Var(&cfg.seed, "seed", 1, "opening randomization seed")
	flag.StringVar(&cfg.evalA, "evala", "linear", "evaluator for engine A")
	flag.StringVar(&cfg.evalB, "evalb", "material", "evaluator for engine B")
	flag.StringVar(&cfg.weightsA, "weightsa", "", "neural weights file for engine A")
	flag.StringVar(&cfg.weightsB, "weightsb", "", "neural weights file for engine B")
	flag.IntVar(&cfg.depthA, "deptha", 7, "search depth for engine A")
	flag.IntVar(&cfg.depthB, "depthb", 7, "search depth for engine B")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("arena failed")
	}
}

func run(cfg config, logger zerolog.Logger) error {
	// Fail on bad flags before the workers start.
	if _, err := evalbuilder.Build(cfg.evalA, cfg.weightsA); err != nil {
		return err
	}
	if _, err := evalbuilder.Build(cfg.evalB, cfg.weightsB); err != nil {
		return err
	}

	logger.Info().
		Int("games", cfg.games).
		Int("concurrency", cfg.concurrency).
		Str("evalA", cfg.evalA).
		Str("evalB", cfg.evalB).
		Int("depthA", cfg.depthA).
		Int("depthB", cfg.depthB).
		Msg("arena started")

	var a = &arena.Arena{
		Config: arena.Config{
			Games:        cfg.games,
			Concurrency:  cfg.concurrency,
			MaxPlies:     cfg.maxPlies,
			OpeningPlies: cfg.openingPlies,
			Seed:         cfg.seed,
		},
		NewEngineA: newEngineBuilder(cfg.evalA, cfg.weightsA, cfg.depthA),
		NewEngineB: newEngineBuilder(cfg.evalB, cfg.weightsB, cfg.depthB),
		Logger:     logger,
	}

	score, err := a.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info().
		Int("winsA", score.WinsA).
		Int("winsB", score.WinsB).
		Int("draws", score.Draws).
		Float64("pointsA", score.Points()).
		Msg("arena finished")
	return nil
}

func newEngineBuilder(eval, weights string, depth int) func() *engine.Engine {
	return func() *engine.Engine {
		evaluator, err := evalbuilder.Build(eval, weights)
		if err != nil {
			// Validated in run before any worker is started.
			panic(err)
		}
		var eng = engine.NewEngine(evaluator)
		eng.Options.Depth = depth
		return eng
	}
}
