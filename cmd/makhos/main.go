package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/kasidit/makhos/internal/evalbuilder"
	"github.com/kasidit/makhos/pkg/engine"
)

type config struct {
	game    string
	eval    string
	weights string
	depth   int
	human   string
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.game, "game", "checkers", "game to play: checkers or xo")
	flag.StringVar(&cfg.eval, "eval", "linear", "checkers evaluator: linear, material or neural")
	flag.StringVar(&cfg.weights, "weights", "", "neural weights file")
	flag.IntVar(&cfg.depth, "depth", 7, "checkers search depth")
	flag.StringVar(&cfg.human, "human", "black", "side the human plays (checkers: white/black, xo: x/o)")
	flag.BoolVar(&cfg.verbose, "verbose", false, "print candidate evaluations")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	var input = bufio.NewScanner(os.Stdin)

	var err error
	switch cfg.game {
	case "checkers":
		var evaluator engine.Evaluator
		evaluator, err = evalbuilder.Build(cfg.eval, cfg.weights)
		if err == nil {
			var eng = engine.NewEngine(evaluator)
			eng.Options.Depth = cfg.depth
			err = playCheckers(eng, cfg.human == "white", cfg.verbose, input, logger)
		}
	case "xo":
		err = playXO(cfg.human == "x", cfg.verbose, input, logger)
	default:
		logger.Fatal().Str("game", cfg.game).Msg("unknown game")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("game aborted")
	}
}
