package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/patrikeh/go-deep/training"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kasidit/makhos/pkg/checkers"
	"github.com/kasidit/makhos/pkg/engine"
	linear "github.com/kasidit/makhos/pkg/eval/linear"
	neural "github.com/kasidit/makhos/pkg/eval/neural"
)

// traineval generates self-play games with the linear evaluator and fits
// the neural evaluator to predict their outcomes.

type config struct {
	episodes     int
	concurrency  int
	depth        int
	maxPlies     int
	openingPlies int
	iterations   int
	seed         int64
	name         string
	out          string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.episodes, "episodes", 200, "self-play games to generate")
	flag.IntVar(&cfg.concurrency, "concurrency", 4, "parallel self-play workers")
	flag.IntVar(&cfg.depth, "depth", 5, "self-play search depth")
	flag.IntVar(&cfg.maxPlies, "maxplies", 200, "plies before a game counts as a draw")
	flag.IntVar(&cfg.openingPlies, "openingplies", 6, "random plies to diversify openings")
	flag.IntVar(&cfg.iterations, "iterations", 50, "training iterations over the dataset")
	flag.Int64Var(&cfg.seed, "seed", 1, "opening randomization seed")
	flag.StringVar(&cfg.name, "name", "selfplay", "network name stored in the weights file")
	flag.StringVar(&cfg.out, "out", "weights.json", "output weights file")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("traineval failed")
	}
}

func run(cfg config, logger zerolog.Logger) error {
	logger.Info().
		Int("episodes", cfg.episodes).
		Int("depth", cfg.depth).
		Int("concurrency", cfg.concurrency).
		Msg("generating self-play games")

	examples, err := selfPlay(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info().Int("examples", len(examples)).Msg("dataset ready")

	var netConfig = neural.DefaultConfig()
	netConfig.Name = cfg.name
	var service = neural.NewEvaluationService(netConfig)

	examples.Shuffle()
	var split = len(examples) * 9 / 10
	var trainer = training.NewTrainer(training.NewSGD(netConfig.LearningRate, 0.5, 0.0, false), 5)
	trainer.Train(service.Network(), examples[:split], examples[split:], cfg.iterations)

	if err := neural.SaveConfig(cfg.out, service.Snapshot()); err != nil {
		return err
	}
	logger.Info().Str("out", cfg.out).Msg("weights saved")
	return nil
}

func selfPlay(cfg config, logger zerolog.Logger) (training.Examples, error) {
	var g errgroup.Group
	var seeds = make(chan int64)
	var batches = make(chan training.Examples)

	go func() {
		defer close(seeds)
		for i := 0; i < cfg.episodes; i++ {
			seeds <- cfg.seed + int64(i)
		}
	}()

	for i := 0; i < cfg.concurrency; i++ {
		g.Go(func() error {
			var eng = engine.NewEngine(linear.NewEvaluationService())
			eng.Options.Depth = cfg.depth
			for seed := range seeds {
				batch, err := playEpisode(eng, rand.New(rand.NewSource(seed)), cfg)
				if err != nil {
					return err
				}
				batches <- batch
			}
			return nil
		})
	}

	var done = make(chan struct{})
	var examples training.Examples
	go func() {
		defer close(done)
		var games = 0
		for batch := range batches {
			examples = append(examples, batch...)
			games++
			if games%10 == 0 {
				logger.Info().Int("games", games).Int("examples", len(examples)).Msg("self-play progress")
			}
		}
	}()

	var err = g.Wait()
	close(batches)
	<-done
	return examples, err
}

// playEpisode plays one game and labels every position it visited with the
// final outcome from white's point of view.
func playEpisode(eng *engine.Engine, rnd *rand.Rand, cfg config) (training.Examples, error) {
	var position = checkers.NewPosition()
	var child checkers.Position
	var buffer [checkers.MaxMoves]checkers.Move

	for i := 0; i < cfg.openingPlies; i++ {
		var ml = position.GenerateMoves(buffer[:])
		if len(ml) == 0 {
			break
		}
		if !position.MakeMove(ml[rnd.Intn(len(ml))], &child) || child.IsTerminal() {
			break
		}
		position = child
	}

	var inputs [][]float64
	var outcome float64
	for plies := 0; ; plies++ {
		var winner = position.Winner()
		if winner == checkers.SideWhite {
			outcome = 1
			break
		}
		if winner == checkers.SideBlack {
			outcome = -1
			break
		}
		if plies >= cfg.maxPlies {
			break
		}
		inputs = append(inputs, neural.Features(&position))
		var move, _ = eng.BestMove(&position)
		if !position.MakeMove(move, &child) {
			return nil, errIllegalMove(move)
		}
		position = child
	}

	var examples = make(training.Examples, 0, len(inputs))
	for _, input := range inputs {
		examples = append(examples, training.Example{
			Input:    input,
			Response: []float64{outcome},
		})
	}
	return examples, nil
}

type errIllegalMove checkers.Move

func (e errIllegalMove) Error() string {
	return "self-play produced illegal move " + checkers.Move(e).String()
}
