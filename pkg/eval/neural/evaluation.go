package eval

import (
	deep "github.com/patrikeh/go-deep"

	"github.com/kasidit/makhos/pkg/checkers"
)

// InputSize is one float per square plus the side to move.
const InputSize = 65

// outputScale maps the network's [-1,1] outcome prediction onto the
// centi-man score range the search expects.
const outputScale = 1000

type Config struct {
	Name         string        `json:"name"`
	HiddenLayers []int         `json:"hiddenLayers"`
	LearningRate float64       `json:"learningRate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Name:         "default",
		HiddenLayers: []int{64, 32},
		LearningRate: 0.01,
	}
}

// EvaluationService scores positions with a small feed-forward regression
// network. Untrained it is noise; cmd/traineval fits it from self-play.
type EvaluationService struct {
	network *deep.Neural
	config  Config
}

func NewEvaluationService(config Config) *EvaluationService {
	var layout = append(append([]int{}, config.HiddenLayers...), 1)
	var network = deep.NewNeural(&deep.Config{
		Inputs:     InputSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
	if config.Weights != nil {
		network.ApplyWeights(config.Weights)
	}
	return &EvaluationService{network: network, config: config}
}

func (e *EvaluationService) Evaluate(p *checkers.Position) int {
	if p.PieceCount(checkers.SideBlack) == 0 {
		return 50000
	}
	if p.PieceCount(checkers.SideWhite) == 0 {
		return -50000
	}
	var out = e.network.Predict(Features(p))
	return int(out[0] * outputScale)
}

// Network exposes the underlying net for the trainer.
func (e *EvaluationService) Network() *deep.Neural {
	return e.network
}

// Snapshot returns the config with the current weights filled in, ready to
// be persisted.
func (e *EvaluationService) Snapshot() Config {
	var config = e.config
	config.Weights = e.network.Weights()
	return config
}

// Features encodes a position as InputSize floats in [-1, 1]: men count
// ±1/3, kings ±1, and the side to move last.
func Features(p *checkers.Position) []float64 {
	var features = make([]float64, InputSize)
	for sq := 0; sq < 64; sq++ {
		switch p.Board[sq] {
		case checkers.WhiteMan:
			features[sq] = 1.0 / 3
		case checkers.WhiteKing:
			features[sq] = 1
		case checkers.BlackMan:
			features[sq] = -1.0 / 3
		case checkers.BlackKing:
			features[sq] = -1
		}
	}
	if p.WhiteMove {
		features[64] = 1
	} else {
		features[64] = -1
	}
	return features
}
