package evalbuilder

import (
	"fmt"

	"github.com/kasidit/makhos/pkg/engine"
	linear "github.com/kasidit/makhos/pkg/eval/linear"
	material "github.com/kasidit/makhos/pkg/eval/material"
	neural "github.com/kasidit/makhos/pkg/eval/neural"
)

// Build constructs a checkers evaluator by name. weightsPath is only
// consulted for the neural evaluator; empty means fresh random weights.
func Build(key, weightsPath string) (engine.Evaluator, error) {
	switch key {
	case "", "linear":
		return linear.NewEvaluationService(), nil
	case "material":
		return material.NewEvaluationService(), nil
	case "neural":
		var config = neural.DefaultConfig()
		if weightsPath != "" {
			var err error
			config, err = neural.LoadConfig(weightsPath)
			if err != nil {
				return nil, err
			}
		}
		return neural.NewEvaluationService(config), nil
	}
	return nil, fmt.Errorf("evalbuilder: unknown evaluator %q", key)
}
