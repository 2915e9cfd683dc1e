package eval

import (
	"github.com/kasidit/makhos/pkg/checkers"
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate is pure piece counting, white-positive. Useful as a weak
// sparring partner and as a sanity baseline in tests.
func (e *EvaluationService) Evaluate(p *checkers.Position) int {
	return 100*(p.MenCount(checkers.SideWhite)-p.MenCount(checkers.SideBlack)) +
		500*(p.KingCount(checkers.SideWhite)-p.KingCount(checkers.SideBlack))
}
