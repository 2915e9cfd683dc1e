package eval

import (
	"testing"

	"github.com/kasidit/makhos/pkg/checkers"
)

func TestEvaluate(t *testing.T) {
	var e = NewEvaluationService()

	var initial = checkers.NewPosition()
	if got := e.Evaluate(&initial); got != 0 {
		t.Errorf("initial score = %d, want 0", got)
	}

	// White up one man, black up one king.
	var p, err = checkers.NewPositionFromString(`
		........
		.B......
		........
		........
		........
		.w.w....
		........
		........`, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.Evaluate(&p), 2*100-500; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}
