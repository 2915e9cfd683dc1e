package eval

import (
	"testing"

	"github.com/kasidit/makhos/pkg/checkers"
)

func mustPosition(t *testing.T, diagram string, whiteMove bool) checkers.Position {
	t.Helper()
	var p, err = checkers.NewPositionFromString(diagram, whiteMove)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEvaluateTerminals(t *testing.T) {
	var e = NewEvaluationService()
	var whiteOnly = mustPosition(t, `
		........
		........
		........
		........
		........
		...w....
		........
		........`, false)
	if got := e.Evaluate(&whiteOnly); got != valueTerminal {
		t.Errorf("score = %d with black wiped out, want %d", got, valueTerminal)
	}
	var blackOnly = mustPosition(t, `
		........
		.b......
		........
		........
		........
		........
		........
		........`, true)
	if got := e.Evaluate(&blackOnly); got != -valueTerminal {
		t.Errorf("score = %d with white wiped out, want %d", got, -valueTerminal)
	}
}

func TestInitialPositionFavorsWhitePlacement(t *testing.T) {
	// Material and structure are mirrored, so the only asymmetry left is
	// the heavier white centrality weight.
	var e = NewEvaluationService()
	var p = checkers.NewPosition()
	if got := e.Evaluate(&p); got <= 0 {
		t.Errorf("initial score = %d, want positive", got)
	}
}

func TestExtraManRaisesScore(t *testing.T) {
	var e = NewEvaluationService()
	var one = mustPosition(t, `
		........
		.b......
		........
		........
		........
		...w....
		........
		........`, true)
	var two = mustPosition(t, `
		........
		.b......
		........
		........
		........
		...w.w..
		........
		........`, true)
	if e.Evaluate(&two) <= e.Evaluate(&one) {
		t.Errorf("extra white man did not raise the score: %d vs %d",
			e.Evaluate(&two), e.Evaluate(&one))
	}
}

func TestKingOutweighsMan(t *testing.T) {
	var e = NewEvaluationService()
	var man = mustPosition(t, `
		........
		.b......
		........
		...w....
		........
		........
		........
		........`, true)
	var king = mustPosition(t, `
		........
		.b......
		........
		...W....
		........
		........
		........
		........`, true)
	if e.Evaluate(&king) <= e.Evaluate(&man) {
		t.Errorf("king on d5 scored %d, man scored %d, want king higher",
			e.Evaluate(&king), e.Evaluate(&man))
	}
}

func TestThreatenedManScoresLower(t *testing.T) {
	var e = NewEvaluationService()
	// e6 jumps d5 into the empty c4; f7 blocks the counter-jump.
	var threatened = mustPosition(t, `
		........
		.....b..
		....b...
		...w....
		........
		........
		........
		........`, true)
	// Same material with the attacker stepped aside to g6.
	var safe = mustPosition(t, `
		........
		.....b..
		......b.
		...w....
		........
		........
		........
		........`, true)
	if e.Evaluate(&threatened) >= e.Evaluate(&safe) {
		t.Errorf("threatened man scored %d, safe man scored %d, want lower",
			e.Evaluate(&threatened), e.Evaluate(&safe))
	}
}

func TestCenterDistance(t *testing.T) {
	var tests = []struct {
		square string
		want   int
	}{
		{square: "d4", want: 2},
		{square: "e5", want: 2},
		{square: "a1", want: 14},
		{square: "h8", want: 14},
		{square: "d1", want: 8},
	}
	for _, test := range tests {
		var sq = checkers.ParseSquare(test.square)
		if got := centerDistance(sq); got != test.want {
			t.Errorf("centerDistance(%v) = %d, want %d", test.square, got, test.want)
		}
	}
}
