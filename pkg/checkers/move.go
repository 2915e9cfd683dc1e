package checkers

import "strings"

type Move int32

const MoveEmpty = Move(0)

const (
	captureFlag   = 1 << 12
	promotionFlag = 1 << 13
)

func makeMove(from, to int, capture, promotion bool) Move {
	var m = Move(from ^ (to << 6))
	if capture {
		m ^= captureFlag
	}
	if promotion {
		m ^= promotionFlag
	}
	return m
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) IsCapture() bool {
	return m&captureFlag != 0
}

func (m Move) IsPromotion() bool {
	return m&promotionFlag != 0
}

// CapturedSquare is the square of the piece a jump removes. Only meaningful
// when IsCapture reports true.
func (m Move) CapturedSquare() int {
	return (m.From() + m.To()) / 2
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sep = "-"
	if m.IsCapture() {
		sep = "x"
	}
	return SquareName(m.From()) + sep + SquareName(m.To())
}

// ParseMove accepts "b3-c4" and "b3xd5" forms, case-insensitive.
func ParseMove(s string) Move {
	s = strings.ToLower(strings.TrimSpace(s))
	var sep = strings.IndexAny(s, "-x")
	if sep < 0 {
		return MoveEmpty
	}
	var from = ParseSquare(s[:sep])
	var to = ParseSquare(s[sep+1:])
	if from == SquareNone || to == SquareNone {
		return MoveEmpty
	}
	var capture = RankDistance(from, to) == 2
	return makeMove(from, to, capture, false)
}

func RankDistance(sq1, sq2 int) int {
	return absDelta(Rank(sq1), Rank(sq2))
}

func FileDistance(sq1, sq2 int) int {
	return absDelta(File(sq1), File(sq2))
}

func absDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}
