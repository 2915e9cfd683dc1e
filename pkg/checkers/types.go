package checkers

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone = -1

const MaxMoves = 64

type Piece int8

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

type Side int8

const (
	SideNone Side = iota
	SideWhite
	SideBlack
)

// Position is a full makhos board snapshot. ChainFrom is SquareNone except
// in the middle of a multi-jump, when it holds the square the capturing
// piece landed on; only that piece may move until the chain ends.
type Position struct {
	Board     [64]Piece
	WhiteMove bool
	ChainFrom int
	LastMove  Move
}

func (pc Piece) IsWhite() bool {
	return pc == WhiteMan || pc == WhiteKing
}

func (pc Piece) IsBlack() bool {
	return pc == BlackMan || pc == BlackKing
}

func (pc Piece) IsKing() bool {
	return pc == WhiteKing || pc == BlackKing
}

func (pc Piece) Side() Side {
	switch {
	case pc.IsWhite():
		return SideWhite
	case pc.IsBlack():
		return SideBlack
	}
	return SideNone
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	}
	return SideNone
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

// IsPlaySquare reports whether sq is one of the dark squares pieces live on.
func IsPlaySquare(sq int) bool {
	return (File(sq)+Rank(sq))&1 == 1
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = int(s[0] - 'a')
	var rank = int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}
