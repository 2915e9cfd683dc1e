package xo

// Decision records why a candidate cell was considered during one BestMove
// call. It is observability output only; the choice itself never reads it.
type Decision struct {
	Cell     int
	Tag      string
	Score    int
	Winning  bool
	Blocking bool
}

// BestMove picks a cell for ai using a fixed-priority rule cascade, then
// verifies the pick against the exhaustive search. The cascade is an
// explainability shortcut; if its pick runs into a forced loss the full
// search does not, the search's move wins out. On a terminal board it
// returns -1. The returned decisions list the candidates weighed by the
// deciding tier.
func BestMove(b Board, ai Piece) (int, []Decision) {
	var cell, decisions = cascade(b, ai)
	if cell < 0 {
		return cell, decisions
	}
	var score = minimax(b.With(cell, ai), ai, 1, false, -valueInfinity, valueInfinity)
	if score <= -valueWin+16 {
		if oracle := BestMoveMinimax(b, ai); oracle >= 0 && oracle != cell {
			var oracleScore = minimax(b.With(oracle, ai), ai, 1, false, -valueInfinity, valueInfinity)
			if oracleScore > score {
				decisions = append(decisions, Decision{Cell: oracle, Tag: "oracle", Score: oracleScore})
				cell = oracle
			}
		}
	}
	return cell, decisions
}

// cascade evaluates the eight rule tiers top-down; the first tier that
// matches decides and later tiers are not consulted.
func cascade(b Board, ai Piece) (int, []Decision) {
	if b.IsTerminal() {
		return -1, nil
	}
	var opponent = ai.Opponent()

	// Tier 1: complete our own three-in-a-row.
	for _, cell := range b.LegalMoves() {
		if b.With(cell, ai).Winner() == ai {
			return cell, []Decision{{Cell: cell, Tag: "win", Winning: true}}
		}
	}

	// Tier 2: block the opponent's three-in-a-row. With two threats the
	// game is already lost; blocking the lowest cell is damage control.
	for _, cell := range b.LegalMoves() {
		if b.With(cell, opponent).Winner() == opponent {
			return cell, []Decision{{Cell: cell, Tag: "block", Blocking: true}}
		}
	}

	// Tier 3: create a fork. More threats beat fewer; corner-anchored
	// lines beat edge-anchored ones.
	if cell, decisions := bestFork(b, ai); cell >= 0 {
		return cell, decisions
	}

	// Tier 4: prevent an opponent fork.
	if cell, decisions := preventFork(b, ai); cell >= 0 {
		return cell, decisions
	}

	// Tier 5: take the center.
	if b[Center] == Empty {
		return Center, []Decision{{Cell: Center, Tag: "center"}}
	}

	// Tier 6: take the corner opposite an opponent-held corner.
	if cell, decisions := bestOppositeCorner(b, opponent); cell >= 0 {
		return cell, decisions
	}

	// Tier 7: best remaining corner, tier 8: best remaining edge.
	if cell, decisions := bestOpenCell(b, ai, corners[:], "corner"); cell >= 0 {
		return cell, decisions
	}
	if cell, decisions := bestOpenCell(b, ai, edges[:], "edge"); cell >= 0 {
		return cell, decisions
	}

	// Unreachable on a non-full board, kept as a hard floor.
	for _, cell := range b.LegalMoves() {
		return cell, []Decision{{Cell: cell, Tag: "fallback"}}
	}
	return -1, nil
}

// bestFork scans for moves creating two or more simultaneous threats and
// ranks them by linesCount*1000 + cornerLines*500.
func bestFork(b Board, ai Piece) (int, []Decision) {
	var bestCell = -1
	var bestScore = 0
	var decisions []Decision
	for _, cell := range b.LegalMoves() {
		var child = b.With(cell, ai)
		var lines = child.WinningLines(ai)
		if lines < 2 {
			continue
		}
		var score = lines*1000 + cornerAnchoredLines(child, ai)*500
		decisions = append(decisions, Decision{Cell: cell, Tag: "fork", Score: score})
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}
	return bestCell, decisions
}

// cornerAnchoredLines counts ai's threat lines that run through a corner.
func cornerAnchoredLines(b Board, ai Piece) int {
	var count = 0
	for _, line := range winLines {
		var own, empty, corner = 0, 0, false
		for _, cell := range line {
			switch b[cell] {
			case ai:
				own++
			case Empty:
				empty++
			}
			if _, ok := oppositeCorner[cell]; ok {
				corner = true
			}
		}
		if own == 2 && empty == 1 && corner {
			count++
		}
	}
	return count
}

// preventFork handles the opponent's fork potential. The dual-corner
// opening (opponent on both ends of a diagonal) is answered with an edge,
// the classic defusal; everything else uses a two-ply threat count. The
// tier only fires when some candidate would actually allow a double
// threat.
func preventFork(b Board, ai Piece) (int, []Decision) {
	var opponent = ai.Opponent()

	if holdsDiagonalCorners(b, opponent) {
		for _, cell := range edges {
			if b[cell] == Empty {
				return cell, []Decision{{Cell: cell, Tag: "anti-fork-edge", Blocking: true}}
			}
		}
	}

	var risks = make(map[int]int)
	var anyRisk = false
	for _, cell := range b.LegalMoves() {
		var risk = forkRisk(b, ai, cell)
		risks[cell] = risk
		if risk >= 2 {
			anyRisk = true
		}
	}
	if !anyRisk {
		return -1, nil
	}

	var decisions []Decision
	for cell, risk := range risks {
		decisions = append(decisions, Decision{Cell: cell, Tag: "anti-fork", Score: -risk})
	}

	// Among safe moves prefer corner, then center, then lowest index.
	var safe []int
	for _, cell := range b.LegalMoves() {
		if risks[cell] < 2 {
			safe = append(safe, cell)
		}
	}
	if len(safe) == 0 {
		// Every move concedes a double threat; take the least bad one.
		var bestCell, bestRisk = -1, 100
		for _, cell := range b.LegalMoves() {
			if risks[cell] < bestRisk {
				bestRisk = risks[cell]
				bestCell = cell
			}
		}
		return bestCell, decisions
	}
	for _, cell := range safe {
		if isCorner(cell) {
			return cell, decisions
		}
	}
	for _, cell := range safe {
		if cell == Center {
			return cell, decisions
		}
	}
	return safe[0], decisions
}

// forkRisk is the largest number of simultaneous threats the opponent can
// build two plies after ai plays cell.
func forkRisk(b Board, ai Piece, cell int) int {
	var opponent = ai.Opponent()
	var child = b.With(cell, ai)
	if child.Winner() == ai {
		return 0
	}
	var worst = 0
	for _, reply := range child.LegalMoves() {
		var after = child.With(reply, opponent)
		worst = max(worst, after.WinningLines(opponent))
	}
	return worst
}

func holdsDiagonalCorners(b Board, pc Piece) bool {
	return (b[0] == pc && b[8] == pc) || (b[2] == pc && b[6] == pc)
}

// bestOppositeCorner answers an opponent corner with the diagonally
// opposite one, weighted by how much room remains around it.
func bestOppositeCorner(b Board, opponent Piece) (int, []Decision) {
	var bestCell = -1
	var bestScore = -1
	var decisions []Decision
	for _, corner := range corners {
		if b[corner] != opponent {
			continue
		}
		var opposite = oppositeCorner[corner]
		if b[opposite] != Empty {
			continue
		}
		var score = openNeighbors(b, opposite)
		decisions = append(decisions, Decision{Cell: opposite, Tag: "opposite-corner", Score: score})
		if score > bestScore {
			bestScore = score
			bestCell = opposite
		}
	}
	return bestCell, decisions
}

var neighbors = [9][]int{
	{1, 3, 4},
	{0, 2, 3, 4, 5},
	{1, 4, 5},
	{0, 1, 4, 6, 7},
	{0, 1, 2, 3, 5, 6, 7, 8},
	{1, 2, 4, 7, 8},
	{3, 4, 7},
	{3, 4, 5, 6, 8},
	{4, 5, 7},
}

func openNeighbors(b Board, cell int) int {
	var count = 0
	for _, n := range neighbors[cell] {
		if b[n] == Empty {
			count++
		}
	}
	return count
}

// bestOpenCell ranks the free cells of candidates by the number of lines
// through them not yet spoiled by the opponent.
func bestOpenCell(b Board, ai Piece, candidates []int, tag string) (int, []Decision) {
	var opponent = ai.Opponent()
	var bestCell = -1
	var bestScore = -1
	var decisions []Decision
	for _, cell := range candidates {
		if b[cell] != Empty {
			continue
		}
		var score = 0
		for _, line := range winLines {
			if !lineContains(line, cell) {
				continue
			}
			var spoiled = false
			var own = 0
			for _, c := range line {
				if b[c] == opponent {
					spoiled = true
				} else if b[c] == ai {
					own++
				}
			}
			if !spoiled {
				score += 1 + own
			}
		}
		decisions = append(decisions, Decision{Cell: cell, Tag: tag, Score: score})
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}
	return bestCell, decisions
}

func lineContains(line [3]int, cell int) bool {
	return line[0] == cell || line[1] == cell || line[2] == cell
}

func isCorner(cell int) bool {
	_, ok := oppositeCorner[cell]
	return ok
}
