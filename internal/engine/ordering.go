package engine

import "github.com/Jixen124/hodgey-chess-engine/internal/board"

// attackerWeight and victimWeight feed the MVV-LVA capture formula.
// Other covers Queen and King (King never legally appears as a victim).
var attackerWeight = [6]int{1, 3, 3, 5, 9, 9} // Pawn Knight Bishop Rook Queen Other(King)
var victimWeight = [6]int{10, 30, 30, 50, 90, 90}

const promotionPenalty = 60

// moveScore returns m's sort key for negamax's move list: lower is
// searched earlier. Captures score negative (better captures more so);
// quiet promotions score worst so they are tried last.
func moveScore(m board.Move, pos *board.Position) int {
	score := 0
	if m.IsPromotion() {
		score += promotionPenalty
	}
	if m.IsCapture(pos) {
		score += captureDelta(m, pos)
	}
	return score
}

// captureScore is moveScore's capture-only counterpart, used in
// quiescence where every move in the list is already a capture.
func captureScore(m board.Move, pos *board.Position) int {
	return captureDelta(m, pos)
}

// captureDelta computes ATTACKER[role(m)] - VICTIM[captured(m)].
func captureDelta(m board.Move, pos *board.Position) int {
	attacker := pos.PieceAt(m.From()).Type()

	var victim board.PieceType
	if m.IsEnPassant() {
		victim = board.Pawn
	} else {
		victim = pos.PieceAt(m.To()).Type()
	}

	return attackerWeight[attacker] - victimWeight[victim]
}

// sortMoves sorts ml's entries by ascending moveScore using a
// selection sort; move lists are short enough (well under a hundred
// entries) that the quadratic pass costs less than an allocation for
// a full sort.Slice closure.
func sortMoves(ml *board.MoveList, pos *board.Position) {
	n := ml.Len()
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = moveScore(ml.Get(i), pos)
	}
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if keys[j] < keys[best] {
				best = j
			}
		}
		if best != i {
			ml.Swap(i, best)
			keys[i], keys[best] = keys[best], keys[i]
		}
	}
}

// sortCaptures sorts ml's entries by ascending captureScore, for use
// inside quiescence.
func sortCaptures(ml *board.MoveList, pos *board.Position) {
	n := ml.Len()
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = captureScore(ml.Get(i), pos)
	}
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if keys[j] < keys[best] {
				best = j
			}
		}
		if best != i {
			ml.Swap(i, best)
			keys[i], keys[best] = keys[best], keys[i]
		}
	}
}
