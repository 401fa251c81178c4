package engine

import "github.com/Jixen124/hodgey-chess-engine/internal/board"

// negamax searches pos to depth plies (0 falls through to
// quiescence), returning a score relative to the side to move. reps
// is pushed at most once per call (never on the early returns before
// move generation) and every push is popped by a deferred release, so
// its contents on return always match its contents on entry (see
// RepetitionStack).
func negamax(pos *board.Position, depth int, alpha, beta Score, tt *TranspositionTable, reps *RepetitionStack) Score {
	switch pos.Result() {
	case board.DrawOutcome:
		return 0
	case board.WhiteWins, board.BlackWins:
		return -(MateBase + Score(depth))
	}

	hash := pos.Hash
	if reps.Contains(hash) {
		return 0
	}

	if depth == 0 {
		return quiescence(pos, alpha, beta)
	}

	originalAlpha := alpha

	var hintIndex uint8
	hasHint := false

	if entry, ok := tt.Probe(hash); ok {
		hasHint = true
		hintIndex = entry.BestMoveIndex

		if int(entry.Depth) >= depth {
			switch entry.Flag {
			case TTExact:
				return entry.Score
			case TTLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case TTUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	release := reps.Push(hash)
	defer release()

	moves := pos.GenerateLegalMoves()
	sortMoves(moves, pos)

	value := NegInfinity
	bestIndex := 0
	searchedHint := false

	if hasHint && int(hintIndex) < moves.Len() {
		m := moves.Get(int(hintIndex))
		value = searchChild(pos, m, depth, alpha, beta, tt, reps)
		bestIndex = int(hintIndex)
		if value > alpha {
			alpha = value
		}
		searchedHint = true
	}

	if alpha < beta {
		for i := 0; i < moves.Len(); i++ {
			if searchedHint && i == int(hintIndex) {
				continue
			}

			score := searchChild(pos, moves.Get(i), depth, alpha, beta, tt, reps)
			if score > value {
				value = score
				bestIndex = i
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
	}

	flag := BoundFlag(value, originalAlpha, beta)
	tt.Store(hash, uint16(depth), value, uint8(bestIndex), flag)

	return value
}

// searchChild applies m, recurses one ply deeper with negated and
// swapped bounds, and undoes m before returning.
func searchChild(pos *board.Position, m board.Move, depth int, alpha, beta Score, tt *TranspositionTable, reps *RepetitionStack) Score {
	undo := pos.MakeMove(m)
	score := -negamax(pos, depth-1, -beta, -alpha, tt, reps)
	pos.UnmakeMove(m, undo)
	return score
}
