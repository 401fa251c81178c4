package engine

import (
	"time"

	"github.com/Jixen124/hodgey-chess-engine/internal/board"
)

// FindBestMoveByDepth runs iterative deepening up to (but not
// including) maxDepth, in steps of two plies, and returns the best
// move found. reps carries game history since the last zeroing move;
// it is mutated during the search but always restored before this
// function returns.
func FindBestMoveByDepth(pos *board.Position, maxDepth int, reps *RepetitionStack) board.Move {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 1 {
		return moves.Get(0)
	}

	tt := NewTranspositionTable()

	for depth := 2; depth < maxDepth; depth += 2 {
		bestScore := iterateRoot(pos, moves, depth, tt, reps)
		if IsMateScore(bestScore) {
			break
		}
	}

	return moves.Get(0)
}

// FindBestMoveByTime runs iterative deepening until minTime has
// elapsed, then returns the best move found by the last fully
// completed iteration. The search may overrun minTime by roughly the
// length of one move's search, since the time budget is only checked
// between root moves, never inside negamax or quiescence.
func FindBestMoveByTime(pos *board.Position, minTime time.Duration, reps *RepetitionStack) board.Move {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 1 {
		return moves.Get(0)
	}

	tt := NewTranspositionTable()
	deadline := time.Now().Add(minTime)

	for depth := 2; time.Now().Before(deadline); depth += 2 {
		snapshot := make([]board.Move, moves.Len())
		copy(snapshot, moves.Slice())

		bestScore, completed := iterateRootWithDeadline(pos, moves, depth, tt, reps, deadline)
		if !completed {
			for i, m := range snapshot {
				moves.Set(i, m)
			}
			break
		}
		if IsMateScore(bestScore) {
			break
		}
	}

	return moves.Get(0)
}

// iterateRoot scores every root move at depth, promoting moves.Get(0)
// to whichever move strictly improves on the running best score. The
// child window narrows to (-Infinity, -bestScore) as bestScore rises,
// so only a move that beats the current leader is fully explored.
func iterateRoot(pos *board.Position, moves *board.MoveList, depth int, tt *TranspositionTable, reps *RepetitionStack) Score {
	bestScore := NegInfinity

	for i := 0; i < moves.Len(); i++ {
		score := searchRootMove(pos, moves.Get(i), depth, bestScore, tt, reps)
		if score > bestScore {
			promoteToFront(moves, i)
			bestScore = score
		}
	}

	return bestScore
}

// iterateRootWithDeadline is iterateRoot's time-budgeted twin: it
// checks deadline between root moves and reports completed=false if
// the iteration was abandoned partway through.
func iterateRootWithDeadline(pos *board.Position, moves *board.MoveList, depth int, tt *TranspositionTable, reps *RepetitionStack, deadline time.Time) (bestScore Score, completed bool) {
	bestScore = NegInfinity

	for i := 0; i < moves.Len(); i++ {
		if !time.Now().Before(deadline) {
			return bestScore, false
		}
		score := searchRootMove(pos, moves.Get(i), depth, bestScore, tt, reps)
		if score > bestScore {
			promoteToFront(moves, i)
			bestScore = score
		}
	}

	return bestScore, true
}

// searchRootMove applies m and returns its negated score against the
// aspiration window (-Infinity, -bestScore).
func searchRootMove(pos *board.Position, m board.Move, depth int, bestScore Score, tt *TranspositionTable, reps *RepetitionStack) Score {
	undo := pos.MakeMove(m)
	score := -negamax(pos, depth, NegInfinity, -bestScore, tt, reps)
	pos.UnmakeMove(m, undo)
	return score
}

// promoteToFront moves the entry at idx to the front of ml by
// successive adjacent swaps, preserving the relative order of every
// other entry.
func promoteToFront(ml *board.MoveList, idx int) {
	for j := idx; j > 0; j-- {
		ml.Swap(j, j-1)
	}
}
