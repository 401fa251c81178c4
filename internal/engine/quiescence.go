package engine

import "github.com/Jixen124/hodgey-chess-engine/internal/board"

// quiescence extends the search past the frontier with captures only,
// to avoid misjudging a position mid-exchange. It does not consult the
// transposition table and does not touch the repetition stack: cycles
// built purely from captures are not a practical concern at the
// depths this engine reaches.
func quiescence(pos *board.Position, alpha, beta Score) Score {
	standPat := EvaluateRelative(pos)

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := pos.GenerateCaptures()
	sortCaptures(captures, pos)

	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)

		undo := pos.MakeMove(m)
		score := -quiescence(pos, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
