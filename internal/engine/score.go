// Package engine implements the search core: piece-square evaluation,
// move ordering, a transposition table, quiescence search, negamax
// with alpha-beta pruning, and the iterative-deepening driver that
// sits on top of them.
package engine

import "math"

// Score is a side-to-move-relative evaluation in centipawns, or a mate
// distance encoded per MateBase below.
type Score int32

const (
	// Infinity is used as the initial beta bound at the root.
	Infinity Score = math.MaxInt32
	// NegInfinity must not be math.MinInt32: negating it would
	// overflow. It is the mirror image of Infinity instead.
	NegInfinity Score = -Infinity

	// MateBase anchors forced-mate scores away from ordinary
	// evaluations. A checkmate score is -(MateBase + depthRemaining);
	// shorter mates (larger depthRemaining at the mating node) produce
	// larger-magnitude scores and are preferred by alpha-beta maximization
	// of the negated score one ply up.
	MateBase Score = 100_000_000
)

// IsMateScore reports whether s denotes a forced mate in either
// direction.
func IsMateScore(s Score) bool {
	if s < 0 {
		s = -s
	}
	return s >= MateBase
}
