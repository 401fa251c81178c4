package engine

import (
	"testing"

	"github.com/Jixen124/hodgey-chess-engine/internal/board"
	"github.com/stretchr/testify/assert"
)

func mustSquare(t *testing.T, s string) board.Square {
	t.Helper()
	sq, err := board.ParseSquare(s)
	assert.NoError(t, err)
	return sq
}

// S5: (Pawn x Queen) key < (Pawn x Rook) key < (Bishop x Rook) key.
func TestMoveScore_MVVLVAOrdering(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3qr3/2P5/3B4/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	c4 := mustSquare(t, "c4")
	d3 := mustSquare(t, "d3")
	d5 := mustSquare(t, "d5")
	e5 := mustSquare(t, "e5")

	pawnTakesQueen := board.NewMove(c4, d5)
	pawnTakesRook := board.NewMove(c4, e5)
	bishopTakesRook := board.NewMove(d3, e5)

	pxq := moveScore(pawnTakesQueen, pos)
	pxr := moveScore(pawnTakesRook, pos)
	bxr := moveScore(bishopTakesRook, pos)

	assert.Less(t, pxq, pxr, "PxQ must sort before PxR")
	assert.Less(t, pxr, bxr, "PxR must sort before BxR")
}

func TestMoveScore_PromotionCaptureOfQueenStillNegative(t *testing.T) {
	pos, err := board.ParseFEN("1q2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	a7 := mustSquare(t, "a7")
	b8 := mustSquare(t, "b8")

	promotionCapture := board.NewPromotion(a7, b8, board.Queen)
	assert.True(t, promotionCapture.IsCapture(pos))
	assert.Less(t, moveScore(promotionCapture, pos), 0, "a promotion-capture of a queen still nets negative")
}

func TestMoveScore_QuietPromotionSortsLate(t *testing.T) {
	pos, err := board.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	a7 := mustSquare(t, "a7")
	a8 := mustSquare(t, "a8")

	quietPromotion := board.NewPromotion(a7, a8, board.Queen)
	assert.False(t, quietPromotion.IsCapture(pos))
	assert.Equal(t, promotionPenalty, moveScore(quietPromotion, pos))
}

func TestSortMoves_AscendingByKey(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3qr3/2P5/3B4/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	ml := board.NewMoveList()
	c4 := mustSquare(t, "c4")
	d3 := mustSquare(t, "d3")
	d5 := mustSquare(t, "d5")
	e5 := mustSquare(t, "e5")
	ml.Add(board.NewMove(d3, e5)) // BxR
	ml.Add(board.NewMove(c4, d5)) // PxQ
	ml.Add(board.NewMove(c4, e5)) // PxR

	sortMoves(ml, pos)

	assert.Equal(t, board.NewMove(c4, d5), ml.Get(0))
	assert.Equal(t, board.NewMove(c4, e5), ml.Get(1))
	assert.Equal(t, board.NewMove(d3, e5), ml.Get(2))
}
