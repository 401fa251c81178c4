package engine

import "github.com/Jixen124/hodgey-chess-engine/internal/board"

// Piece-square tables, white-oriented (index 0 = a1, 63 = h8). Each
// entry already embeds the piece's material weight, so the evaluator
// never needs a separate material sum: table lookup alone gives
// material-plus-position for a single piece on a single square. Black
// pieces look up the same table at the vertically mirrored square
// (XOR 56), matching board.Square.Mirror.

var pawnTable = addMaterial(100, [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
})

var knightTable = addMaterial(320, [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
})

var bishopTable = addMaterial(330, [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
})

var rookTable = addMaterial(500, [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
})

var queenTable = addMaterial(900, [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
})

// The king table blends castling-encouraging middlegame preferences
// with central squares down-weighted; no separate endgame table, since
// a phase-aware taper is outside this evaluator's scope.
var kingTable = addMaterial(20000, [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
})

func addMaterial(material int32, table [64]int32) [64]int32 {
	for i := range table {
		table[i] += material
	}
	return table
}

var pieceSquareTables = [6][64]int32{
	pawnTable, knightTable, bishopTable, rookTable, queenTable, kingTable,
}

// pieceSquareValue returns the table value for a piece of type pt and
// color c standing on sq, from white's perspective (i.e. already
// mirrored for black).
func pieceSquareValue(pt board.PieceType, c board.Color, sq board.Square) int32 {
	if c == board.Black {
		sq = sq.Mirror()
	}
	return pieceSquareTables[pt][sq]
}
