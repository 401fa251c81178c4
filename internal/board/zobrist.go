package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Zobrist hash keys for position hashing.
// Each key is derived by hashing a small deterministic byte encoding
// of its (kind, index) pair with xxhash, seeded by a fixed label so
// the table is reproducible across runs without a hand-rolled PRNG.
var (
	zobristPiece      [2][7][64]uint64 // [Color][PieceType][Square] - 7 to handle NoPieceType safely
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [16]uint64       // All 16 castling combinations
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// zobristKey hashes (kind, a, b) into a 64-bit key. kind disambiguates
// the feature class (piece, en-passant file, castling mask, side to
// move) so identical (a, b) pairs in different classes never collide.
func zobristKey(kind byte, a, b uint16) uint64 {
	var buf [5]byte
	buf[0] = kind
	binary.LittleEndian.PutUint16(buf[1:3], a)
	binary.LittleEndian.PutUint16(buf[3:5], b)
	return xxhash.Sum64(buf[:])
}

func initZobrist() {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = zobristKey('p', uint16(c), uint16(pt)*64+uint16(sq))
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = zobristKey('e', uint16(file), 0)
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = zobristKey('c', uint16(i), 0)
	}

	zobristSideToMove = zobristKey('s', 0, 0)
}

// ZobristPiece returns the Zobrist key for a piece on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the Zobrist key for an en passant file.
func ZobristEnPassant(file int) uint64 {
	return zobristEnPassant[file]
}

// ZobristCastling returns the Zobrist key for castling rights.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristSideToMove returns the Zobrist key for side to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
