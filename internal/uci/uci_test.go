package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, commands string) string {
	t.Helper()
	var out bytes.Buffer
	u := New(&out)
	u.Run(strings.NewReader(commands))
	return out.String()
}

func TestUCI_HandshakeRespondsOk(t *testing.T) {
	out := run(t, "uci\nisready\nquit\n")
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "readyok")
	assert.Contains(t, out, "id name")
}

func TestUCI_GoDepthReturnsLegalBestMove(t *testing.T) {
	out := run(t, "position startpos\ngo depth 4\nquit\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "bestmove "))
	assert.Len(t, strings.TrimPrefix(last, "bestmove "), 4)
}

func TestUCI_PositionWithMovesThenGoReturnsBestMove(t *testing.T) {
	out := run(t, "position startpos moves e2e4 e7e5\ngo depth 2\nquit\n")
	assert.Contains(t, out, "bestmove")
}

func TestUCI_InvalidFENIsReportedNotFatal(t *testing.T) {
	out := run(t, "position fen not-a-fen\nisready\nquit\n")
	assert.Contains(t, out, "info string invalid fen")
	assert.Contains(t, out, "readyok")
}

func TestUCI_SingleLegalMoveShortCircuitsGo(t *testing.T) {
	out := run(t, "position fen 7k/8/8/8/8/8/r6r/K7 w - - 0 1\ngo depth 6\nquit\n")
	assert.Contains(t, out, "bestmove a1b1")
}
