// Package uci is a minimal Universal Chess Interface front end over
// internal/engine. It is a consumer of the search core, not part of
// it: persisted state here is limited to the current position and its
// hash history for repetition detection.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Jixen124/hodgey-chess-engine/internal/board"
	"github.com/Jixen124/hodgey-chess-engine/internal/engine"
	"github.com/dustin/go-humanize"
)

// UCI drives the protocol loop against a single in-memory position.
type UCI struct {
	position *board.Position
	history  []uint64

	out io.Writer
}

// New creates a UCI handler writing responses to out.
func New(out io.Writer) *UCI {
	pos := board.NewPosition()
	pos.UpdateCheckers()
	return &UCI{
		position: pos,
		history:  []uint64{pos.Hash},
		out:      out,
	}
}

// Run reads commands from in until EOF or "quit".
func (u *UCI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// No background search goroutine to cancel: handleGo
			// runs synchronously and returns before the next
			// command line is read.
		case "quit":
			return
		case "d":
			fmt.Fprintln(u.out, u.position.String())
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name Hodgey")
	fmt.Fprintln(u.out, "id author Hodgey Contributors")
	fmt.Fprintln(u.out)
	fmt.Fprintf(u.out, "info string transposition table fixed at %s (%s entries)\n",
		humanize.IBytes(uint64(engine.TableSizeBytes())), humanize.Comma(1<<23))
	fmt.Fprintln(u.out, "uciok")
}

func (u *UCI) handleNewGame() {
	u.position = board.NewPosition()
	u.position.UpdateCheckers()
	u.history = []uint64{u.position.Hash}
}

// handlePosition parses:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
	case "fen":
		fenEnd := len(args)
		for i, arg := range args[1:] {
			if arg == "moves" {
				fenEnd = i + 1
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid fen: %v\n", err)
			return
		}
		u.position = pos
	default:
		return
	}

	// ParseFEN (and NewPosition's starting-position setup) does not
	// populate Checkers; every consumer of InCheck/Result/IsCheckmate
	// needs it computed explicitly.
	u.position.UpdateCheckers()
	u.history = []uint64{u.position.Hash}

	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i + 1
			break
		}
	}

	if moveStart > len(args) {
		return
	}
	for _, moveStr := range args[moveStart:] {
		move, err := board.ParseMove(moveStr, u.position)
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid move %s: %v\n", moveStr, err)
			return
		}
		if move.IsZeroing(u.position) {
			u.history = u.history[:0]
		}
		u.position.MakeMove(move)
		u.position.UpdateCheckers()
		u.history = append(u.history, u.position.Hash)
	}
}

// goOptions holds the subset of "go" parameters this front end acts
// on: depth-search and clock-based time management.
type goOptions struct {
	depth    int
	moveTime time.Duration
	wtime    time.Duration
	btime    time.Duration
	winc     time.Duration
	binc     time.Duration
}

func (u *UCI) parseGoOptions(args []string) goOptions {
	var opts goOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				opts.depth, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				ms, _ := strconv.Atoi(args[i+1])
				opts.moveTime = time.Duration(ms) * time.Millisecond
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				ms, _ := strconv.Atoi(args[i+1])
				opts.wtime = time.Duration(ms) * time.Millisecond
				i++
			}
		case "btime":
			if i+1 < len(args) {
				ms, _ := strconv.Atoi(args[i+1])
				opts.btime = time.Duration(ms) * time.Millisecond
				i++
			}
		case "winc":
			if i+1 < len(args) {
				ms, _ := strconv.Atoi(args[i+1])
				opts.winc = time.Duration(ms) * time.Millisecond
				i++
			}
		case "binc":
			if i+1 < len(args) {
				ms, _ := strconv.Atoi(args[i+1])
				opts.binc = time.Duration(ms) * time.Millisecond
				i++
			}
		}
	}
	return opts
}

// handleGo runs one search synchronously and prints the result. It
// picks depth-limited search over time-limited search whenever a
// depth is given, else derives a per-move time budget from movetime
// or the clock.
func (u *UCI) handleGo(args []string) {
	opts := u.parseGoOptions(args)
	reps := engine.NewRepetitionStack(u.history[:max(0, len(u.history)-1)])

	var move board.Move
	switch {
	case opts.depth > 0:
		move = engine.FindBestMoveByDepth(u.position, opts.depth, reps)
	case opts.moveTime > 0:
		move = engine.FindBestMoveByTime(u.position, opts.moveTime, reps)
	case opts.wtime > 0 || opts.btime > 0:
		move = engine.FindBestMoveByTime(u.position, u.timeForMove(opts), reps)
	default:
		move = engine.FindBestMoveByDepth(u.position, 6, reps)
	}

	fmt.Fprintf(u.out, "bestmove %s\n", move.String())
}

// timeForMove allocates min(5000ms, remaining/20) minus 100ms of
// overhead, floored at a minimum budget so a near-flagged clock still
// produces a move. winc/binc are accepted on the wire (some GUIs
// always send them) but the budget is driven by remaining time alone,
// so increment does not widen it.
func (u *UCI) timeForMove(opts goOptions) time.Duration {
	remaining := opts.wtime
	if u.position.SideToMove == board.Black {
		remaining = opts.btime
	}

	budget := remaining / 20
	if ceiling := 5000 * time.Millisecond; budget > ceiling {
		budget = ceiling
	}
	budget -= 100 * time.Millisecond

	const minimum = 10 * time.Millisecond
	if budget < minimum {
		budget = minimum
	}
	return budget
}
