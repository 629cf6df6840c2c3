// Package uci implements the line-oriented UCI command loop: it parses
// stdin, drives an engine.Engine, and writes UCI-shaped responses to
// stdout. It owns no search logic of its own.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/sixfold-origami/patch/board"
	"github.com/sixfold-origami/patch/engine"
)

const (
	engineName   = "Patch"
	engineAuthor = "sixfold"
)

// Loop reads UCI commands from in and writes responses to out until
// "quit" or EOF. It returns the process exit code: 0 on a clean quit,
// nonzero if the input stream itself failed. asyncLog, if non-nil,
// receives one SearchLog per completed search pass and is closed before
// Loop returns; a nil asyncLog is a valid no-op.
func Loop(in io.Reader, out io.Writer, log logr.Logger, asyncLog *engine.AsyncLogger, cfg engine.Config) int {
	defer asyncLog.Close()

	eng := &engine.Engine{Workers: cfg.MaxWorkers, Logger: asyncLog}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "uci":
			fmt.Fprintf(out, "id name %s\n", engineName)
			fmt.Fprintf(out, "id author %s\n", engineAuthor)
			fmt.Fprintln(out, "uciok")

		case "debug":
			if len(args) == 1 {
				eng.Debug = args[0] == "on"
			}

		case "isready":
			fmt.Fprintln(out, "readyok")

		case "ucinewgame":
			eng.NewGame()

		case "position":
			pos, err := parsePosition(args)
			if err != nil {
				log.Error(err, "position command failed")
				continue
			}
			eng.SetPosition(pos)

		case "go":
			opts, err := parseGo(args)
			if err != nil {
				log.Error(err, "go command failed")
				continue
			}
			runGo(eng, opts, out, log)

		case "stop":
			// The deadline drives termination; there is no mid-search
			// interrupt, so this is a no-op.

		case "quit":
			return 0

		default:
			log.Error(fmt.Errorf("uci: %w: command %q", engine.ErrUnimplemented, cmd), "unknown command")
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(out, "info string read error:", err)
		return 1
	}
	return 0
}

func runGo(eng *engine.Engine, opts engine.SearchOptions, out io.Writer, log logr.Logger) {
	best, err := eng.Search(opts, func(ev engine.InfoEvent) {
		kind, value := ev.Score.UCIScore()
		fmt.Fprintf(out, "info depth %d seldepth %d score %s %d time %d pv %s\n",
			ev.Depth, ev.SelDepth, kind, value, ev.Time.Milliseconds(), ev.PV.ToUCI())
	})
	if err != nil {
		log.Error(err, "search failed")
		return
	}
	fmt.Fprintf(out, "bestmove %s\n", best.ToUCI())
}

// parsePosition handles "position [startpos | fen <FEN>] [moves <m1> ...]".
func parsePosition(args []string) (board.Position, error) {
	if len(args) == 0 {
		return board.Position{}, fmt.Errorf("uci: position requires startpos or fen")
	}

	var pos board.Position
	var rest []string

	switch args[0] {
	case "startpos":
		pos = board.MustParseFEN(board.InitialPosition)
		rest = args[1:]
	case "fen":
		fenFields, after := splitBeforeMoves(args[1:])
		fen := strings.Join(fenFields, " ")
		parsed, err := board.ParseFEN(fen)
		if err != nil {
			return board.Position{}, fmt.Errorf("uci: %w", err)
		}
		pos = parsed
		rest = after
	default:
		return board.Position{}, fmt.Errorf("uci: unrecognized position subcommand %q", args[0])
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, mv := range rest[1:] {
			parsed, ok := board.ParseUCIMove(&pos, mv)
			if !ok {
				return board.Position{}, fmt.Errorf("uci: illegal or malformed move %q", mv)
			}
			pos = pos.Make(parsed)
		}
	}

	return pos, nil
}

// splitBeforeMoves splits a FEN's fields from the trailing "moves ..." list.
func splitBeforeMoves(args []string) (fenFields, rest []string) {
	for i, a := range args {
		if a == "moves" {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// parseGo handles the "go" option grammar the specification covers:
// infinite, movetime, wtime/btime/winc/binc, movestogo, depth.
func parseGo(args []string) (engine.SearchOptions, error) {
	var opts engine.SearchOptions

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			opts.Infinite = true
		case "movetime":
			v, err := nextMillis(args, &i)
			if err != nil {
				return opts, err
			}
			opts.MoveTime, opts.HasMoveTime = v, true
		case "wtime":
			v, err := nextMillis(args, &i)
			if err != nil {
				return opts, err
			}
			opts.WTime, opts.HasWTime = v, true
		case "btime":
			v, err := nextMillis(args, &i)
			if err != nil {
				return opts, err
			}
			opts.BTime, opts.HasBTime = v, true
		case "winc":
			v, err := nextMillis(args, &i)
			if err != nil {
				return opts, err
			}
			opts.WInc, opts.HasWInc = v, true
		case "binc":
			v, err := nextMillis(args, &i)
			if err != nil {
				return opts, err
			}
			opts.BInc, opts.HasBInc = v, true
		case "movestogo":
			v, err := nextInt(args, &i)
			if err != nil {
				return opts, err
			}
			opts.MovesToGo, opts.HasMovesToGo = v, true
		case "depth":
			v, err := nextInt(args, &i)
			if err != nil {
				return opts, err
			}
			opts.Depth, opts.HasDepth = uint8(v), true
		default:
			return opts, fmt.Errorf("uci: %w: go option %q", engine.ErrUnimplemented, args[i])
		}
	}

	return opts, nil
}

func nextMillis(args []string, i *int) (time.Duration, error) {
	v, err := nextInt(args, i)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}

func nextInt(args []string, i *int) (int, error) {
	*i++
	if *i >= len(args) {
		return 0, fmt.Errorf("uci: missing value for %q", args[*i-1])
	}
	v, err := strconv.Atoi(args[*i])
	if err != nil {
		return 0, fmt.Errorf("uci: malformed integer %q: %w", args[*i], err)
	}
	return v, nil
}
