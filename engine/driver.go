package engine

import (
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sixfold-origami/patch/board"
)

// InfoEvent is one iterative-deepening progress record, shaped to map
// directly onto a UCI `info` line.
type InfoEvent struct {
	Depth    uint8
	SelDepth uint8
	Score    Score
	PV       board.Move
	Time     time.Duration
}

// Engine owns process-scoped search state: the current board, the clock,
// and the deepest confirmed best move. It is reset wholesale whenever UCI
// sets a new position; Debug, Workers and Logger are process-level
// configuration, not search state, and ucinewgame leaves them alone.
type Engine struct {
	Debug bool

	// Workers caps how many node expansions run as their own goroutine
	// concurrently, shared across every search this Engine runs. Zero
	// (the default) falls back to runtime.GOMAXPROCS(0).
	Workers int

	// Logger, if set, receives one SearchLog per completed
	// iterative-deepening pass. Nil disables search-pass logging.
	Logger *AsyncLogger

	pos          board.Position
	deadline     Deadline
	currentDepth uint8
	confirmed    board.Move
	hasConfirmed bool
	sem          *semaphore.Weighted
}

// SetPosition replaces the board wholesale and resets per-search state.
func (e *Engine) SetPosition(pos board.Position) {
	e.pos = pos
	e.currentDepth = 1
	e.hasConfirmed = false
	e.confirmed = board.Move{}
}

// NewGame resets search state but keeps Debug, Workers and Logger.
func (e *Engine) NewGame() {
	debug, workers, logger := e.Debug, e.Workers, e.Logger
	*e = Engine{}
	e.Debug, e.Workers, e.Logger = debug, workers, logger
}

// workerSem lazily builds the worker semaphore shared by every Searcher
// this Engine constructs, sized from Workers (or GOMAXPROCS if unset).
func (e *Engine) workerSem() *semaphore.Weighted {
	if e.sem == nil {
		n := e.Workers
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		e.sem = semaphore.NewWeighted(int64(n))
	}
	return e.sem
}

// Search runs iterative deepening starting at depth 1, calling onInfo
// after every completed pass. It returns the last confirmed best move, or
// ErrNoMoveFound if even the first pass was cut short by the deadline, or
// ErrNoLegalMoves if a completed pass produced no move at all (which
// happens when the position is already checkmate or stalemate: the root
// node returns its terminal score without a move).
func (e *Engine) Search(opts SearchOptions, onInfo func(InfoEvent)) (board.Move, error) {
	start := time.Now()
	deadline, err := ComputeDeadline(opts, e.pos.WhiteToMove, start)
	if err != nil {
		return board.Move{}, err
	}
	e.deadline = deadline
	e.currentDepth = 1
	e.hasConfirmed = false

	for {
		passStart := time.Now()
		searcher := &Searcher{HorizonDepth: e.currentDepth, Deadline: e.deadline, sem: e.workerSem()}
		eval := searcher.Evaluate(e.pos, MinScore(), MaxScore(), 0)

		if eval.TerminatedEarly {
			if !e.hasConfirmed {
				return board.Move{}, ErrNoMoveFound
			}
			return e.confirmed, nil
		}

		if !eval.HasMove {
			return board.Move{}, ErrNoLegalMoves
		}

		e.confirmed = eval.Move
		e.hasConfirmed = true

		passTime := time.Since(start)
		if onInfo != nil {
			onInfo(InfoEvent{
				Depth:    e.currentDepth,
				SelDepth: eval.Depth,
				Score:    eval.Score,
				PV:       eval.Move,
				Time:     passTime,
			})
		}
		e.Logger.Log(SearchLog{
			Timestamp: passStart,
			FEN:       e.pos.ToFEN(),
			Move:      eval.Move.ToUCI(),
			Score:     eval.Score.String(),
			Depth:     e.currentDepth,
			SelDepth:  eval.Depth,
			Duration:  passTime,
		})

		if e.deadline.HasDepthLimit && e.currentDepth == e.deadline.DepthLimit {
			return e.confirmed, nil
		}
		e.currentDepth++
	}
}
