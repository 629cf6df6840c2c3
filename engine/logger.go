package engine

import (
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

// SearchLog is one structured line emitted for a completed
// iterative-deepening pass.
type SearchLog struct {
	Timestamp time.Time
	FEN       string
	Move      string
	Score     string
	Depth     uint8
	SelDepth  uint8
	Duration  time.Duration
}

// AsyncLogger decouples search from logging I/O: entries are queued and a
// background goroutine drains them, so a slow sink never stalls the
// search loop. A nil *AsyncLogger is a valid no-op logger.
type AsyncLogger struct {
	sink  logr.Logger
	queue chan SearchLog
	done  chan struct{}

	// dropReported is set once the first dropped entry has been reported.
	dropReported atomic.Bool
}

// NewAsyncLogger starts the background writer over sink.
func NewAsyncLogger(sink logr.Logger) *AsyncLogger {
	l := &AsyncLogger{
		sink:  sink,
		queue: make(chan SearchLog, 100),
		done:  make(chan struct{}),
	}
	go l.writer()
	return l
}

// Log enqueues an entry, dropping it rather than blocking the search if
// the queue is saturated. Only the first drop is reported on the sink.
func (l *AsyncLogger) Log(entry SearchLog) {
	if l == nil {
		return
	}
	select {
	case l.queue <- entry:
	default:
		if l.dropReported.CompareAndSwap(false, true) {
			l.sink.Info("log queue full, dropping entry")
		}
	}
}

// Close drains the queue and stops the writer goroutine.
func (l *AsyncLogger) Close() {
	if l == nil {
		return
	}
	close(l.queue)
	<-l.done
}

func (l *AsyncLogger) writer() {
	for entry := range l.queue {
		l.sink.Info("search pass",
			"move", entry.Move,
			"score", entry.Score,
			"depth", entry.Depth,
			"seldepth", entry.SelDepth,
			"time", entry.Duration.Round(time.Millisecond).String(),
			"fen", entry.FEN,
		)
	}
	close(l.done)
}
