package engine

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/stdr"
	"github.com/stretchr/testify/assert"
)

func TestAsyncLogger_DrainsQueuedEntries(t *testing.T) {
	var buf bytes.Buffer
	sink := stdr.New(log.New(&buf, "", 0))

	l := NewAsyncLogger(sink)
	l.Log(SearchLog{
		FEN:      "startpos",
		Move:     "e2e4",
		Score:    "CP(30)",
		Depth:    3,
		SelDepth: 5,
		Duration: 10 * time.Millisecond,
	})
	l.Close()

	assert.Contains(t, buf.String(), "search pass")
	assert.Contains(t, buf.String(), "e2e4")
}

func TestAsyncLogger_NilIsANoOp(t *testing.T) {
	var l *AsyncLogger
	l.Log(SearchLog{Move: "e2e4"})
	l.Close()
}

func TestAsyncLogger_DropsRatherThanBlocksWhenQueueFull(t *testing.T) {
	var buf bytes.Buffer
	sink := stdr.New(log.New(&buf, "", 0))

	l := &AsyncLogger{sink: sink, queue: make(chan SearchLog), done: make(chan struct{})}
	close(l.done) // writer never started; queue has zero capacity so every send blocks

	l.Log(SearchLog{Move: "e2e4"})

	assert.True(t, strings.Contains(buf.String(), "log queue full"))
}
