package uci

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixfold-origami/patch/board"
	"github.com/sixfold-origami/patch/engine"
)

func discardLogger() logr.Logger {
	return stdr.New(log.New(io.Discard, "", 0))
}

func TestParsePosition_Startpos(t *testing.T) {
	pos, err := parsePosition([]string{"startpos"})
	require.NoError(t, err)
	assert.Equal(t, board.InitialPosition, pos.ToFEN())
}

func TestParsePosition_StartposWithMoves(t *testing.T) {
	pos, err := parsePosition([]string{"startpos", "moves", "e2e4", "e7e5"})
	require.NoError(t, err)
	assert.True(t, pos.WhiteToMove)
}

func TestParsePosition_FEN(t *testing.T) {
	fen := "8/8/8/8/8/8/8/4K2k w - - 0 1"
	pos, err := parsePosition([]string{"fen", "8/8/8/8/8/8/8/4K2k", "w", "-", "-", "0", "1"})
	require.NoError(t, err)
	assert.Equal(t, fen, pos.ToFEN())
}

func TestParsePosition_RejectsIllegalMove(t *testing.T) {
	_, err := parsePosition([]string{"startpos", "moves", "e2e5"})
	assert.Error(t, err)
}

func TestParseGo_MoveTime(t *testing.T) {
	opts, err := parseGo([]string{"movetime", "500"})
	require.NoError(t, err)
	assert.True(t, opts.HasMoveTime)
	assert.Equal(t, 500*time.Millisecond, opts.MoveTime)
}

func TestParseGo_ClockAndIncrement(t *testing.T) {
	opts, err := parseGo([]string{"wtime", "60000", "winc", "1000", "btime", "55000", "binc", "1000"})
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, opts.WTime)
	assert.Equal(t, time.Second, opts.WInc)
}

func TestParseGo_Depth(t *testing.T) {
	opts, err := parseGo([]string{"depth", "4"})
	require.NoError(t, err)
	assert.Equal(t, uint8(4), opts.Depth)
}

func TestParseGo_UnknownOptionIsUnimplemented(t *testing.T) {
	_, err := parseGo([]string{"ponder"})
	assert.ErrorIs(t, err, engine.ErrUnimplemented)
}

func TestLoop_UCIHandshake(t *testing.T) {
	in := strings.NewReader("uci\nquit\n")
	var out bytes.Buffer

	code := Loop(in, &out, discardLogger(), nil, engine.DefaultConfig())

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "id name Patch")
	assert.Contains(t, out.String(), "uciok")
}

func TestLoop_IsReady(t *testing.T) {
	in := strings.NewReader("isready\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, discardLogger(), nil, engine.DefaultConfig())

	assert.Contains(t, out.String(), "readyok")
}

func TestLoop_GoDepthEmitsBestMove(t *testing.T) {
	in := strings.NewReader("position startpos\ngo depth 1\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, discardLogger(), nil, engine.DefaultConfig())

	assert.Contains(t, out.String(), "bestmove")
}
