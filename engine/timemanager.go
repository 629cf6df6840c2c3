package engine

import (
	"time"
)

// Slack is subtracted from every computed deadline to cover the
// tear-down path: propagating cancellation through in-flight workers and
// writing the bestmove result.
const Slack = 20 * time.Millisecond

// SearchOptions mirrors the subset of UCI `go` parameters the time manager
// understands. Zero-value optional fields are "not set"; use the Has*
// fields to distinguish "0 ms" from "absent".
type SearchOptions struct {
	Infinite bool

	MoveTime    time.Duration
	HasMoveTime bool

	WTime, BTime       time.Duration
	HasWTime, HasBTime bool

	WInc, BInc       time.Duration
	HasWInc, HasBInc bool

	MovesToGo    int
	HasMovesToGo bool

	Depth    uint8
	HasDepth bool
}

// Deadline is the outcome of time-manager policy: a start instant, an
// optional stop instant (absent means "no deadline, stop only on an
// external signal"), and an optional depth cap.
type Deadline struct {
	Start time.Time

	StopAt    time.Time
	HasStopAt bool

	DepthLimit    uint8
	HasDepthLimit bool
}

// Expired reports whether now is past the computed stop time. Always
// false if no stop time was set (infinite search).
func (d Deadline) Expired(now time.Time) bool {
	return d.HasStopAt && now.After(d.StopAt)
}

// ComputeDeadline applies the time-manager policy to turn search options
// into a concrete Deadline, anchored at start. The first matching branch
// wins:
//  1. Infinite: no stop time, external signal only.
//  2. Explicit movetime: stop = start + movetime - Slack.
//  3. Clock-based: select (time, inc) for the side to move; movestogo
//     divides the remaining clock evenly, otherwise increment-based
//     timing uses 1/20th of the clock plus half the increment.
//  4. No clock info at all: with a depth limit the search runs with no
//     stop time until that depth completes; without one it is
//     Unimplemented, since the engine will not guess a time budget.
func ComputeDeadline(opts SearchOptions, whiteToMove bool, start time.Time) (Deadline, error) {
	d := Deadline{Start: start}
	if opts.HasDepth {
		d.DepthLimit = opts.Depth
		d.HasDepthLimit = true
	}

	if opts.Infinite {
		return d, nil
	}

	if opts.HasMoveTime {
		stop, err := addChecked(start, opts.MoveTime-Slack)
		if err != nil {
			return Deadline{}, err
		}
		d.StopAt = stop
		d.HasStopAt = true
		return d, nil
	}

	clockTime, inc, hasTime, hasInc := selectClock(opts, whiteToMove)
	if !hasTime {
		if opts.HasDepth {
			return d, nil
		}
		return Deadline{}, ErrUnimplemented
	}

	var thinking time.Duration
	switch {
	case opts.HasMovesToGo && opts.MovesToGo > 0:
		thinking = clockTime / time.Duration(opts.MovesToGo)
	case hasInc:
		thinking = clockTime/20 + inc/2
	default:
		return Deadline{}, ErrUnimplemented
	}

	stop, err := addChecked(start, thinking-Slack)
	if err != nil {
		return Deadline{}, err
	}
	d.StopAt = stop
	d.HasStopAt = true
	return d, nil
}

func selectClock(opts SearchOptions, whiteToMove bool) (clockTime, inc time.Duration, hasTime, hasInc bool) {
	if whiteToMove {
		return opts.WTime, opts.WInc, opts.HasWTime, opts.HasWInc
	}
	return opts.BTime, opts.BInc, opts.HasBTime, opts.HasBInc
}

// addChecked adds d to t, failing with ErrDeadlineOverflow if the thinking
// time computed by the policy is negative — which happens whenever the
// movetime, or the share of the clock the policy allots, is smaller than
// Slack; the policy does not silently accept such a budget.
func addChecked(t time.Time, d time.Duration) (time.Time, error) {
	if d < 0 {
		return time.Time{}, ErrDeadlineOverflow
	}
	return t.Add(d), nil
}
