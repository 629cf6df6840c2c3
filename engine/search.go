package engine

import (
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sixfold-origami/patch/board"
)

// Searcher runs one negamax pass to a fixed horizon, honoring a deadline
// polled on entry to every node. The driver builds a fresh Searcher for
// each iterative-deepening depth, sharing one sem across the whole
// Engine so the worker budget is capped per process, not per pass.
//
// sem bounds how many node expansions run as their own goroutine at once.
// Sibling exploration beyond this budget falls back to running inline
// rather than blocking on a permit, since blocking here could deadlock a
// parent against its own children. A nil sem (the zero value, as tests
// construct directly) disables fan-out entirely and runs every sibling
// inline — still correct, just serial.
type Searcher struct {
	HorizonDepth uint8
	Deadline     Deadline
	sem          *semaphore.Weighted
}

// Evaluate is the negamax entry point. The caller invokes it with
// alpha=MinScore(), beta=MaxScore(), depth=0; recursive calls thread
// through tighter bounds and increasing depth.
func (s *Searcher) Evaluate(pos board.Position, alpha, beta Score, depth uint8) BoardEvaluation {
	switch pos.Status() {
	case board.Checkmate:
		return ScoreEval(Mate(0), depth)
	case board.Stalemate:
		return ScoreEval(CP(0), depth)
	}

	if depth == s.HorizonDepth {
		return s.quiescence(pos, alpha, beta, depth)
	}

	if s.Deadline.Expired(time.Now()) {
		return ScoreEarlyEval(Evaluate(&pos), depth)
	}

	return s.expand(pos, alpha, beta, depth)
}

// nodeState is the per-node shared mutable cell: the best evaluation found
// among siblings explored so far, and the tightest alpha observed. Readers
// take the lock only to copy out a snapshot; writers release it before any
// recursive call, so no lock is ever held across recursion.
type nodeState struct {
	mu    sync.RWMutex
	best  BoardEvaluation
	alpha Score
}

// expand fans sibling moves out across goroutines bounded by workerSem,
// with any-order early completion: the first worker to observe a beta
// cutoff causes expand to return immediately with that cutting value,
// without waiting on the remaining in-flight siblings. Because dispatch
// uses a snapshot of alpha taken at dispatch time rather than continuously
// the tightest value, pruning is sound but sometimes weaker than a serial
// search's — it only ever does extra work, never misclassifies a line.
func (s *Searcher) expand(pos board.Position, alpha, beta Score, depth uint8) BoardEvaluation {
	moves := pos.GenerateLegalMoves()

	node := &nodeState{best: MinEval(), alpha: alpha}
	cutoffCh := make(chan BoardEvaluation, 1)
	var wg sync.WaitGroup

	for _, mv := range moves {
		mv := mv

		select {
		case lifted := <-cutoffCh:
			return lifted
		default:
		}

		node.mu.RLock()
		alphaSnapshot := node.alpha
		node.mu.RUnlock()

		child := pos.Make(mv)
		childAlpha := beta.Flip()
		childBeta := alphaSnapshot.Flip()

		wg.Add(1)
		task := func() {
			defer wg.Done()
			eval := s.Evaluate(child, childAlpha, childBeta, depth+1)
			lifted := FromChild(eval, mv)

			node.mu.Lock()
			if lifted.Greater(node.best) {
				node.best = node.best.Overwrite(lifted)
			}
			if lifted.Score.Greater(node.alpha) {
				node.alpha = lifted.Score
			}
			cutoff := lifted.Score.Cmp(beta) >= 0
			node.mu.Unlock()

			if cutoff {
				select {
				case cutoffCh <- lifted:
				default:
				}
			}
		}

		if s.sem != nil && s.sem.TryAcquire(1) {
			go func() {
				defer s.sem.Release(1)
				task()
			}()
		} else {
			task()
		}
	}

	allDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(allDone)
	}()

	select {
	case lifted := <-cutoffCh:
		return lifted
	case <-allDone:
		return node.best
	}
}

// quiescence restricts exploration to captures, seeded by a stand-pat
// evaluation that models the side to move declining every capture. It
// recurses into itself rather than Evaluate, so there is no horizon — it
// terminates only when captures run out or the deadline passes.
func (s *Searcher) quiescence(pos board.Position, alpha, beta Score, depth uint8) BoardEvaluation {
	if s.Deadline.Expired(time.Now()) {
		return ScoreEarlyEval(Evaluate(&pos), depth)
	}

	standPat := Evaluate(&pos)
	if standPat.Cmp(beta) >= 0 {
		return ScoreEval(standPat, depth)
	}
	if standPat.Greater(alpha) {
		alpha = standPat
	}

	captures := capturesOnly(pos.GenerateLegalMoves())
	if len(captures) == 0 {
		return ScoreEval(standPat, depth)
	}

	node := &nodeState{best: ScoreEval(standPat, depth), alpha: alpha}
	cutoffCh := make(chan BoardEvaluation, 1)
	var wg sync.WaitGroup

	for _, mv := range captures {
		mv := mv

		node.mu.RLock()
		alphaSnapshot := node.alpha
		node.mu.RUnlock()

		child := pos.Make(mv)
		childAlpha := beta.Flip()
		childBeta := alphaSnapshot.Flip()

		wg.Add(1)
		task := func() {
			defer wg.Done()
			eval := s.quiescence(child, childAlpha, childBeta, depth+1)
			lifted := FromChild(eval, mv)

			node.mu.Lock()
			if lifted.Greater(node.best) {
				node.best = node.best.Overwrite(lifted)
			}
			if lifted.Score.Greater(node.alpha) {
				node.alpha = lifted.Score
			}
			cutoff := lifted.Score.Cmp(beta) >= 0
			node.mu.Unlock()

			if cutoff {
				select {
				case cutoffCh <- lifted:
				default:
				}
			}
		}

		if s.sem != nil && s.sem.TryAcquire(1) {
			go func() {
				defer s.sem.Release(1)
				task()
			}()
		} else {
			task()
		}
	}

	allDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(allDone)
	}()

	select {
	case lifted := <-cutoffCh:
		return lifted
	case <-allDone:
		return node.best
	}
}

func capturesOnly(moves []board.Move) []board.Move {
	captures := moves[:0:0]
	for _, mv := range moves {
		if mv.IsCapture() {
			captures = append(captures, mv)
		}
	}
	return captures
}
