// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "gonum.org/v1/gonum/mat"

// UpdateHistory folds the latest (g, x) pair into the delta history. On
// the very first call it only captures x, g, and f = x - g as the
// "previous" triple (init phase); every subsequent call computes deltas
// against that previous triple, writes them into the next history
// column, and handles the buffer-wrap transition according to the
// configured Memory policy.
func (a *Default) UpdateHistory(g, x *mat.VecDense, iter int) {
	a.f.SubVec(x, g)

	if a.initPhase {
		a.xPrev.CopyVec(x)
		a.gPrev.CopyVec(g)
		a.fPrev.CopyVec(a.f)
		a.initPhase = false
		return
	}

	col := a.iter % a.mem
	if col == 0 && a.iter != 0 {
		switch a.cfg.MemoryPolicy {
		case RollingMemory:
			// No-op: the oldest column is simply overwritten below.
		case RestartedMemory:
			a.EmptyCaches()
			if a.cfg.Logging {
				a.diagnostics.logRestart(a.cfg.Logger, iter, MemoryFull)
			}
		}
	}

	a.setDeltaCol(a.X, col, x, a.xPrev)
	a.setDeltaCol(a.G, col, g, a.gPrev)
	a.setDeltaCol(a.F, col, a.f, a.fPrev)

	a.xPrev.CopyVec(x)
	a.gPrev.CopyVec(g)
	a.fPrev.CopyVec(a.f)

	a.iter++
}

// setDeltaCol writes cur-prev into column col of dst.
func (a *Default) setDeltaCol(dst *mat.Dense, col int, cur, prev *mat.VecDense) {
	for i := 0; i < a.dim; i++ {
		dst.Set(i, col, cur.AtVec(i)-prev.AtVec(i))
	}
}

// EmptyHistory fully wipes the accelerator: all matrices and vectors are
// zeroed, iter resets to 0, initPhase becomes true again, and the
// activation and success flags are cleared. The diagnostics logs are kept.
func (a *Default) EmptyHistory() {
	a.X.Scale(0, a.X)
	a.G.Scale(0, a.G)
	a.F.Scale(0, a.F)
	a.M.Scale(0, a.M)
	a.eta.ScaleVec(0, a.eta)
	a.xPrev.ScaleVec(0, a.xPrev)
	a.gPrev.ScaleVec(0, a.gPrev)
	a.fPrev.ScaleVec(0, a.fPrev)
	a.f.ScaleVec(0, a.f)
	a.iter = 0
	a.initPhase = true
	a.success = false
	a.activated = false
}

// EmptyCaches resets iter to 0 without touching buffer contents. Columns
// beyond l = min(iter, mem) are never read by Accelerate or by the
// assembly helpers, so the stale data left behind is harmless; it is
// simply never consulted until overwritten by a subsequent UpdateHistory
// call.
func (a *Default) EmptyCaches() {
	a.iter = 0
}
