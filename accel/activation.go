// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

// CheckActivation latches Activated true when the configured iteration-
// based activation policy is satisfied. Activation is monotone: once
// latched, it stays true until EmptyHistory resets the accelerator.
// Calling this on a residual-gated policy (ByAccuracyActivation) is a
// no-op, since that policy only acts on CheckActivationResidual.
func (a *Default) CheckActivation(iter int) {
	if a.activated {
		return
	}
	if a.cfg.Activation.checkIteration(iter) {
		a.activated = true
	}
}

// CheckActivationResidual latches Activated true when the configured
// residual-based activation policy is satisfied by the supplied outer
// primal/dual residual norms. Calling this on an iteration-only policy
// (ImmediateActivation, ByIterationActivation) is a no-op.
func (a *Default) CheckActivationResidual(rPrim, rDual, maxNormPrim, maxNormDual float64) {
	if a.activated {
		return
	}
	if a.cfg.Activation.checkResidual(rPrim, rDual, maxNormPrim, maxNormDual) {
		a.activated = true
	}
}
