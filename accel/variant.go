// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "fmt"

// BroydenType selects which delta history backs the normal-equations
// matrix and right-hand side assembled by Accelerate.
type BroydenType int

const (
	// TypeII assembles M = FᵀF and rhs = Fᵀf. This is the default, and
	// the zero value, so that a zero-valued Config assembles TypeII.
	TypeII BroydenType = iota
	// TypeI assembles M = XᵀF and rhs = Xᵀf.
	TypeI
)

// String implements fmt.Stringer.
func (t BroydenType) String() string {
	switch t {
	case TypeI:
		return "TypeI"
	case TypeII:
		return "TypeII"
	default:
		return fmt.Sprintf("BroydenType(%d)", int(t))
	}
}

// Regularizer selects how the normal-equations matrix is regularized
// before the linear solve.
type Regularizer int

const (
	// NoRegularizer adds nothing to the diagonal of M.
	NoRegularizer Regularizer = iota
	// Tikhonov adds a fixed λ to every diagonal entry of M.
	Tikhonov
	// Frobenius adds β = λ·(‖X‖_F² + ‖F‖_F²) to every diagonal entry of M.
	Frobenius
)

// String implements fmt.Stringer.
func (r Regularizer) String() string {
	switch r {
	case NoRegularizer:
		return "NoRegularizer"
	case Tikhonov:
		return "Tikhonov"
	case Frobenius:
		return "Frobenius"
	default:
		return fmt.Sprintf("Regularizer(%d)", int(r))
	}
}

// Memory selects what happens to the history buffers when the write
// column wraps back around to the first column.
type Memory int

const (
	// RollingMemory overwrites the oldest column and keeps accumulating
	// iter. This is the default.
	RollingMemory Memory = iota
	// RestartedMemory drops the entire history and resets iter to 0.
	RestartedMemory
)

// String implements fmt.Stringer.
func (m Memory) String() string {
	switch m {
	case RollingMemory:
		return "RollingMemory"
	case RestartedMemory:
		return "RestartedMemory"
	default:
		return fmt.Sprintf("Memory(%d)", int(m))
	}
}

// Activation decides when an accelerator latches into the active state.
// Each implementation acts only on the CheckActivation call shape(s) it
// understands (iteration-based, residual-based, or, for
// ByIterationOrAccuracyActivation, both) and is a no-op for any other:
// early iterations are often too noisy or too short on history
// to extrapolate usefully, so most outer solvers delay acceleration by
// a handful of iterations or until the residual is already shrinking.
type Activation interface {
	// checkIteration is invoked by CheckActivation(iter) and reports
	// whether this policy judges the accelerator active at iter.
	checkIteration(iter int) bool

	// checkResidual is invoked by CheckActivationResidual and reports
	// whether this policy judges the accelerator active given the
	// supplied outer residual norms. Policies that do not key off
	// residuals return false unconditionally.
	checkResidual(rPrim, rDual, maxNormPrim, maxNormDual float64) bool

	// validate checks the policy's own parameters, independent of d/m.
	validate() error
}

// ImmediateActivation activates as soon as iter >= 2. This is the default
// activation policy.
type ImmediateActivation struct{}

func (ImmediateActivation) checkIteration(iter int) bool { return iter >= 2 }

func (ImmediateActivation) checkResidual(float64, float64, float64, float64) bool { return false }

func (ImmediateActivation) validate() error { return nil }

// ByIterationActivation activates once iter >= StartIter.
type ByIterationActivation struct {
	// StartIter is the first iteration at which the accelerator may
	// activate. Must be >= 2.
	StartIter int
}

func (a ByIterationActivation) checkIteration(iter int) bool { return iter >= a.StartIter }

func (ByIterationActivation) checkResidual(float64, float64, float64, float64) bool { return false }

func (a ByIterationActivation) validate() error {
	if a.StartIter < 2 {
		return fmt.Errorf("%w: start_iter = %d, want >= 2", ErrInvalidActivation, a.StartIter)
	}
	return nil
}

// ByAccuracyActivation activates once both outer primal and dual residuals
// fall under a relative+absolute tolerance band of width Epsilon.
type ByAccuracyActivation struct {
	// Epsilon is the tolerance scale. Must be >= 0.
	Epsilon float64
}

func (ByAccuracyActivation) checkIteration(int) bool { return false }

func (a ByAccuracyActivation) checkResidual(rPrim, rDual, maxNormPrim, maxNormDual float64) bool {
	return rPrim < a.Epsilon+a.Epsilon*maxNormPrim && rDual < a.Epsilon+a.Epsilon*maxNormDual
}

func (a ByAccuracyActivation) validate() error {
	if a.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon = %g, want >= 0", ErrInvalidActivation, a.Epsilon)
	}
	return nil
}

// ByIterationOrAccuracyActivation activates when either the iteration or
// the accuracy condition is met.
type ByIterationOrAccuracyActivation struct {
	Epsilon   float64
	StartIter int
}

func (a ByIterationOrAccuracyActivation) checkIteration(iter int) bool {
	return iter >= a.StartIter
}

func (a ByIterationOrAccuracyActivation) checkResidual(rPrim, rDual, maxNormPrim, maxNormDual float64) bool {
	return rPrim < a.Epsilon+a.Epsilon*maxNormPrim && rDual < a.Epsilon+a.Epsilon*maxNormDual
}

func (a ByIterationOrAccuracyActivation) validate() error {
	if a.StartIter < 2 {
		return fmt.Errorf("%w: start_iter = %d, want >= 2", ErrInvalidActivation, a.StartIter)
	}
	if a.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon = %g, want >= 0", ErrInvalidActivation, a.Epsilon)
	}
	return nil
}
