// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import (
	"math"
	"time"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas64"
	"gonum.org/v1/gonum/mat"
)

// Accelerator is the contract both Default and EmptyAccelerator satisfy,
// enabling an outer solver to dispatch uniformly whether or not
// acceleration is actually enabled.
type Accelerator interface {
	// CheckActivation latches Activated true according to the
	// configured iteration-based policy.
	CheckActivation(iter int)

	// CheckActivationResidual latches Activated true according to the
	// configured residual-based policy.
	CheckActivationResidual(rPrim, rDual, maxNormPrim, maxNormDual float64)

	// UpdateHistory folds in the latest (g, x) pair observed at iter.
	UpdateHistory(g, x *mat.VecDense, iter int)

	// Accelerate may overwrite g in place with an extrapolated
	// candidate.
	Accelerate(g, x *mat.VecDense, iter int)

	// WasSuccessful reports whether the most recent Accelerate call
	// applied an update to g.
	WasSuccessful() bool

	// IsActive reports whether the accelerator has latched active.
	IsActive() bool

	// IsSafeguarding reports whether residual-norm safeguarding
	// bookkeeping is enabled.
	IsSafeguarding() bool

	// GetMem reports the history capacity (number of columns).
	GetMem() int
}

// Default is the full Anderson accelerator. It owns all of its buffers;
// the x and g vectors passed to UpdateHistory and Accelerate are
// borrowed, never retained, except that Accelerate may overwrite g's
// contents in place.
type Default struct {
	cfg Config

	dim int
	mem int

	iter      int
	initPhase bool
	activated bool
	success   bool

	// X, G, F are dim x mem column-wise delta histories: Δx, Δg, Δf.
	X, G, F *mat.Dense
	// M is an mem x mem normal-equations workspace; only the leading
	// l x l submatrix is ever read, where l = min(iter, mem).
	M *mat.Dense
	// eta is a length-mem coefficient workspace; only the leading l
	// entries are ever read.
	eta *mat.VecDense

	xPrev, gPrev, fPrev *mat.VecDense
	f                    *mat.VecDense

	diagnostics Diagnostics
}

// New constructs a Default accelerator from cfg, applying defaults to
// unset optional fields and validating the result. It returns a
// *ConfigError, wrapping one of the Err* sentinels, if cfg is invalid.
func New(cfg Config) (*Default, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dim := cfg.Dim
	mem := cfg.Mem
	if mem > dim {
		// Dim < 3 clamps mem below the 3-column minimum Accelerate
		// needs; that is not an error here, Accelerate degrades to
		// always reporting AttemptNotEnoughCols in that regime.
		mem = dim
	}

	a := &Default{
		cfg:       cfg,
		dim:       dim,
		mem:       mem,
		initPhase: true,

		X:   mat.NewDense(dim, mem, nil),
		G:   mat.NewDense(dim, mem, nil),
		F:   mat.NewDense(dim, mem, nil),
		M:   mat.NewDense(mem, mem, nil),
		eta: mat.NewVecDense(mem, nil),

		xPrev: mat.NewVecDense(dim, nil),
		gPrev: mat.NewVecDense(dim, nil),
		fPrev: mat.NewVecDense(dim, nil),
		f:     mat.NewVecDense(dim, nil),
	}
	return a, nil
}

// GetMem reports the (possibly clamped) history capacity.
func (a *Default) GetMem() int { return a.mem }

// WasSuccessful reports whether the most recent Accelerate call applied
// an extrapolated update to g.
func (a *Default) WasSuccessful() bool { return a.success }

// IsActive reports whether CheckActivation/CheckActivationResidual has
// latched the accelerator active.
func (a *Default) IsActive() bool { return a.activated }

// IsSafeguarding reports whether this accelerator was configured with
// residual-norm safeguarding.
func (a *Default) IsSafeguarding() bool { return a.cfg.Safeguarded }

// validColumns returns l = min(iter, mem), the number of history columns
// that currently hold valid deltas.
func (a *Default) validColumns() int {
	if a.iter < a.mem {
		return a.iter
	}
	return a.mem
}

// Accelerate attempts to replace g with an extrapolated candidate
// g - G_l*η_l, where η_l solves the (possibly regularized) normal
// equations assembled from the first l = min(iter, mem) history columns.
// On any failure (insufficient history, singular solve, or an
// unreasonably large η) g is left untouched and WasSuccessful reports
// false; these are routine, expected outcomes of a fixed-point solve and
// are recorded as diagnostics tags, not surfaced as Go errors.
func (a *Default) Accelerate(g, x *mat.VecDense, iter int) {
	start := time.Now()
	a.success = false

	l := a.validColumns()
	if l < 3 {
		a.logAttempt(iter, AttemptNotEnoughCols, time.Since(start))
		return
	}

	xl := a.X.Slice(0, a.dim, 0, l)
	gl := a.G.Slice(0, a.dim, 0, l).(*mat.Dense)
	fl := a.F.Slice(0, a.dim, 0, l)

	ml := a.M.Slice(0, l, 0, l).(*mat.Dense)
	etal := a.eta.SliceVec(0, l).(*mat.VecDense)

	switch a.cfg.Broyden {
	case TypeI:
		ml.Mul(xl.T(), fl)
		etal.MulVec(xl.T(), a.f)
	default: // TypeII
		ml.Mul(fl.T(), fl)
		etal.MulVec(fl.T(), a.f)
	}

	a.regularize(ml, xl, fl, l)

	var lu mat.LU
	lu.Factorize(ml)
	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, false, etal); err != nil {
		a.logAttempt(iter, AttemptFailSingular, time.Since(start))
		return
	}

	if mat.Norm(&sol, 2) > etaNormCap {
		a.logAttempt(iter, AttemptFailEtaNorm, time.Since(start))
		return
	}

	// g <- g - G_l*sol via a single BLAS-level gemv, alpha=-1, beta=1.
	blas64.Gemv(blas.NoTrans, -1, gl.RawMatrix(), sol.RawVector(), 1, g.RawVector())

	a.success = true
	a.logAttempt(iter, AttemptSucceeded, time.Since(start))
}

// regularize adds the configured regularization to the diagonal of ml, the
// leading l x l submatrix of M.
func (a *Default) regularize(ml *mat.Dense, xl, fl mat.Matrix, l int) {
	switch a.cfg.Regularizer {
	case NoRegularizer:
		return
	case Tikhonov:
		for i := 0; i < l; i++ {
			ml.Set(i, i, ml.At(i, i)+a.cfg.Lambda)
		}
	case Frobenius:
		beta := a.cfg.Lambda * (math.Pow(mat.Norm(xl, 2), 2) + math.Pow(mat.Norm(fl, 2), 2))
		for i := 0; i < l; i++ {
			ml.Set(i, i, ml.At(i, i)+beta)
		}
		if a.cfg.Logging {
			a.diagnostics.logRegularization(beta)
		}
	}
}

func (a *Default) logAttempt(iter int, tag AttemptTag, dur time.Duration) {
	if !a.cfg.Logging {
		return
	}
	a.diagnostics.logAttempt(a.cfg.Logger, iter, tag, dur)
}
