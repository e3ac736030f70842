// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package accel implements Anderson acceleration for fixed-point iterations

	x_{k+1} = g(x_k),  f(x_k) = x_k - g(x_k),

as commonly used to speed up operator-splitting solvers such as ADMM. Given
a sequence of iterates (x_k, g_k) produced by an outer solver, Accelerate
opportunistically replaces the next candidate g_k with an extrapolated value
derived from a short history of past iterates, under favorable conditions
converging faster than the underlying fixed-point map while degrading
gracefully to it whenever the extrapolation looks unreliable.

Background

Anderson acceleration keeps the last m pairs of deltas

	Δx_i = x_i - x_{i-1},  Δg_i = g_i - g_{i-1},  Δf_i = Δx_i - Δg_i

and solves a small (at most m×m) linear system for coefficients η that fit
the current residual f by the Δf history F: the least-squares normal
equations FᵀF·η = Fᵀf (Type-II, the package default) or the projected
equations XᵀF·η = Xᵀf, with X the Δx history (Type-I). The extrapolated
candidate is then

	g_new = g - G·η,

where G's columns are the Δg history. This package does not evaluate g, does
not own any problem structure, and never mutates x; only the candidate g
passed to Accelerate may be overwritten, and only when the solve is judged
reliable.

Using accel

Construct a Default with New and a Config describing the history length,
regularization, memory policy, and activation policy. Each outer iteration,
call CheckActivation (or CheckActivationResidual, for residual-gated
policies), then UpdateHistory, then Accelerate:

	acc, err := accel.New(cfg)
	...
	for k := 0; ; k++ {
		acc.CheckActivation(k)
		acc.UpdateHistory(g, x, k)
		acc.Accelerate(g, x, k)
		if acc.WasSuccessful() {
			// g has been replaced by the extrapolated candidate.
		}
	}

When acceleration should be disabled entirely, use EmptyAccelerator, which
satisfies the same Accelerator interface as a pure no-op, so callers never
need to branch on whether acceleration is enabled.

Safeguarding

When Config.Safeguarded is true, the accelerator does not itself decide
whether to keep an extrapolated step; it only tracks whether Accelerate
applied one (WasSuccessful) and records the caller's accept/decline
decisions via RecordSafeguard. The reference residual norm an accelerated
step is compared against is supplied by the caller and is otherwise opaque
to this package, which owns no problem-specific residual machinery.

Numerics

All dense linear algebra is performed with gonum.org/v1/gonum/mat and
gonum.org/v1/gonum/blas64: the normal-equations solve uses a general LU
factorization with partial pivoting (mat.LU), and the final candidate
update g ← g - G·η is applied as a single BLAS-level gemv with α = -1,
β = 1.

References

  - Anderson, D.G. (1965). Iterative procedures for nonlinear integral
    equations. Journal of the ACM, 12(4), 547-560.
  - Walker, H.F. and Ni, P. (2011). Anderson acceleration for fixed-point
    iterations. SIAM Journal on Numerical Analysis, 49(4), 1715-1735.
  - Fu, A., Zhang, J., and Boyd, S. (2020). Anderson accelerated Douglas-
    Rachford splitting. SIAM Journal on Scientific Computing, 42(6).
*/
package accel
