// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "log/slog"

// Default tuning constants.
const (
	defaultLambda = 1e-8
	defaultTau    = 2.0
	defaultMem    = 5

	// etaNormCap is a coefficient-magnitude safeguard: an extrapolation
	// whose ‖η‖₂ exceeds this is rejected regardless of whether the
	// linear solve itself reported success. A normal-equations solve can
	// be formally non-singular yet still return wildly inflated
	// coefficients on an ill-conditioned history, and such a step would
	// usually make the iteration worse, not better.
	etaNormCap = 1e4
)

// Config holds the parameters needed to construct an accelerator. Zero
// values for Lambda, Tau, Mem, and Activation are replaced by the package
// defaults (Tikhonov-free defaults below); Dim has no default and must be
// supplied.
type Config struct {
	// Dim is the length of the vectors being accelerated. Must be > 0.
	Dim int

	// Mem is the requested history capacity (number of columns). Must be
	// > 2; clamped to Dim at construction. Zero selects the default (5).
	Mem int

	// Broyden selects the Type-I/Type-II normal-equations formulation.
	// Zero value is TypeII, the default.
	Broyden BroydenType

	// Regularizer selects None/Tikhonov/Frobenius regularization. Zero
	// value is NoRegularizer, the default.
	Regularizer Regularizer

	// Lambda is the regularization scalar, used when Regularizer is
	// Tikhonov or Frobenius. Zero selects the default (1e-8).
	Lambda float64

	// MemoryPolicy selects Rolling/Restarted memory on buffer wrap. Zero
	// value is RollingMemory, the default.
	MemoryPolicy Memory

	// Activation selects the activation gate. Nil selects the default
	// (ImmediateActivation).
	Activation Activation

	// Safeguarded enables residual-norm safeguard bookkeeping. It does
	// not itself reject steps; see WasSuccessful and RecordSafeguard.
	Safeguarded bool

	// Tau is the safeguarding slack, used only when Safeguarded is true.
	// Zero selects the default (2.0). Must be > 1 when Safeguarded is
	// true; it is not checked otherwise.
	Tau float64

	// Logging enables diagnostics-log appends. When false, UpdateHistory
	// and Accelerate skip all diagnostics bookkeeping.
	Logging bool

	// Logger, if non-nil, additionally mirrors restart, attempt, and
	// safeguard diagnostics events as structured log records. Nil by
	// default, and nil-checked before every call, so it costs nothing
	// when unset.
	Logger *slog.Logger
}

// withDefaults returns a copy of cfg with zero-valued optional fields
// replaced by package defaults.
func (cfg Config) withDefaults() Config {
	if cfg.Mem == 0 {
		cfg.Mem = defaultMem
	}
	if cfg.Lambda == 0 {
		cfg.Lambda = defaultLambda
	}
	if cfg.Tau == 0 {
		cfg.Tau = defaultTau
	}
	if cfg.Activation == nil {
		cfg.Activation = ImmediateActivation{}
	}
	return cfg
}

// validate checks cfg after defaults have been applied. These checks
// fail construction outright; they do not merely log and continue,
// since a misconfigured accelerator that silently never accelerates is
// far harder to diagnose than one that refuses to construct.
func (cfg Config) validate() error {
	if cfg.Dim <= 0 {
		return &ConfigError{Cause: ErrInvalidDim, Field: "Dim", Value: cfg.Dim}
	}
	// Mem is checked against the requested value, before New clamps it
	// to Dim. A small Dim (1 or 2) therefore still clamps to an
	// effective history capacity below the 3-column minimum Accelerate
	// requires to assemble a normal-equations system; Accelerate simply
	// never finds enough valid columns and always reports failure in
	// that regime, rather than panicking.
	if cfg.Mem <= 2 {
		return &ConfigError{Cause: ErrInvalidMemory, Field: "Mem", Value: cfg.Mem}
	}
	if cfg.Safeguarded && cfg.Tau <= 1 {
		return &ConfigError{Cause: ErrInvalidTau, Field: "Tau", Value: cfg.Tau}
	}
	if err := cfg.Activation.validate(); err != nil {
		return &ConfigError{Cause: err, Field: "Activation", Value: cfg.Activation}
	}
	return nil
}
