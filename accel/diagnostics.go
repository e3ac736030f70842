// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import (
	"log/slog"
	"time"
)

// RestartReason names why a restart record was logged.
type RestartReason string

// MemoryFull is the only restart reason this package currently logs: the
// history buffer wrapped and MemoryPolicy was RestartedMemory.
const MemoryFull RestartReason = "memory_full"

// RestartRecord logs one history restart.
type RestartRecord struct {
	Iter   int
	Reason RestartReason
}

// AttemptTag names the outcome of one Accelerate call.
type AttemptTag string

const (
	// AttemptSucceeded means the extrapolation was applied to g.
	AttemptSucceeded AttemptTag = "succeeded"
	// AttemptNotEnoughCols means fewer than 3 history columns were
	// available yet, too few to pose a meaningful least-squares problem.
	AttemptNotEnoughCols AttemptTag = "not_enough_cols"
	// AttemptFailSingular means the LU solve reported a singular system.
	AttemptFailSingular AttemptTag = "fail_singular"
	// AttemptFailEtaNorm means ‖η‖₂ exceeded the coefficient cap.
	AttemptFailEtaNorm AttemptTag = "fail_eta_norm"
)

// AttemptRecord logs one Accelerate call's outcome.
type AttemptRecord struct {
	Iter     int
	Tag      AttemptTag
	Duration time.Duration
}

// SafeguardRecord logs one safeguarding decision made by the caller via
// RecordSafeguard.
type SafeguardRecord struct {
	Iter     int
	NewNorm  float64
	RefNorm  float64
	Tau      float64
	Accepted bool
}

// Diagnostics is the append-only collection of restart, attempt, and
// safeguard logs an accelerator accumulates while Config.Logging is
// true. All fields grow unboundedly while logging is enabled; callers
// that keep an accelerator alive across a long solve are expected to
// drain or disable logging (see Config.Logging) once diagnostics are
// no longer needed.
type Diagnostics struct {
	Restarts       []RestartRecord
	Attempts       []AttemptRecord
	Safeguards     []SafeguardRecord
	Regularization []float64
}

// Stats is a derived summary over Diagnostics, computed on demand rather
// than maintained incrementally, since it adds no new behavior beyond
// what the diagnostics logs already record.
type Stats struct {
	AttemptsTotal     int
	AttemptsSucceeded int
	RestartsTotal     int
	SafeguardAccepted int
	SafeguardDeclined int
}

// Stats summarizes the diagnostics collected so far.
func (d *Diagnostics) Stats() Stats {
	var s Stats
	s.AttemptsTotal = len(d.Attempts)
	for _, a := range d.Attempts {
		if a.Tag == AttemptSucceeded {
			s.AttemptsSucceeded++
		}
	}
	s.RestartsTotal = len(d.Restarts)
	for _, g := range d.Safeguards {
		if g.Accepted {
			s.SafeguardAccepted++
		} else {
			s.SafeguardDeclined++
		}
	}
	return s
}

func (d *Diagnostics) logRestart(logger *slog.Logger, iter int, reason RestartReason) {
	d.Restarts = append(d.Restarts, RestartRecord{Iter: iter, Reason: reason})
	if logger != nil {
		logger.Info("accel: history restart", "iter", iter, "reason", string(reason))
	}
}

func (d *Diagnostics) logAttempt(logger *slog.Logger, iter int, tag AttemptTag, dur time.Duration) {
	d.Attempts = append(d.Attempts, AttemptRecord{Iter: iter, Tag: tag, Duration: dur})
	if logger != nil {
		logger.Info("accel: acceleration attempt", "iter", iter, "tag", string(tag), "duration", dur)
	}
}

func (d *Diagnostics) logRegularization(beta float64) {
	d.Regularization = append(d.Regularization, beta)
}

// RecordSafeguard appends a safeguarding decision to the diagnostics log.
// Callers use this when Config.Safeguarded is true to record whether an
// accelerated step's residual norm satisfied newNorm <= tau*refNorm; this
// package does not compute the comparison itself, since the reference
// norm an accelerated step is measured against is problem-specific and
// belongs to the caller's outer solve, not to the history machinery here.
func (a *Default) RecordSafeguard(iter int, newNorm, refNorm float64, accepted bool) {
	if !a.cfg.Logging {
		return
	}
	a.diagnostics.Safeguards = append(a.diagnostics.Safeguards, SafeguardRecord{
		Iter:     iter,
		NewNorm:  newNorm,
		RefNorm:  refNorm,
		Tau:      a.cfg.Tau,
		Accepted: accepted,
	})
	if a.cfg.Logger != nil {
		a.cfg.Logger.Info("accel: safeguard decision",
			"iter", iter, "new_norm", newNorm, "ref_norm", refNorm, "tau", a.cfg.Tau, "accepted", accepted)
	}
}

// Diagnostics returns the accelerator's diagnostics logs. The returned
// value aliases internal state and must not be mutated by the caller.
func (a *Default) Diagnostics() *Diagnostics { return &a.diagnostics }
