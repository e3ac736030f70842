// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "gonum.org/v1/gonum/mat"

// EmptyAccelerator is a no-op Accelerator, used to disable acceleration
// without requiring an outer solver to branch on whether it is enabled.
// It never activates, never records history, and never touches g.
type EmptyAccelerator struct{}

var _ Accelerator = EmptyAccelerator{}

// CheckActivation is a no-op.
func (EmptyAccelerator) CheckActivation(int) {}

// CheckActivationResidual is a no-op.
func (EmptyAccelerator) CheckActivationResidual(float64, float64, float64, float64) {}

// UpdateHistory is a no-op.
func (EmptyAccelerator) UpdateHistory(*mat.VecDense, *mat.VecDense, int) {}

// Accelerate is a no-op; g is returned untouched.
func (EmptyAccelerator) Accelerate(*mat.VecDense, *mat.VecDense, int) {}

// WasSuccessful always reports false.
func (EmptyAccelerator) WasSuccessful() bool { return false }

// IsActive always reports false.
func (EmptyAccelerator) IsActive() bool { return false }

// IsSafeguarding always reports false.
func (EmptyAccelerator) IsSafeguarding() bool { return false }

// GetMem always reports 0.
func (EmptyAccelerator) GetMem() int { return 0 }
