// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "testing"

func TestImmediateActivation(t *testing.T) {
	a, err := New(Config{Dim: 4})
	if err != nil {
		t.Fatal(err)
	}
	for iter := 0; iter < 2; iter++ {
		a.CheckActivation(iter)
		if a.IsActive() {
			t.Fatalf("activated at iter=%d, want not yet", iter)
		}
	}
	a.CheckActivation(2)
	if !a.IsActive() {
		t.Fatal("not activated at iter=2")
	}
}

func TestByIterationActivationLatches(t *testing.T) {
	a, err := New(Config{Dim: 4, Activation: ByIterationActivation{StartIter: 5}})
	if err != nil {
		t.Fatal(err)
	}
	for _, iter := range []int{2, 3, 4} {
		a.CheckActivation(iter)
		if a.IsActive() {
			t.Fatalf("activated at iter=%d, want not yet (start_iter=5)", iter)
		}
	}
	a.CheckActivation(5)
	if !a.IsActive() {
		t.Fatal("not activated at iter=5")
	}
	// Must stay latched on subsequent calls, including ones that would
	// individually not satisfy the policy.
	a.CheckActivation(0)
	if !a.IsActive() {
		t.Fatal("activation did not latch across subsequent calls")
	}
}

func TestByAccuracyActivation(t *testing.T) {
	a, err := New(Config{Dim: 4, Activation: ByAccuracyActivation{Epsilon: 1e-3}})
	if err != nil {
		t.Fatal(err)
	}
	a.CheckActivationResidual(1, 1, 10, 10)
	if a.IsActive() {
		t.Fatal("activated despite large residuals")
	}
	a.CheckActivationResidual(1e-4, 1e-4, 1, 1)
	if !a.IsActive() {
		t.Fatal("not activated despite residuals within tolerance")
	}
}

func TestByIterationOrAccuracyActivation(t *testing.T) {
	pol := ByIterationOrAccuracyActivation{Epsilon: 1e-3, StartIter: 10}
	a, err := New(Config{Dim: 4, Activation: pol})
	if err != nil {
		t.Fatal(err)
	}
	// Satisfies accuracy branch, not iteration branch.
	a.CheckActivationResidual(1e-4, 1e-4, 1, 1)
	if !a.IsActive() {
		t.Fatal("not activated via accuracy branch")
	}
}

func TestWrongSignatureIsNoOp(t *testing.T) {
	a, err := New(Config{Dim: 4, Activation: ByIterationActivation{StartIter: 2}})
	if err != nil {
		t.Fatal(err)
	}
	// ByIterationActivation only understands CheckActivation; residual
	// calls must be no-ops regardless of values passed.
	a.CheckActivationResidual(0, 0, 0, 0)
	if a.IsActive() {
		t.Fatal("residual check activated an iteration-only policy")
	}
}
