// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestEmptyAcceleratorIsNoOp(t *testing.T) {
	var e EmptyAccelerator

	e.CheckActivation(100)
	e.CheckActivationResidual(0, 0, 0, 0)
	if e.IsActive() {
		t.Fatal("EmptyAccelerator activated")
	}
	if e.IsSafeguarding() {
		t.Fatal("EmptyAccelerator reports safeguarding")
	}
	if e.GetMem() != 0 {
		t.Fatalf("GetMem() = %d, want 0", e.GetMem())
	}

	g := vec(1, 2, 3)
	x := vec(4, 5, 6)
	e.UpdateHistory(g, x, 5)
	e.Accelerate(g, x, 5)

	if !mat.Equal(g, vec(1, 2, 3)) {
		t.Fatal("EmptyAccelerator modified g")
	}
	if e.WasSuccessful() {
		t.Fatal("EmptyAccelerator reported success")
	}
}

func TestUniformDispatchAcrossAccelerators(t *testing.T) {
	accelerators := []Accelerator{
		EmptyAccelerator{},
		must(New(Config{Dim: 3, Mem: 3})),
	}
	for _, a := range accelerators {
		g, x := vec(1, 1, 1), vec(2, 2, 2)
		a.CheckActivation(3)
		a.UpdateHistory(g, x, 3)
		a.Accelerate(g, x, 3)
		_ = a.WasSuccessful()
		_ = a.IsActive()
		_ = a.IsSafeguarding()
		_ = a.GetMem()
	}
}

func must(a *Default, err error) Accelerator {
	if err != nil {
		panic(err)
	}
	return a
}
