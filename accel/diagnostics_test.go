// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDiagnosticsRecordsMatchSequenceOfEvents(t *testing.T) {
	a, err := New(Config{Dim: 3, Mem: 3, MemoryPolicy: RestartedMemory, Logging: true})
	if err != nil {
		t.Fatal(err)
	}
	a.UpdateHistory(vec(0, 0, 0), vec(0, 0, 0), 0) // init
	for k := 0; k < 4; k++ {
		gk, xk := float64(k), float64(k+1)
		a.UpdateHistory(vec(gk, gk, gk), vec(xk, xk, xk), k+1)
	}

	want := []RestartRecord{
		{Iter: 4, Reason: MemoryFull},
	}
	if diff := cmp.Diff(want, a.Diagnostics().Restarts); diff != "" {
		t.Fatalf("Restarts mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsAttemptsIgnoreDuration(t *testing.T) {
	a, err := New(Config{Dim: 4, Mem: 5, Logging: true})
	if err != nil {
		t.Fatal(err)
	}
	one := vec(1, 1, 1, 1)
	a.UpdateHistory(one, one, 0)
	for k := 1; k <= 3; k++ {
		a.UpdateHistory(one, one, k)
	}
	g := vec(1, 1, 1, 1)
	a.Accelerate(g, one, 3)

	want := []AttemptRecord{
		{Iter: 3, Tag: AttemptFailSingular},
	}
	diff := cmp.Diff(want, a.Diagnostics().Attempts, cmpopts.IgnoreFields(AttemptRecord{}, "Duration"))
	if diff != "" {
		t.Fatalf("Attempts mismatch (-want +got):\n%s", diff)
	}
	for _, rec := range a.Diagnostics().Attempts {
		if rec.Duration < 0 {
			t.Errorf("Duration = %v, want >= 0", rec.Duration)
		}
	}
}
