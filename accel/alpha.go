// Copyright ©2026 The Cosmogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

// RecoverAlpha computes the length-(n+1) affine-combination weights that
// an extrapolation with coefficients eta (length n) implicitly applies.
// Writing the accelerated candidate as a convex-ish combination of the
// last n+1 history iterates g_0, ..., g_n,
//
//	g_new = sum_i alpha[i] * g_i,
//
// recovers the alpha Anderson's original two-term update leaves implicit:
//
//	alpha[0]   = eta[0]
//	alpha[i]   = eta[i] - eta[i-1]   for i in 1..n-1
//	alpha[n]   = 1 - eta[n-1]
//
// The result always sums to 1, up to floating-point error, regardless of
// eta's values. RecoverAlpha panics if eta is empty.
func RecoverAlpha(eta []float64) []float64 {
	n := len(eta)
	if n == 0 {
		panic("accel: RecoverAlpha requires a non-empty eta")
	}
	alpha := make([]float64, n+1)
	alpha[0] = eta[0]
	for i := 1; i < n; i++ {
		alpha[i] = eta[i] - eta[i-1]
	}
	alpha[n] = 1 - eta[n-1]
	return alpha
}
