// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"math"
	"testing"

	"code.hybscloud.com/quad"
)

func TestIntegrateConstant(t *testing.T) {
	quad.ResetAbort()
	c := 2.5
	res := quad.Integrate(func(float64) float64 { return c }, 0, 3)

	if !closeTo(res.Estimate, c*3, 1e-12) {
		t.Fatalf("estimate got %v, want %v", res.Estimate, c*3)
	}
	if res.Status != quad.StatusConverged {
		t.Fatalf("status got %v, want converged", res.Status)
	}
	// A constant converges as soon as MinSplit allows.
	if res.Depth != quad.DefaultMinSplit {
		t.Fatalf("depth got %d, want %d", res.Depth, quad.DefaultMinSplit)
	}
	if res.Points != (1<<quad.DefaultMinSplit)+1 {
		t.Fatalf("points got %d, want %d", res.Points, (1<<quad.DefaultMinSplit)+1)
	}
	if quad.Aborted() {
		t.Fatal("abort flag set by a converged run")
	}
}

func TestIntegrateSquare(t *testing.T) {
	quad.ResetAbort()
	res := quad.Integrate(square, 0, 1)

	if !closeTo(res.Estimate, 1.0/3, 1e-14) {
		t.Fatalf("estimate got %v, want 1/3", res.Estimate)
	}
	if res.Status != quad.StatusConverged {
		t.Fatalf("status got %v, want converged", res.Status)
	}
	if quad.Aborted() {
		t.Fatal("abort flag set by a converged run")
	}
}

func TestIntegrateSin(t *testing.T) {
	res := quad.Integrate(math.Sin, 0, math.Pi)
	if !closeTo(res.Estimate, 2, 1e-12) {
		t.Fatalf("estimate got %v, want 2", res.Estimate)
	}
	if res.Status != quad.StatusConverged {
		t.Fatalf("status got %v, want converged", res.Status)
	}
}

func TestOrderIndependence(t *testing.T) {
	// Reversed bounds never negate the result: both orders run the
	// identical computation after the swap.
	fwd := quad.Integrate(square, -1, 2)
	rev := quad.Integrate(square, 2, -1)

	if fwd.Estimate != rev.Estimate {
		t.Fatalf("reversed bounds: got %v, want %v", rev.Estimate, fwd.Estimate)
	}
	if fwd != rev {
		t.Fatalf("reversed bounds result got %+v, want %+v", rev, fwd)
	}
	if fwd.Estimate < 0 {
		t.Fatalf("estimate got %v, want positive-convention area", fwd.Estimate)
	}
}

func TestZeroOptionsMatchExplicitDefaults(t *testing.T) {
	explicit := quad.Options{
		RelTol:   quad.DefaultRelTol,
		AbsTol:   quad.DefaultAbsTol,
		MaxSplit: quad.DefaultMaxSplit,
		MinSplit: quad.DefaultMinSplit,
	}
	got := quad.Integrate(math.Exp, 0, 1)
	want := explicit.Integrate(math.Exp, 0, 1)
	if got != want {
		t.Fatalf("zero options got %+v, want %+v", got, want)
	}
}

func TestMaxSplitAbort(t *testing.T) {
	quad.ResetAbort()
	opt := quad.Options{MaxSplit: 2, MinSplit: 1}
	res := opt.Integrate(math.Exp, 0, 1)

	if res.Status != quad.StatusMaxSplit {
		t.Fatalf("status got %v, want max split", res.Status)
	}
	if res.Depth != 2 {
		t.Fatalf("depth got %d, want 2", res.Depth)
	}
	if res.Points != 5 {
		t.Fatalf("points got %d, want 5", res.Points)
	}
	if !quad.Aborted() {
		t.Fatal("abort flag not set by max-split termination")
	}
	// Still a usable, if coarse, estimate.
	if !closeTo(res.Estimate, math.E-1, 1e-4) {
		t.Fatalf("estimate got %v, want ≈ %v", res.Estimate, math.E-1)
	}
}

func TestPrecisionFloorAbort(t *testing.T) {
	quad.ResetAbort()
	// At lo = 1e16 the unit in the last place is 2, so the half-step
	// stops moving the bound after the first refinement. MinSplit
	// keeps the convergence test out of the way.
	opt := quad.Options{MinSplit: 30, MaxSplit: 40}
	res := opt.Integrate(func(float64) float64 { return 1 }, 1e16, 1e16+4)

	if res.Status != quad.StatusPrecisionFloor {
		t.Fatalf("status got %v, want precision floor", res.Status)
	}
	if res.Depth != 1 {
		t.Fatalf("depth got %d, want 1", res.Depth)
	}
	if res.Points != 3 {
		t.Fatalf("points got %d, want 3", res.Points)
	}
	if res.Estimate != 4 {
		t.Fatalf("estimate got %v, want 4", res.Estimate)
	}
	if !quad.Aborted() {
		t.Fatal("abort flag not set by precision-floor termination")
	}
}

func TestDegenerateInterval(t *testing.T) {
	quad.ResetAbort()
	res := quad.Integrate(square, 1, 1)

	if res.Estimate != 0 {
		t.Fatalf("estimate got %v, want 0", res.Estimate)
	}
	// Zero-width refinement hits the precision floor immediately.
	if res.Status != quad.StatusPrecisionFloor {
		t.Fatalf("status got %v, want precision floor", res.Status)
	}
	if res.Depth != 0 || res.Points != 2 {
		t.Fatalf("depth/points got %d/%d, want 0/2", res.Depth, res.Points)
	}
}

func TestAbortFlagSticky(t *testing.T) {
	quad.ResetAbort()

	// Force a non-converged run.
	opt := quad.Options{MaxSplit: 1, MinSplit: 1, RelTol: 1e-300, AbsTol: 1e-300}
	opt.Integrate(math.Exp, 0, 1)
	if !quad.Aborted() {
		t.Fatal("abort flag not set")
	}

	// A later converged run must not clear it.
	res := quad.Integrate(square, 0, 1)
	if res.Status != quad.StatusConverged {
		t.Fatalf("status got %v, want converged", res.Status)
	}
	if !quad.Aborted() {
		t.Fatal("converged run cleared the sticky abort flag")
	}

	quad.ResetAbort()
	if quad.Aborted() {
		t.Fatal("ResetAbort did not clear the flag")
	}
}

func TestMinSplitDelaysConvergence(t *testing.T) {
	// A linear integrand is exact at every depth, yet the convergence
	// test must not fire before MinSplit.
	opt := quad.Options{MinSplit: 7}
	res := opt.Integrate(func(x float64) float64 { return 2*x + 1 }, 0, 2)

	if res.Depth != 7 {
		t.Fatalf("depth got %d, want 7", res.Depth)
	}
	if res.Points != 129 {
		t.Fatalf("points got %d, want 129", res.Points)
	}
	if !closeTo(res.Estimate, 6, 1e-12) {
		t.Fatalf("estimate got %v, want 6", res.Estimate)
	}
}
