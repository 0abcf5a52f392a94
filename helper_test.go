// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"math"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/quad"
)

// driveExpr drives a protocol to completion on src via Step+Advance loop.
// Used by stepping tests to exercise the suspension path.
func driveExpr[R any](src *quad.Source, protocol kont.Expr[R]) R {
	result, susp := quad.Step[R](protocol)
	for susp != nil {
		result, susp = quad.Advance(src, susp)
	}
	return result
}

// square is the reference integrand for exactness tests:
// ∫ x² over [0,1] = 1/3.
func square(x float64) float64 { return x * x }

// closeTo reports a-b within rel relative error (abs fallback near 0).
func closeTo(a, b, rel float64) bool {
	d := math.Abs(a - b)
	if d <= rel {
		return true
	}
	return d <= rel*math.Max(math.Abs(a), math.Abs(b))
}
