// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a quadrature protocol until the first effect
// suspension. Returns (result, nil) on completion, or (zero,
// suspension) if pending. A pending suspension's Op is the Eval
// (or TryEval) carrying the abscissa the algorithm needs next.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended evaluation on the source and
// resumes the protocol to its next suspension or completion.
// Dispatch is immediate; there is no would-block boundary.
//
// Callers driving a tabulated or remote integrand can bypass the
// source entirely: read the abscissa from susp.Op().(quad.Eval).X and
// feed the ordinate through susp.Resume themselves.
func Advance[R any](src *Source, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	qop, ok := susp.Op().(quadDispatcher)
	if !ok {
		panic("quad: unhandled effect in Advance")
	}
	return susp.Resume(qop.DispatchQuad(&src.ctx))
}
