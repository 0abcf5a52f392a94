// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// Eval is the effect operation for sampling the integrand at X.
// Perform(Eval{X: x}) resumes with the ordinate f(x).
type Eval struct {
	kont.Phantom[float64]
	X float64
}

// DispatchQuad handles Eval on the bound integrand. Evaluation is
// pure and immediate; unlike a transport dispatch there is no
// would-block boundary, so no error return.
func (e Eval) DispatchQuad(ctx *quadContext) kont.Resumed {
	ctx.evals.Add(1)
	return ctx.f(e.X)
}

// TryEval is the effect operation for sampling a fallible integrand
// at X. Perform(TryEval{X: x}) resumes with Either[error, float64]:
// Right(f(x)) on success, Left(err) when the integrand fails.
type TryEval struct {
	kont.Phantom[kont.Either[error, float64]]
	X float64
}

// DispatchQuad handles TryEval on the bound fallible integrand.
func (e TryEval) DispatchQuad(ctx *quadContext) kont.Resumed {
	ctx.evals.Add(1)
	y, err := ctx.fe(e.X)
	if err != nil {
		return kont.Left[error, float64](err)
	}
	return kont.Right[error](y)
}

// quadDispatcher is the structural interface for evaluation effects.
type quadDispatcher interface {
	DispatchQuad(ctx *quadContext) kont.Resumed
}
