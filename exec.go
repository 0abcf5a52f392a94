// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// quadHandler implements kont.Handler for evaluation effects.
// Dispatch is immediate; evaluation never blocks.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type quadHandler[R any] struct {
	ctx *quadContext
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h quadHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	qop, ok := op.(quadDispatcher)
	if !ok {
		panic("quad: unhandled effect in quadHandler")
	}
	return qop.DispatchQuad(h.ctx), true
}

// Exec runs a Cont-world quadrature protocol against the source,
// evaluating every Eval effect on the calling goroutine.
func Exec[R any](src *Source, protocol kont.Eff[R]) R {
	h := quadHandler[R]{ctx: &src.ctx}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world quadrature protocol against the source,
// evaluating every Eval effect on the calling goroutine.
func ExecExpr[R any](src *Source, protocol kont.Expr[R]) R {
	h := quadHandler[R]{ctx: &src.ctx}
	return kont.HandleExpr(protocol, h)
}
