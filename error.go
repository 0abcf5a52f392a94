// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// quadErrorHandler handles both evaluation and error effects.
// Evaluation ops dispatch immediately; error ops short-circuit on
// Throw. Value type: passed to evalFrames on the stack, avoiding heap
// allocation.
type quadErrorHandler[E, A any] struct {
	ctx    *quadContext
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Quad+Error handler.
// Dispatch order: Quad → Error.
func (h quadErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if qop, ok := op.(quadDispatcher); ok {
		return qop.DispatchQuad(h.ctx), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("quad: unhandled effect in quadErrorHandler")
}

// ExecError runs a quadrature protocol with error handling against
// the source. Returns Either[E, R] — Right on success, Left on Throw.
func ExecError[E, R any](src *Source, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := quadErrorHandler[E, R]{ctx: &src.ctx, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr quadrature protocol with error handling
// against the source. Returns Either[E, R] — Right on success, Left
// on Throw.
func ExecErrorExpr[E, R any](src *Source, protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := quadErrorHandler[E, R]{ctx: &src.ctx, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// StepTry evaluates a quadrature protocol with error support until
// the first effect suspension. Returns (Either[E, R], nil) on
// completion or error, or (zero, suspension) if pending.
func StepTry[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceTry dispatches the suspended operation on the source.
// Evaluation ops dispatch immediately. Error ops are eager: Throw
// discards the suspension and returns Left.
func AdvanceTry[E, R any](src *Source, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	if qop, ok := susp.Op().(quadDispatcher); ok {
		result, next := susp.Resume(qop.DispatchQuad(&src.ctx))
		return result, next
	}
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil
		}
		result, next := susp.Resume(v)
		return result, next
	}
	panic("quad: unhandled effect in AdvanceTry")
}

// TryIntegrate estimates the definite integral of a fallible
// integrand under the default Options. The first non-nil error from f
// short-circuits the run and is returned as Left; otherwise Right
// carries the same Result Integrate would produce.
//
// The algorithm's own soft failures (precision floor, max split) are
// not errors: they surface in Result.Status and the sticky abort
// flag, never as Left.
func TryIntegrate(f FuncE, x1, x2 float64) kont.Either[error, Result] {
	return Options{}.TryIntegrate(f, x1, x2)
}

// TryIntegrate estimates the definite integral of a fallible
// integrand under o. See the package-level TryIntegrate.
func (o Options) TryIntegrate(f FuncE, x1, x2 float64) kont.Either[error, Result] {
	src := NewTry(f)
	return ExecError[error](src, o.TryProtocol(x1, x2))
}
