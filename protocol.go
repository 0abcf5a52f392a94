// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// Protocol builds the whole Romberg computation for [x1, x2] under
// the default Options as a Cont-world protocol: one Eval effect per
// sample point, terminating with the Result. Evaluate with Exec, or
// Reify and drive with Step/Advance.
//
// A protocol value captures mutable refinement state and is
// single-use, like a suspension.
func Protocol(x1, x2 float64) kont.Eff[Result] {
	return Options{}.Protocol(x1, x2)
}

// Protocol builds the Romberg computation for [x1, x2] under o.
// See the package-level Protocol.
func (o Options) Protocol(x1, x2 float64) kont.Eff[Result] {
	return Loop(newState(x1, x2, o), protocolStep)
}

func protocolStep(s *state) kont.Eff[kont.Either[*state, Result]] {
	x, ok := s.next()
	if !ok {
		return kont.Pure(kont.Right[*state, Result](s.res))
	}
	return EvalBind(x, func(y float64) kont.Eff[kont.Either[*state, Result]] {
		s.absorb(y)
		return kont.Pure(kont.Left[*state, Result](s))
	})
}

// ExprProtocol builds the Romberg computation for [x1, x2] under the
// default Options as an Expr-world protocol. Evaluate with ExecExpr
// or drive with Step/Advance. Single-use, like Protocol.
func ExprProtocol(x1, x2 float64) kont.Expr[Result] {
	return Options{}.ExprProtocol(x1, x2)
}

// ExprProtocol builds the Expr-world Romberg computation for
// [x1, x2] under o. See the package-level ExprProtocol.
func (o Options) ExprProtocol(x1, x2 float64) kont.Expr[Result] {
	return ExprLoop(newState(x1, x2, o), exprProtocolStep)
}

func exprProtocolStep(s *state) kont.Expr[kont.Either[*state, Result]] {
	x, ok := s.next()
	if !ok {
		return kont.ExprReturn(kont.Right[*state, Result](s.res))
	}
	return ExprEvalBind(x, func(y float64) kont.Expr[kont.Either[*state, Result]] {
		s.absorb(y)
		return kont.ExprReturn(kont.Left[*state, Result](s))
	})
}

// TryProtocol builds the Romberg computation over a fallible
// integrand under the default Options: one TryEval effect per sample
// point, throwing the integrand's error through the Error effect.
// Evaluate with ExecError, or Reify and drive with StepTry/AdvanceTry.
func TryProtocol(x1, x2 float64) kont.Eff[Result] {
	return Options{}.TryProtocol(x1, x2)
}

// TryProtocol builds the fallible Romberg computation for [x1, x2]
// under o. See the package-level TryProtocol.
func (o Options) TryProtocol(x1, x2 float64) kont.Eff[Result] {
	return Loop(newState(x1, x2, o), tryProtocolStep)
}

func tryProtocolStep(s *state) kont.Eff[kont.Either[*state, Result]] {
	x, ok := s.next()
	if !ok {
		return kont.Pure(kont.Right[*state, Result](s.res))
	}
	return TryEvalBind(x, func(e kont.Either[error, float64]) kont.Eff[kont.Either[*state, Result]] {
		if err, isErr := e.GetLeft(); isErr {
			return kont.ThrowError[error, kont.Either[*state, Result]](err)
		}
		y, _ := e.GetRight()
		s.absorb(y)
		return kont.Pure(kont.Left[*state, Result](s))
	})
}
