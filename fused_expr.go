// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func evalBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(float64) kont.Expr[B])
	result := f(current.(float64))
	return kont.Erased(result.Value), result.Frame
}

// ExprEvalBind samples the integrand at x and passes the ordinate to f.
// Fuses ExprPerform(Eval{X: x}) + ExprBind.
func ExprEvalBind[B any](x float64, f func(float64) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = evalBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Eval{X: x}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func tryEvalBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(kont.Either[error, float64]) kont.Expr[B])
	result := f(current.(kont.Either[error, float64]))
	return kont.Erased(result.Value), result.Frame
}

// ExprTryEvalBind samples the fallible integrand at x and passes the
// Either outcome to f. Fuses ExprPerform(TryEval{X: x}) + ExprBind.
func ExprTryEvalBind[B any](x float64, f func(kont.Either[error, float64]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = tryEvalBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = TryEval{X: x}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
