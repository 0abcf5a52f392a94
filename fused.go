// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/kont"
)

// EvalBind samples the integrand at x and passes the ordinate to f.
// Fuses Perform(Eval{X: x}) + Bind.
func EvalBind[B any](x float64, f func(float64) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Eval{X: x}), f)
}

// EvalMap samples the integrand at x and maps the ordinate through f.
// Fuses Perform(Eval{X: x}) + Map.
func EvalMap[B any](x float64, f func(float64) B) kont.Eff[B] {
	return kont.Map[kont.Resumed, float64, B](kont.Perform(Eval{X: x}), f)
}

// TryEvalBind samples the fallible integrand at x and passes the
// Either outcome to f. Fuses Perform(TryEval{X: x}) + Bind.
func TryEvalBind[B any](x float64, f func(kont.Either[error, float64]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(TryEval{X: x}), f)
}
