// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

// Func is an integrand: a pure mapping from abscissa to ordinate.
// It must be finite at every point sampled, in particular at both
// interval endpoints. Behavior for non-finite values is undefined.
type Func func(x float64) float64

// FuncE is a fallible integrand for the Try world. A non-nil error
// short-circuits the run; see TryIntegrate.
type FuncE func(x float64) (float64, error)

// Integrate estimates the definite integral of f over [x1, x2] with
// Romberg's method under the default Options.
//
// Bounds are order-independent: if x1 > x2 they are swapped, and the
// result is NOT negated. Integrate(f, b, a) == Integrate(f, a, b),
// diverging from the usual calculus sign convention.
func Integrate(f Func, x1, x2 float64) Result {
	return Options{}.Integrate(f, x1, x2)
}

// Integrate estimates the definite integral of f over [x1, x2] with
// Romberg's method under o. Evaluates f directly on the calling
// goroutine, one sample at a time, without the effect machinery.
// Same bound convention as the package-level Integrate.
func (o Options) Integrate(f Func, x1, x2 float64) Result {
	s := newState(x1, x2, o)
	for {
		x, ok := s.next()
		if !ok {
			return s.res
		}
		s.absorb(f(x))
	}
}
