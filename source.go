// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/atomix"
)

// quadContext holds the bound integrand(s) for effect dispatch,
// plus the cumulative evaluation counter.
type quadContext struct {
	f     Func
	fe    FuncE
	evals *atomix.Uint32
}

// Source binds an integrand for effect-world evaluation. Protocols
// are built separately and their Eval (and TryEval) operations are
// dispatched against a Source via Exec, ExecExpr, ExecError, or
// Advance.
//
// A Source may serve any number of runs; Evals accumulates across
// them.
type Source struct {
	ctx    quadContext
	serial Serial
	evals  atomix.Uint32
}

// New binds an infallible integrand. The returned Source handles both
// Eval and TryEval effects (TryEval never yields Left).
func New(f Func) *Source {
	s := &Source{serial: nextSerial()}
	s.ctx = quadContext{
		f:     f,
		fe:    func(x float64) (float64, error) { return f(x), nil },
		evals: &s.evals,
	}
	return s
}

// NewTry binds a fallible integrand. The returned Source handles
// TryEval effects only; dispatching Eval on it panics.
func NewTry(f FuncE) *Source {
	s := &Source{serial: nextSerial()}
	s.ctx = quadContext{
		f: func(x float64) float64 {
			panic("quad: Eval dispatched on fallible-only Source")
		},
		fe:    f,
		evals: &s.evals,
	}
	return s
}

// Serial returns the serial number assigned to this source.
func (s *Source) Serial() Serial {
	return s.serial
}

// Evals returns the total number of effect evaluations dispatched on
// this source so far. Samples consumed by the direct Integrate driver
// are not counted here; Result.Points covers those.
func (s *Source) Evals() uint64 {
	return uint64(s.evals.Load())
}
