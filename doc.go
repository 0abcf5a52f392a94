// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package quad provides adaptive Romberg quadrature via algebraic effects
// on [code.hybscloud.com/kont].
//
// The integrand is an opaque capability: the effect operation [Eval]
// demands one ordinate per sample point, and a [Source] bound to a
// concrete function answers it. Refinement proceeds on a uniform,
// geometrically halved grid with Richardson extrapolation of the
// trapezoid estimates, trading 2^k+1 sample points at depth k for
// polynomial-order accuracy gains.
//
// # Architecture
//
//   - Core: a demand-driven refinement state machine shared by every driver.
//   - Termination: converged, precision floor, or max split — reported in [Result.Status] and, for the non-converged cases, mirrored in the sticky process-wide flag read by [Aborted].
//   - Observability: optional per-depth [Sample] stream over a bounded lock-free SPSC ring via [code.hybscloud.com/lfq]; [Trace.Next] waits past the empty boundary with [code.hybscloud.com/iox] backoff.
//
// # API Topologies
//
//   - Direct: [Integrate], [Options.Integrate], [TryIntegrate] — imperative drivers, no effect machinery on the hot path.
//   - Cont-world: [Protocol], [TryProtocol] evaluated by [Exec], [ExecError] on a [Source].
//   - Expr-world: Zero-allocation-loop variants [ExprProtocol] via [ExprEvalBind], evaluated by [ExecExpr]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based refinement loops.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepTry]/[AdvanceTry]) yield one [Eval] suspension per sample point, so an external runtime can inspect the abscissa and supply the ordinate itself (tabulated or remote integrands).
//
// # Conventions
//
// Bounds are order-independent: reversed bounds are swapped and the
// result is never negated, diverging from the usual calculus sign
// convention. Zero-valued [Options] fields select the package defaults.
// The integrand must be finite at every sampled point; non-finite
// behavior is undefined.
//
// # Example
//
//	res := quad.Integrate(func(x float64) float64 { return x * x }, 0, 1)
//	// res.Estimate ≈ 1.0/3, res.Status == quad.StatusConverged
//
//	// Stepping: supply ordinates from a table instead of a Source.
//	_, susp := quad.Step[quad.Result](quad.ExprProtocol(0, 1))
//	for susp != nil {
//		x := susp.Op().(quad.Eval).X
//		_, susp = susp.Resume(table.At(x))
//	}
package quad
