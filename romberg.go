// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
)

// Default tolerances and refinement bounds, applied by Options for
// any field left at its zero value.
const (
	DefaultRelTol   = 1e-15
	DefaultAbsTol   = 1e-40
	DefaultMaxSplit = 16
	DefaultMinSplit = 5
)

// Status reports how an integration terminated.
type Status uint8

const (
	// StatusConverged: successive Romberg estimates met a tolerance
	// at or beyond MinSplit.
	StatusConverged Status = iota
	// StatusPrecisionFloor: the next half-step vanished at native
	// float64 resolution before a tolerance was met. The result is
	// the best estimate obtained so far.
	StatusPrecisionFloor
	// StatusMaxSplit: MaxSplit was reached without meeting a
	// tolerance. The result is the final, possibly still-improving
	// estimate.
	StatusMaxSplit
)

// Aborted reports whether the run terminated without convergence.
func (s Status) Aborted() bool { return s != StatusConverged }

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusPrecisionFloor:
		return "precision floor"
	case StatusMaxSplit:
		return "max split"
	}
	return "unknown"
}

// Options configures a single integration. The zero value selects the
// defaults, per field: a zero tolerance or refinement bound means the
// corresponding Default constant.
type Options struct {
	// RelTol is the relative error tolerance.
	RelTol float64
	// AbsTol is the absolute error tolerance.
	AbsTol float64
	// MaxSplit is the maximum refinement depth. Depth k samples the
	// integrand at 2^k+1 distinct points.
	MaxSplit int
	// MinSplit is the minimum refinement depth before the
	// convergence test is consulted.
	MinSplit int
	// Trace, when non-nil, receives one Sample per completed depth.
	// A Trace observes a single run.
	Trace *Trace
}

func (o Options) withDefaults() Options {
	if o.RelTol == 0 {
		o.RelTol = DefaultRelTol
	}
	if o.AbsTol == 0 {
		o.AbsTol = DefaultAbsTol
	}
	if o.MaxSplit == 0 {
		o.MaxSplit = DefaultMaxSplit
	}
	if o.MinSplit == 0 {
		o.MinSplit = DefaultMinSplit
	}
	return o
}

// Result is the outcome of an integration. Points is always populated:
// at depth k it is exactly 2^k+1, counting distinct abscissae sampled.
type Result struct {
	// Estimate is the Romberg estimate at the depth reached.
	Estimate float64
	// Points is the number of distinct sample points used.
	Points int
	// Depth is the refinement depth reached.
	Depth int
	// Status reports how the run terminated.
	Status Status
}

// phase tracks which sample the state machine demands next.
type phase uint8

const (
	phaseLo phase = iota
	phaseHi
	phaseRefine
	phaseDone
)

// state is the demand-driven Romberg recurrence. next reports the
// abscissa the algorithm needs; absorb feeds back the ordinate for
// exactly that abscissa. All drivers (Integrate, Protocol,
// ExprProtocol, TryProtocol) share this one machine.
//
// The extrapolation table keeps the newest raw trapezoid value at
// index 0; finishDepth runs the in-place diagonal Richardson update
// so that after depth k the entry at index k holds the degree-k
// Romberg estimate.
type state struct {
	lo, hi float64
	opt    Options

	// tot accumulates sample values with the two endpoints
	// half-weighted, so tot*h is the trapezoid estimate at step h.
	tot float64
	row []float64

	estimate float64
	split    int
	steps    int
	idx      int

	ph  phase
	res Result
}

// newState normalizes bounds and applies option defaults. Bounds are
// swapped so lo <= hi; the result is never negated for reversed
// bounds.
func newState(x1, x2 float64, opt Options) *state {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	opt = opt.withDefaults()
	return &state{
		lo:  x1,
		hi:  x2,
		opt: opt,
		row: make([]float64, 0, opt.MaxSplit+1),
		ph:  phaseLo,
	}
}

// next returns the abscissa to sample, or ok=false when the run has
// terminated and res holds the Result.
func (s *state) next() (x float64, ok bool) {
	switch s.ph {
	case phaseLo:
		return s.lo, true
	case phaseHi:
		return s.hi, true
	case phaseRefine:
		h := (s.hi - s.lo) / float64(s.steps)
		return s.lo + h*float64(2*s.idx+1), true
	}
	return 0, false
}

// absorb feeds the ordinate for the abscissa last returned by next.
func (s *state) absorb(y float64) {
	switch s.ph {
	case phaseLo:
		s.tot = y / 2
		s.ph = phaseHi
	case phaseHi:
		s.tot += y / 2
		s.estimate = s.tot * (s.hi - s.lo)
		s.row = append(s.row, s.estimate)
		if s.opt.Trace != nil {
			s.opt.Trace.push(Sample{Raw: s.estimate, Estimate: s.estimate, Points: 2})
		}
		s.beginDepth(1)
	case phaseRefine:
		s.tot += y
		s.idx++
		if s.idx == s.steps/2 {
			s.finishDepth()
		}
	}
}

// beginDepth advances to refinement depth k, first checking the
// precision floor: when the new half-step no longer moves either
// bound at float64 resolution, refinement cannot add information and
// the run terminates with the estimate of the last completed depth.
func (s *state) beginDepth(k int) {
	steps := 1 << k
	h := (s.hi - s.lo) / float64(steps)
	if s.lo+h == s.lo || s.hi-h == s.hi {
		s.terminate(StatusPrecisionFloor)
		return
	}
	s.split, s.steps, s.idx = k, steps, 0
	s.ph = phaseRefine
}

// finishDepth folds the completed depth into the extrapolation table
// and runs the convergence test.
func (s *state) finishDepth() {
	h := (s.hi - s.lo) / float64(s.steps)
	raw := s.tot * h

	// Prepend the raw trapezoid value; older entries shift toward
	// the end so the diagonal update's index arithmetic is stable
	// across depths.
	s.row = append(s.row, 0)
	copy(s.row[1:], s.row)
	s.row[0] = raw

	pow4 := 4.0
	for td := 1; td <= s.split; td++ {
		s.row[td] = s.row[td-1] + (s.row[td-1]-s.row[td])/(pow4-1)
		pow4 *= 4
	}
	next := s.row[s.split]

	if s.opt.Trace != nil {
		s.opt.Trace.push(Sample{Depth: s.split, Raw: raw, Estimate: next, Points: s.steps + 1})
	}

	diff := math.Abs(next - s.estimate)
	prev := s.estimate
	s.estimate = next
	switch {
	case s.split >= s.opt.MinSplit && (diff < s.opt.AbsTol || diff < s.opt.RelTol*math.Abs(prev)):
		s.terminate(StatusConverged)
	case s.split == s.opt.MaxSplit:
		s.terminate(StatusMaxSplit)
	default:
		s.beginDepth(s.split + 1)
	}
}

// terminate finalizes the Result. Non-converged terminations set the
// sticky process-wide abort flag; converged ones leave it untouched.
func (s *state) terminate(st Status) {
	s.ph = phaseDone
	s.res = Result{
		Estimate: s.estimate,
		Points:   (1 << s.split) + 1,
		Depth:    s.split,
		Status:   st,
	}
	if st != StatusConverged {
		setAbort()
	}
	if s.opt.Trace != nil {
		s.opt.Trace.close()
	}
}
