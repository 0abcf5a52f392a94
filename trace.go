// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Sample records one completed refinement depth.
type Sample struct {
	// Depth is the refinement depth the sample closes.
	Depth int
	// Raw is the unextrapolated trapezoid estimate at this depth.
	Raw float64
	// Estimate is the Romberg estimate of degree Depth.
	Estimate float64
	// Points is the sample-point count at this depth, 2^Depth+1.
	Points int
}

// Trace is a bounded single-producer single-consumer ring of
// per-depth Samples. The producer is the integration run the Trace is
// attached to via Options; the consumer is the caller, either after
// the run or concurrently from one other goroutine.
//
// The ring never blocks the integrator: when the consumer lags past
// capacity, further samples are dropped. A Trace observes exactly one
// run; the run marks it done on termination.
type Trace struct {
	q    lfq.SPSC[Sample]
	done atomix.Uint32
}

// NewTrace creates a Trace with room for at least capacity samples,
// rounded up to a power of two. capacity <= 0 selects room for every
// depth of a default-Options run.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = DefaultMaxSplit + 2
	}
	n := 1
	for n < capacity {
		n <<= 1
	}
	t := &Trace{}
	t.q.Init(n)
	return t
}

// TryNext returns the next sample without waiting.
// ok=false means none is buffered right now; Done distinguishes
// "none yet" from "run finished".
func (t *Trace) TryNext() (Sample, bool) {
	s, err := t.q.Dequeue()
	if err != nil {
		return Sample{}, false
	}
	return s, true
}

// Next returns the next sample, waiting past the empty boundary with
// adaptive backoff (iox.Backoff) while the run is still producing.
// ok=false means the run terminated and the ring is drained.
func (t *Trace) Next() (Sample, bool) {
	var bo iox.Backoff
	for {
		s, err := t.q.Dequeue()
		if err == nil {
			return s, true
		}
		if t.done.Load() != 0 {
			// Re-check once: the producer may have pushed between
			// the failed dequeue and the done load.
			s, err = t.q.Dequeue()
			if err == nil {
				return s, true
			}
			return Sample{}, false
		}
		bo.Wait()
	}
}

// Done reports whether the attached run has terminated.
func (t *Trace) Done() bool {
	return t.done.Load() != 0
}

// push records a completed depth. Best effort: a full ring drops the
// sample rather than stall refinement.
func (t *Trace) push(s Sample) {
	_ = t.q.Enqueue(&s)
}

func (t *Trace) close() {
	t.done.Store(1)
}
