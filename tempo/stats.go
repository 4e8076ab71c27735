package tempo

import (
	"bytes"
	"fmt"
	"math"
)

// streamStats holds memoryless running statistics over completed spans.
// Samples are recorded in seconds; only the count, the sum and the sum
// of squares are kept, so mean and standard deviation are available at
// any time without retaining the samples themselves.
//
// The first warmup samples are treated as a warm-up phase: they are
// counted normally until the count reaches warmup, at which point the
// counters are zeroed right before the next sample is recorded. The
// reset happens exactly once; warmupDone distinguishes "reset already
// consumed" from "warm-up disabled" (warmup == 0).
type streamStats struct {
	warmup     uint64
	warmupDone bool

	nsamples   uint64
	sum        float64
	sumSquared float64
}

func newStreamStats(warmup uint64) *streamStats {
	return &streamStats{
		warmup:     warmup,
		warmupDone: warmup == 0,
	}
}

func (s *streamStats) registerSample(seconds float64) {
	if !s.warmupDone && s.nsamples == s.warmup {
		s.nsamples = 0
		s.sum = 0
		s.sumSquared = 0
		s.warmupDone = true
	}

	s.nsamples++
	s.sum += seconds
	s.sumSquared += seconds * seconds
}

func (s *streamStats) mean() (float64, error) {
	if s.nsamples == 0 {
		return 0, ErrNoSamples
	}
	return s.sum / float64(s.nsamples), nil
}

// std uses the naive sum-of-squares formula, matching the accumulated
// counters. Floating point cancellation can drive the variance slightly
// negative, so it is clamped at zero rather than propagating NaN.
func (s *streamStats) std() (float64, error) {
	mean, err := s.mean()
	if err != nil {
		return 0, err
	}

	variance := s.sumSquared/float64(s.nsamples) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance), nil
}

// rate returns the number of samples per second of accumulated time.
func (s *streamStats) rate() float64 {
	if s.sum == 0 {
		return 0
	}
	return float64(s.nsamples) / s.sum
}

func (s *streamStats) String() string {
	var b bytes.Buffer

	b.WriteString("[statistics]\n")
	b.WriteString(fmt.Sprintf("warmup: %d\n", s.warmup))
	b.WriteString(fmt.Sprintf("warmupDone: %t\n", s.warmupDone))
	b.WriteString(fmt.Sprintf("nsamples: %d\n", s.nsamples))
	b.WriteString(fmt.Sprintf("sum: %f\n", s.sum))
	b.WriteString(fmt.Sprintf("sumSquared: %f\n", s.sumSquared))

	return b.String()
}
