package uct

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Stat is a running estimator over float32 samples: count, sum and sum
// of squares, enough for mean, variance and standard error. The prior
// count set at Reset keeps the mean defined before the first sample.
type Stat struct {
	sampleCount     float32
	sampleSum       float32
	squareSampleSum float32
}

// NewStat returns a Stat reset with a prior count of 1.
func NewStat() Stat {
	var s Stat
	s.Reset(1)
	return s
}

// Reset clears the sums and sets the sample count to the given prior.
func (s *Stat) Reset(priorSampleCount float32) {
	s.sampleCount = priorSampleCount
	s.sampleSum = 0
	s.squareSampleSum = 0
}

// Update adds one sample.
func (s *Stat) Update(sample float32) {
	s.sampleCount++
	s.sampleSum += sample
	s.squareSampleSum += sample * sample
}

// SampleCount returns the count, prior included.
func (s *Stat) SampleCount() float32 { return s.sampleCount }

// Mean of the samples seen so far, treating the prior as zero-valued.
func (s *Stat) Mean() float32 {
	return s.sampleSum / s.sampleCount
}

// Variance as E(X²) − (EX)².
func (s *Stat) Variance() float32 {
	m := s.Mean()
	return s.squareSampleSum/s.sampleCount - m*m
}

// StdDev is the square root of the variance.
func (s *Stat) StdDev() float32 { return math32.Sqrt(s.Variance()) }

// StdErr is the standard error of the mean.
func (s *Stat) StdErr() float32 { return math32.Sqrt(s.Variance() / s.sampleCount) }

// statBlank is what String returns before any sample arrived; it has the
// same width as the formatted form so columns stay aligned.
const statBlank = "           "

// String formats as "+0.5(   17)": one-decimal mean, zero-decimal count,
// sign always shown. Below two samples it returns a fixed-width blank.
func (s *Stat) String() string {
	if s.sampleCount < 2 {
		return statBlank
	}
	return fmt.Sprintf("%+3.1f(%5.0f)", s.Mean(), s.sampleCount)
}
