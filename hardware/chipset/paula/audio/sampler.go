// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// Sampling is the interpolation method used when reading a Sampler.
type Sampling int

// List of valid Sampling values.
const (
	SamplingNone Sampling = iota
	SamplingNearest
	SamplingLinear
)

// ParseSampling converts the preference value to a Sampling value. Unknown
// values are treated as SamplingNearest.
func ParseSampling(s string) Sampling {
	switch s {
	case "NONE", "none":
		return SamplingNone
	case "LINEAR", "linear":
		return SamplingLinear
	}
	return SamplingNearest
}

func (s Sampling) String() string {
	switch s {
	case SamplingNone:
		return "NONE"
	case SamplingLinear:
		return "LINEAR"
	}
	return "NEAREST"
}

// number of entries in a Sampler ring
const samplerLen = 256

// Sampler is a ring buffer of samples, each tagged with the master cycle at
// which the sample was produced. Tags are never decreasing.
//
// The buffer is never empty. The oldest sample is kept until a newer sample
// is older than the clock being interpolated.
type Sampler struct {
	tags    [samplerLen]clocks.Cycle
	samples [samplerLen]int16
	r       int
	w       int
}

func next(i int) int {
	return (i + 1) % samplerLen
}

// Reset the sampler so that it contains the single sample (0, 0).
func (s *Sampler) Reset() {
	s.r = 0
	s.w = 1
	s.tags[0] = 0
	s.samples[0] = 0
}

// Len returns the number of samples in the buffer.
func (s *Sampler) Len() int {
	return (s.w - s.r + samplerLen) % samplerLen
}

// IsFull returns true if no more samples can be added.
func (s *Sampler) IsFull() bool {
	return next(s.w) == s.r
}

// Add a tagged sample. Returns false if the buffer is full.
func (s *Sampler) Add(tag clocks.Cycle, sample int16) bool {
	if s.IsFull() {
		return false
	}
	s.tags[s.w] = tag
	s.samples[s.w] = sample
	s.w = next(s.w)
	return true
}

// Latest returns the most recently added sample.
func (s *Sampler) Latest() (clocks.Cycle, int16) {
	i := (s.w - 1 + samplerLen) % samplerLen
	return s.tags[i], s.samples[i]
}

// Interpolate returns the output of the channel at the specified clock.
// Samples that are no longer required are removed from the buffer. The clock
// value should never be less than the value used in the previous call.
func (s *Sampler) Interpolate(clock clocks.Cycle, method Sampling) int16 {
	r1 := s.r
	r2 := next(r1)

	for r2 != s.w && s.tags[r2] <= clock {
		r1 = r2
		r2 = next(r1)
	}
	s.r = r1

	// single element
	if r2 == s.w {
		return s.samples[r1]
	}

	c1, c2 := s.tags[r1], s.tags[r2]
	s1, s2 := s.samples[r1], s.samples[r2]

	switch method {
	case SamplingNearest:
		if clock-c1 < c2-clock {
			return s1
		}
		return s2
	case SamplingLinear:
		dx := float64(c2 - c1)
		dy := float64(s2 - s1)
		weight := float64(clock-c1) / dx
		return int16(float64(s1) + weight*dy)
	}

	return s1
}
