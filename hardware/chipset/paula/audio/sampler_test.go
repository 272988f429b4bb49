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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/test"
)

func TestSampler(t *testing.T) {
	var s audio.Sampler
	s.Reset()
	test.ExpectEquality(t, s.Len(), 1)
	test.ExpectEquality(t, s.Interpolate(100, audio.SamplingLinear), int16(0))

	test.ExpectSuccess(t, s.Add(100, 1000))
	test.ExpectSuccess(t, s.Add(200, 2000))

	test.ExpectEquality(t, s.Interpolate(50, audio.SamplingNone), int16(0))
	test.ExpectEquality(t, s.Interpolate(50, audio.SamplingLinear), int16(500))
	test.ExpectEquality(t, s.Interpolate(60, audio.SamplingNearest), int16(1000))
	test.ExpectEquality(t, s.Interpolate(150, audio.SamplingNone), int16(1000))
	test.ExpectEquality(t, s.Interpolate(150, audio.SamplingLinear), int16(1500))
	test.ExpectEquality(t, s.Interpolate(160, audio.SamplingNearest), int16(2000))

	// outdated samples have been removed
	test.ExpectEquality(t, s.Len(), 2)

	// the last sample is held
	test.ExpectEquality(t, s.Interpolate(1000, audio.SamplingLinear), int16(2000))
	test.ExpectEquality(t, s.Len(), 1)
}

func TestSamplerFull(t *testing.T) {
	var s audio.Sampler
	s.Reset()
	var n int
	for s.Add(clocks.Cycle(n), 0) {
		n++
	}
	test.ExpectSuccess(t, s.IsFull())
	test.ExpectEquality(t, s.Len(), n+1)

	s.Interpolate(clocks.Cycle(n), audio.SamplingNone)
	test.ExpectFailure(t, s.IsFull())
}

func TestParseSampling(t *testing.T) {
	test.ExpectEquality(t, audio.ParseSampling("LINEAR"), audio.SamplingLinear)
	test.ExpectEquality(t, audio.ParseSampling("none"), audio.SamplingNone)
	test.ExpectEquality(t, audio.ParseSampling("CUBIC"), audio.SamplingNearest)
}
