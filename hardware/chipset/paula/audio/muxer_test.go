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
	"math"
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/test"
)

func TestMuxer(t *testing.T) {
	r := newRig(t)
	p := r.env.Prefs.Audio
	test.DemandSuccess(t, p.Filter.Set("NONE"))
	test.DemandSuccess(t, p.Pan[0].Set(0))
	test.DemandSuccess(t, p.Vol[0].Set(100))
	test.DemandSuccess(t, p.VolL.Set(50))

	test.DemandSuccess(t, r.au.Channels[0].Samples().Add(0, 8192))

	// one hundredth of a second
	n := r.au.Muxer.Synthesize(0, clocks.Cycle(283752))
	test.ExpectEquality(t, n, 441)
	test.ExpectEquality(t, r.au.Muxer.Buffered(), 441)

	frames := make([]audio.Frame, 500)
	test.DemandEquality(t, r.au.Muxer.ReadFrames(frames), 441)
	test.ExpectApproximate(t, frames[0].L, 1.0, 0.001)
	test.ExpectSuccess(t, math.Abs(float64(frames[0].R)) < 1e-6)
	test.ExpectApproximate(t, frames[440].L, 1.0, 0.001)
	test.ExpectEquality(t, r.au.Muxer.Buffered(), 0)

	stats := r.au.Muxer.Stats()
	test.ExpectEquality(t, stats.Produced, int64(441))
	test.ExpectEquality(t, stats.Consumed, int64(441))
}

func TestMuxerOverflow(t *testing.T) {
	r := newRig(t)
	r.au.Muxer.Synthesize(0, clocks.Cycle(clocks.PAL))
	test.ExpectEquality(t, r.au.Muxer.Buffered(), 16384)
	test.ExpectSuccess(t, r.au.Muxer.Stats().Overflows > 0)
}

func TestHighPass(t *testing.T) {
	// a constant input to the high-pass filter decays towards zero
	var f audio.OnePole
	f.Setup(44100, 5.0)
	var l float64
	for range 44100 {
		l, _ = f.HighPass(1.0, 1.0)
	}
	test.ExpectSuccess(t, math.Abs(l) < 0.01)
}

func TestLowPass(t *testing.T) {
	// a constant input to the low-pass filters is passed through
	var f audio.OnePole
	f.Setup(44100, 4420)
	var g audio.TwoPole
	g.Setup(44100, 3090, 0.66)
	var l, m float64
	for range 1000 {
		l, _ = f.LowPass(1.0, 1.0)
		m, _ = g.LowPass(1.0, 1.0)
	}
	test.ExpectApproximate(t, l, 1.0, 0.001)
	test.ExpectApproximate(t, m, 1.0, 0.001)
}
