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

import "math"

// OnePole is a single pole filter. It can be applied as a low-pass or a
// high-pass filter.
type OnePole struct {
	a1, a2     float64
	tmpL, tmpR float64
}

// Setup calculates the filter coefficients for the sample rate and cutoff
// frequency.
func (f *OnePole) Setup(sampleRate float64, cutoff float64) {
	if cutoff >= sampleRate/2.0 {
		cutoff = sampleRate/2.0 - 1e-4
	}
	a := 2.0 - math.Cos((2.0*math.Pi*cutoff)/sampleRate)
	b := a - math.Sqrt(a*a-1.0)
	f.a1 = 1.0 - b
	f.a2 = b
	f.Clear()
}

// Clear the filter history.
func (f *OnePole) Clear() {
	f.tmpL = 0
	f.tmpR = 0
}

// LowPass applies the filter to a stereo sample.
func (f *OnePole) LowPass(l, r float64) (float64, float64) {
	f.tmpL = f.a1*l + f.a2*f.tmpL
	f.tmpR = f.a1*r + f.a2*f.tmpR
	return f.tmpL, f.tmpR
}

// HighPass applies the filter to a stereo sample. The high-pass output is
// the input with the low-pass output removed.
func (f *OnePole) HighPass(l, r float64) (float64, float64) {
	lpL, lpR := f.LowPass(l, r)
	return l - lpL, r - lpR
}

// TwoPole is a two pole low-pass filter.
type TwoPole struct {
	a1, a2, b1, b2 float64
	tmpL, tmpR     [4]float64
}

// Setup calculates the filter coefficients for the sample rate, cutoff
// frequency and Q factor.
func (f *TwoPole) Setup(sampleRate float64, cutoff float64, q float64) {
	if cutoff >= sampleRate/2.0 {
		cutoff = sampleRate/2.0 - 1e-4
	}
	a := 1.0 / math.Tan((2.0*math.Pi*cutoff)/sampleRate)
	b := 1.0 / q
	f.a1 = 1.0 / (1.0 + b*a + a*a)
	f.a2 = 2.0 * f.a1
	f.b1 = 2.0 * (1.0 - a*a) * f.a1
	f.b2 = (1.0 - b*a + a*a) * f.a1
	f.Clear()
}

// Clear the filter history.
func (f *TwoPole) Clear() {
	f.tmpL = [4]float64{}
	f.tmpR = [4]float64{}
}

func (f *TwoPole) apply(in float64, tmp *[4]float64) float64 {
	out := f.a1*in + f.a2*tmp[0] + f.a1*tmp[1] - f.b1*tmp[2] - f.b2*tmp[3]
	tmp[1] = tmp[0]
	tmp[0] = in
	tmp[3] = tmp[2]
	tmp[2] = out
	return out
}

// LowPass applies the filter to a stereo sample.
func (f *TwoPole) LowPass(l, r float64) (float64, float64) {
	return f.apply(l, &f.tmpL), f.apply(r, &f.tmpR)
}

// Filter is the filter chain of the audio output. The chain is a model of the
// output stage of the real hardware: a fixed low-pass filter, the switchable
// LED filter and a high-pass filter.
type Filter struct {
	kind       string
	led        bool
	sampleRate float64

	lo        OnePole
	ledFilter TwoPole
	hi        OnePole
}

// Setup the filter chain for the filter type and sample rate. The kind
// argument is one of NONE, A500, A1200, LP, LED or HP.
func (f *Filter) Setup(kind string, sampleRate float64) {
	f.kind = kind
	f.sampleRate = sampleRate

	// R321 (360 ohm) and C321 (0.1uF)
	f.lo.Setup(sampleRate, 1.0/(2*math.Pi*360.0*1e-7))

	// R322, R323 (10K ohm), C322 (6800pF) and C323 (3900pF)
	r1, r2 := 10000.0, 10000.0
	c1, c2 := 6.8e-9, 3.9e-9
	cutoff := 1.0 / (2 * math.Pi * math.Sqrt(r1*r2*c1*c2))
	q := math.Sqrt(r1*r2*c1*c2) / (c2 * (r1 + r2))
	f.ledFilter.Setup(sampleRate, cutoff, q)

	if kind == "A1200" {
		f.hi.Setup(sampleRate, 1.0/(2*math.Pi*1360.0*2.2e-5))
	} else {
		f.hi.Setup(sampleRate, 1.0/(2*math.Pi*1390.0*2.233e-5))
	}
}

// Kind returns the current filter type.
func (f *Filter) Kind() string {
	return f.kind
}

// SetLED sets the state of the power LED.
func (f *Filter) SetLED(on bool) {
	f.led = on
}

func (f *Filter) loEnabled() bool {
	return f.kind == "A500" || f.kind == "LP"
}

func (f *Filter) ledEnabled() bool {
	switch f.kind {
	case "A500", "A1200":
		return f.led
	case "LED":
		return true
	}
	return false
}

func (f *Filter) hiEnabled() bool {
	switch f.kind {
	case "A500", "A1200", "HP":
		return true
	}
	return false
}

// Apply the filter chain to a stereo sample.
func (f *Filter) Apply(l, r float64) (float64, float64) {
	if f.loEnabled() {
		l, r = f.lo.LowPass(l, r)
	}
	if f.ledEnabled() {
		l, r = f.ledFilter.LowPass(l, r)
	}
	if f.hiEnabled() {
		l, r = f.hi.HighPass(l, r)
	}
	return l, r
}
