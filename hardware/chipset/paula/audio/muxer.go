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
	"math"
	"strings"
	"sync"

	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/hardware/preferences"
)

// DefaultSampleRate is the sample rate of the muxer output if SetSampleRate()
// is never called.
const DefaultSampleRate = 44100

// number of frames in the output stream
const streamLen = 16384

// the largest output of a channel is 127 * 64. the value is scaled so that
// a single channel at full volume produces a value of about one
const sampleScale = 1.0 / 8192.0

// Frame is a single stereo sample.
type Frame struct {
	L float32
	R float32
}

// MuxerStats records the activity of the muxer.
type MuxerStats struct {
	Produced  int64
	Consumed  int64
	Overflows int64
}

// Muxer mixes the output of the four channels into a stream of stereo frames
// at the host sample rate.
//
// Synthesize() is called from the emulation goroutine. ReadFrames() can be
// called from any goroutine.
type Muxer struct {
	prefs    *preferences.Preferences
	channels [4]*Sampler

	sampleRate float64
	fraction   float64
	filter     Filter

	// per channel volume and pan, and master volume. updated from the
	// preferences on every call to Synthesize()
	vol  [4]float64
	pan  [4]float64
	volL float64
	volR float64

	crit   sync.Mutex
	stream [streamLen]Frame
	r, w   int
	n      int
	stats  MuxerStats
}

// NewMuxer is the preferred method of initialisation for the Muxer type.
func NewMuxer(prefs *preferences.Preferences, channels [4]*Sampler) *Muxer {
	m := &Muxer{
		prefs:      prefs,
		channels:   channels,
		sampleRate: DefaultSampleRate,
	}
	m.filter.Setup("NONE", m.sampleRate)
	m.update()
	return m
}

// SetSampleRate changes the sample rate of the output stream.
func (m *Muxer) SetSampleRate(hz float64) {
	m.sampleRate = hz
	m.filter.Setup(m.filter.Kind(), hz)
}

// SampleRate returns the sample rate of the output stream.
func (m *Muxer) SampleRate() float64 {
	return m.sampleRate
}

func prefInt(v any) float64 {
	if i, ok := v.(int); ok {
		return float64(i)
	}
	return 0
}

// update mixing values from the preferences.
func (m *Muxer) update() {
	p := m.prefs.Audio

	kind := strings.ToUpper(p.Filter.String())
	if kind != m.filter.Kind() {
		m.filter.Setup(kind, m.sampleRate)
	}
	if led, ok := p.LED.Get().(bool); ok {
		m.filter.SetLED(led)
	}

	for i := range m.vol {
		m.vol[i] = math.Pow(prefInt(p.Vol[i].Get())/100.0, 1.4)

		// a pan value of 0 is fully left and 100 is fully right
		m.pan[i] = 0.5 * (math.Sin((prefInt(p.Pan[i].Get())-50.0)*math.Pi/100.0) + 1.0)
	}
	m.volL = math.Pow(prefInt(p.VolL.Get())/50.0, 1.4)
	m.volR = math.Pow(prefInt(p.VolR.Get())/50.0, 1.4)
}

// Synthesize output frames for the period between the two clock values. The
// number of frames produced is returned.
func (m *Muxer) Synthesize(from clocks.Cycle, to clocks.Cycle) int {
	if to <= from {
		return 0
	}

	m.update()
	method := ParseSampling(strings.ToUpper(m.prefs.Audio.Sampling.String()))

	cps := clocks.Frequency(m.prefs.Live.NTSC.Load()) / m.sampleRate
	exact := float64(to-from)/cps + m.fraction
	count, fraction := math.Modf(exact)
	m.fraction = fraction

	m.crit.Lock()
	defer m.crit.Unlock()

	cycle := float64(from)
	for range int(count) {
		var l, r float64
		for i, ch := range m.channels {
			s := float64(ch.Interpolate(clocks.Cycle(cycle), method)) * sampleScale * m.vol[i]
			l += s * (1 - m.pan[i])
			r += s * m.pan[i]
		}

		l, r = m.filter.Apply(l, r)
		m.push(Frame{L: float32(l * m.volL), R: float32(r * m.volR)})

		cycle += cps
	}

	m.stats.Produced += int64(count)
	return int(count)
}

// push must be called with the critical section locked. the oldest frame is
// dropped if the stream is full.
func (m *Muxer) push(f Frame) {
	if m.n == streamLen {
		m.r = (m.r + 1) % streamLen
		m.n--
		m.stats.Overflows++
	}
	m.stream[m.w] = f
	m.w = (m.w + 1) % streamLen
	m.n++
}

// ReadFrames copies frames from the stream into dst. The number of frames
// copied is returned.
func (m *Muxer) ReadFrames(dst []Frame) int {
	m.crit.Lock()
	defer m.crit.Unlock()

	var i int
	for i = 0; i < len(dst) && m.n > 0; i++ {
		dst[i] = m.stream[m.r]
		m.r = (m.r + 1) % streamLen
		m.n--
	}
	m.stats.Consumed += int64(i)
	return i
}

// Buffered returns the number of frames waiting to be read.
func (m *Muxer) Buffered() int {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.n
}

// Clear the output stream and the filter history.
func (m *Muxer) Clear() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.r, m.w, m.n = 0, 0, 0
	m.fraction = 0
	m.filter.Setup(m.filter.Kind(), m.sampleRate)
}

// Stats returns the activity of the muxer.
func (m *Muxer) Stats() MuxerStats {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.stats
}
