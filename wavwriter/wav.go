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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when Close() is called. It is therefore probably only suitable for testing
// purposes and for short recordings.
package wavwriter

import (
	"math"
	"os"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/logger"
	"github.com/youpy/go-wav"
)

// the number of frames read from the muxer in a single call to ReadFrames()
const drainLen = 1024

// WavWriter collects stereo frames and writes them as a 16-bit WAV file.
type WavWriter struct {
	filename   string
	sampleRate float64
	buffer     []wav.Sample
	drain      []audio.Frame
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate float64) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "bad sample rate")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
		drain:      make([]audio.Frame, drainLen),
	}

	return aw, nil
}

func quantise(v float32) int {
	return int(math.Round(float64(max(-1, min(1, v))) * math.MaxInt16))
}

// Write adds frames to the recording.
func (aw *WavWriter) Write(frames []audio.Frame) {
	for _, f := range frames {
		w := wav.Sample{}
		w.Values[0] = quantise(f.L)
		w.Values[1] = quantise(f.R)
		aw.buffer = append(aw.buffer, w)
	}
}

// Drain reads every frame waiting in the muxer and adds them to the
// recording. The number of frames read is returned.
func (aw *WavWriter) Drain(m *audio.Muxer) int {
	var total int
	for {
		n := m.ReadFrames(aw.drain)
		if n == 0 {
			return total
		}
		aw.Write(aw.drain[:n])
		total += n
	}
}

// Len returns the number of frames recorded so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d frames to %s", len(aw.buffer), aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
