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

package hostaudio

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
)

// Source is the producer of audio frames. The audio.Muxer type satisfies
// this interface.
type Source interface {
	ReadFrames(dst []audio.Frame) int
}

// the number of bytes in a frame. two channels of 32-bit floating point
const frameSize = 8

// Stream implements io.Reader. Frames are written as little-endian 32-bit
// floating point values with the left channel first.
type Stream struct {
	src    Source
	frames []audio.Frame

	// the number of frames of silence inserted because the source could not
	// keep up
	underrun atomic.Int64
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream(src Source) *Stream {
	return &Stream{src: src}
}

// Read implements the io.Reader interface. Read never returns an error and
// always fills the whole of p, except for a trailing partial frame.
func (s *Stream) Read(p []byte) (int, error) {
	n := len(p) / frameSize
	if cap(s.frames) < n {
		s.frames = make([]audio.Frame, n)
	}
	frames := s.frames[:n]

	got := s.src.ReadFrames(frames)
	clear(frames[got:])
	if got < n {
		s.underrun.Add(int64(n - got))
	}

	for i, f := range frames {
		binary.LittleEndian.PutUint32(p[i*frameSize:], math.Float32bits(f.L))
		binary.LittleEndian.PutUint32(p[i*frameSize+4:], math.Float32bits(f.R))
	}

	return n * frameSize, nil
}

// Underrun returns the number of frames of silence inserted into the stream.
func (s *Stream) Underrun() int64 {
	return s.underrun.Load()
}
