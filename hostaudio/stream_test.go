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

package hostaudio_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hostaudio"
	"github.com/jetsetilly/ocs/test"
)

type source struct {
	frames []audio.Frame
}

func (s *source) ReadFrames(dst []audio.Frame) int {
	n := copy(dst, s.frames)
	s.frames = s.frames[n:]
	return n
}

func float(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func TestStream(t *testing.T) {
	src := &source{frames: []audio.Frame{{L: 0.5, R: -0.5}, {L: 1, R: 0.25}}}
	s := hostaudio.NewStream(src)

	// three and a half frames
	p := make([]byte, 28)
	n, err := s.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 24)

	test.ExpectEquality(t, float(p[0:]), float32(0.5))
	test.ExpectEquality(t, float(p[4:]), float32(-0.5))
	test.ExpectEquality(t, float(p[8:]), float32(1))
	test.ExpectEquality(t, float(p[12:]), float32(0.25))

	// the source ran out so the final frame is silent
	test.ExpectEquality(t, float(p[16:]), float32(0))
	test.ExpectEquality(t, float(p[20:]), float32(0))
	test.ExpectEquality(t, s.Underrun(), int64(1))

	n, err = s.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 24)
	test.ExpectEquality(t, s.Underrun(), int64(4))
}
