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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
)

// the number of bytes of audio data that are collected before a new digest
// value is calculated
const audioBufferLength = 4096

// the previous digest value occupies the start of the buffer
const audioBufferStart = sha1.Size

// the number of frames read from the muxer in a single call to ReadFrames()
const drainLen = 1024

// Audio computes a digest of a stream of audio frames.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	drain    []audio.Frame
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
		drain:    make([]audio.Frame, drainLen),
	}
}

// Hash implements the Digest interface. Audio data that has been written
// since the last complete buffer is included in the value.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}

func (dig *Audio) add(v float32) {
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(v))
	dig.bufferCt += 4
	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
}

// Write adds frames to the digest.
func (dig *Audio) Write(frames []audio.Frame) {
	for _, f := range frames {
		dig.add(f.L)
		dig.add(f.R)
	}
}

// Drain reads every frame waiting in the muxer and adds them to the digest.
// The number of frames read is returned.
func (dig *Audio) Drain(m *audio.Muxer) int {
	var total int
	for {
		n := m.ReadFrames(dig.drain)
		if n == 0 {
			return total
		}
		dig.Write(dig.drain[:n])
		total += n
	}
}
