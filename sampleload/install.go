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

package sampleload

import (
	"math"

	"github.com/jetsetilly/ocs/curated"
)

// Memory is the interface to the chip RAM that samples are written to.
type Memory interface {
	Poke8(addr uint32, value uint8)
	Size() int
}

// the largest number of words that can be played by a channel without
// reloading the location register
const maxWords = 0xffff

// Quantise converts the sample to 8-bit signed values. The result always has
// an even number of values, padded with silence if necessary. Samples that are
// too long to be played in a single DMA cycle of a channel are truncated.
func Quantise(s Sample) []int8 {
	n := min(len(s.Data), maxWords*2)
	out := make([]int8, n+n%2)
	for i := 0; i < n; i++ {
		v := math.Round(float64(s.Data[i]) * 127)
		out[i] = int8(max(-128, min(127, v)))
	}
	return out
}

// Install writes the quantised sample to memory at the address. The address
// must be even. The length of the sample in words, suitable for AUDxLEN, is
// returned.
func Install(mem Memory, addr uint32, s Sample) (uint16, error) {
	if addr&0x01 != 0 {
		return 0, curated.Errorf("sampleload: install address must be even (%06x)", addr)
	}

	data := Quantise(s)
	if len(data) == 0 {
		return 0, curated.Errorf("sampleload: %v", "empty sample")
	}
	if int(addr)+len(data) > mem.Size() {
		return 0, curated.Errorf("sampleload: sample does not fit in chip RAM at %06x", addr)
	}

	for i, v := range data {
		mem.Poke8(addr+uint32(i), uint8(v))
	}

	return uint16(len(data) / 2), nil
}
