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

package random

import (
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/ocs/hardware/clocks"
)

// chosen once per process so that separate Random instances agree.
var processSeed = uint64(time.Now().UnixNano())

// Source is the master clock used by Rewindable().
type Source interface {
	Clock() clocks.Cycle
}

// Random number generator for the emulation.
type Random struct {
	src Source

	// created on first use of NoRewind()
	seq *rand.Rand

	// use a seed of zero rather than the process seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The source can be nil, in which case Rewindable() behaves as though the
// clock is always zero.
func NewRandom(src Source) *Random {
	return &Random{src: src}
}

// SetSource changes the clock used by Rewindable().
func (rnd *Random) SetSource(src Source) {
	rnd.src = src
}

func (rnd *Random) seed() uint64 {
	if rnd.ZeroSeed {
		return 0
	}
	return processSeed
}

// Rewindable returns a number in the range [0, n). The same clock value always
// gives the same number.
func (rnd *Random) Rewindable(n int) int {
	var c clocks.Cycle
	if rnd.src != nil {
		c = rnd.src.Clock()
	}
	return rand.New(rand.NewPCG(rnd.seed(), uint64(c))).IntN(n)
}

// NoRewind returns the next number in the range [0, n) from a sequence that
// ignores the clock.
func (rnd *Random) NoRewind(n int) int {
	if rnd.seq == nil {
		rnd.seq = rand.New(rand.NewPCG(rnd.seed(), 0x0c5))
	}
	return rnd.seq.IntN(n)
}
