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

package random_test

import (
	"testing"

	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/random"
	"github.com/jetsetilly/ocs/test"
)

type clk struct {
	c clocks.Cycle
}

func (m *clk) Clock() clocks.Cycle {
	return m.c
}

func TestRewindable(t *testing.T) {
	c := &clk{c: 1000}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// same clock, same number
	v := a.Rewindable(65536)
	test.ExpectEquality(t, a.Rewindable(65536), v)
}

func TestNoRewind(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.NoRewind(i), b.NoRewind(i))
	}
}

func TestRewindableClock(t *testing.T) {
	c := &clk{}
	rnd := random.NewRandom(c)
	rnd.ZeroSeed = true

	var seen [16]int
	for i := range seen {
		c.c = clocks.Cycle(i * 8)
		seen[i] = rnd.Rewindable(1 << 30)
	}

	// winding the clock back produces the same numbers
	for i := range seen {
		c.c = clocks.Cycle(i * 8)
		test.ExpectEquality(t, rnd.Rewindable(1<<30), seen[i])
	}

	// and the numbers differ from clock to clock
	test.ExpectInequality(t, seen[0], seen[1])
}
