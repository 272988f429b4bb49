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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ocs/digest"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/test"
)

var zero = strings.Repeat("0", 40)

func frames(n int, v float32) []audio.Frame {
	f := make([]audio.Frame, n)
	for i := range f {
		f[i] = audio.Frame{L: v, R: -v}
	}
	return f
}

func TestAudio(t *testing.T) {
	test.ExpectImplements[digest.Digest](t, digest.NewAudio())

	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectEquality(t, a.Hash(), zero)

	// more than one buffer's worth of data
	a.Write(frames(1000, 0.5))
	b.Write(frames(1000, 0.5))
	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the digest is chained so the same data changes the value
	h := a.Hash()
	a.Write(frames(10, 0.5))
	test.ExpectInequality(t, a.Hash(), h)

	b.Write(frames(10, 0.25))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
}

func TestMemory(t *testing.T) {
	mem, err := memory.NewChipRAM(memory.Size256K)
	test.DemandSuccess(t, err)

	dig := digest.NewMemory(mem)
	test.ExpectImplements[digest.Digest](t, dig)
	test.ExpectEquality(t, dig.Hash(), zero)

	test.ExpectSuccess(t, dig.Update())
	first := dig.Hash()
	test.ExpectInequality(t, first, zero)

	// same contents but a chained value
	test.ExpectSuccess(t, dig.Update())
	test.ExpectInequality(t, dig.Hash(), first)

	// identical histories produce identical digests
	other := digest.NewMemory(mem)
	test.ExpectSuccess(t, other.Update())
	test.ExpectEquality(t, other.Hash(), first)

	mem.Poke16(0x100, 0xbeef)
	dig.ResetDigest()
	test.ExpectSuccess(t, dig.Update())
	test.ExpectInequality(t, dig.Hash(), first)
}
