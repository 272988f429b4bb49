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

package blitter

import "fmt"

// MintermReference evaluates the minterm selector one term at a time. Bit 7 of
// the selector is the term ABC and bit 0 is the term !A!B!C.
func MintermReference(a, b, c uint16, lf uint8) uint16 {
	var r uint16
	if lf&0x80 == 0x80 {
		r |= a & b & c
	}
	if lf&0x40 == 0x40 {
		r |= a & b &^ c
	}
	if lf&0x20 == 0x20 {
		r |= a &^ b & c
	}
	if lf&0x10 == 0x10 {
		r |= a &^ b &^ c
	}
	if lf&0x08 == 0x08 {
		r |= ^a & b & c
	}
	if lf&0x04 == 0x04 {
		r |= ^a & b &^ c
	}
	if lf&0x02 == 0x02 {
		r |= ^a &^ b & c
	}
	if lf&0x01 == 0x01 {
		r |= ^a &^ b &^ c
	}
	return r
}

// spread returns a word with every bit set to bit n of the selector.
func spread(lf uint8, n uint) uint16 {
	return -uint16(lf >> n & 1)
}

// Minterm evaluates the minterm selector as a tree of multiplexers, selecting
// on C first, then B, then A.
func Minterm(a, b, c uint16, lf uint8) uint16 {
	a1b1 := c&spread(lf, 7) | ^c&spread(lf, 6)
	a1b0 := c&spread(lf, 5) | ^c&spread(lf, 4)
	a0b1 := c&spread(lf, 3) | ^c&spread(lf, 2)
	a0b0 := c&spread(lf, 1) | ^c&spread(lf, 0)

	hi := b&a1b1 | ^b&a1b0
	lo := b&a0b1 | ^b&a0b0

	return a&hi | ^a&lo
}

func (b *Blitter) minterm(a, bb, c uint16) uint16 {
	r := Minterm(a, bb, c, b.lf())
	if b.env.Prefs.Live.VerifyMinterm.Load() {
		if ref := MintermReference(a, bb, c, b.lf()); ref != r {
			panic(fmt.Sprintf("blitter: minterm %02x disagrees for %04x %04x %04x (%04x != %04x)", b.lf(), a, bb, c, r, ref))
		}
	}
	return r
}
