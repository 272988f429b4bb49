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

func addr(ptr uint32, delta int32) uint32 {
	return uint32(int32(ptr) + delta)
}

func (b *Blitter) peek(ptr uint32) uint16 {
	return b.mem.Peek16(ptr & b.ptrMask())
}

func (b *Blitter) poke(ptr uint32, v uint16) {
	b.mem.Poke16(ptr&b.ptrMask(), v)
}

// fastCopy performs the whole of a copy blit immediately.
func (b *Blitter) fastCopy() {
	useA := b.bltcon0&USEA == USEA
	useB := b.bltcon0&USEB == USEB
	useC := b.bltcon0&USEC == USEC
	useD := b.bltcon0&USED == USED
	desc := b.desc()
	fill := b.fill()

	apt, bpt, cpt, dpt := b.bltapt, b.bltbpt, b.bltcpt, b.bltdpt

	incr := int32(2)
	amod, bmod, cmod, dmod := int32(b.bltamod), int32(b.bltbmod), int32(b.bltcmod), int32(b.bltdmod)
	if desc {
		incr = -incr
		amod, bmod, cmod, dmod = -amod, -bmod, -cmod, -dmod
	}

	b.aold = 0
	b.bold = 0

	for range b.bltsizeV {
		b.fillCarry = b.bltcon1&FCI == FCI
		mask := b.bltafwm

		for x := range b.bltsizeH {
			if x == b.bltsizeH-1 {
				mask &= b.bltalwm
			}

			if useA {
				b.anew = b.peek(apt)
				apt = addr(apt, incr)
			}
			if useB {
				b.bnew = b.peek(bpt)
				bpt = addr(bpt, incr)
			}
			if useC {
				b.chold = b.peek(cpt)
				cpt = addr(cpt, incr)
			}

			// the A path runs even when the channel is disabled
			b.ahold = barrelShift(b.anew&mask, b.aold, b.ash(), desc)
			b.aold = b.anew & mask

			if useB {
				b.bhold = barrelShift(b.bnew, b.bold, b.bsh(), desc)
				b.bold = b.bnew
			}

			b.dhold = b.minterm(b.ahold, b.bhold, b.chold)
			if fill {
				b.dhold = b.doFill(b.dhold)
			}
			if b.dhold != 0 {
				b.bzero = false
			}

			if useD {
				b.poke(dpt, b.dhold)
				dpt = addr(dpt, incr)
			}

			mask = 0xffff
		}

		if useA {
			apt = addr(apt, amod)
		}
		if useB {
			bpt = addr(bpt, bmod)
		}
		if useC {
			cpt = addr(cpt, cmod)
		}
		if useD {
			dpt = addr(dpt, dmod)
		}
	}

	b.bltapt, b.bltbpt, b.bltcpt, b.bltdpt = apt, bpt, cpt, dpt
}

// lineStep moves the line to the next pixel. The x position is the shift
// value of channel A and the C pointer. The fill carry is set if the line
// moves to a new row.
func (b *Blitter) lineStep() {
	incx := func() {
		if a := b.ash(); a == 15 {
			b.setASH(0)
			b.bltcpt = addr(b.bltcpt, 2)
		} else {
			b.setASH(a + 1)
		}
	}
	decx := func() {
		if a := b.ash(); a == 0 {
			b.setASH(15)
			b.bltcpt = addr(b.bltcpt, -2)
		} else {
			b.setASH(a - 1)
		}
	}
	incy := func() {
		b.bltcpt = addr(b.bltcpt, int32(b.bltcmod))
		b.fillCarry = true
	}
	decy := func() {
		b.bltcpt = addr(b.bltcpt, -int32(b.bltcmod))
		b.fillCarry = true
	}

	sign := b.bltcon1&SIGN == SIGN
	b.fillCarry = false

	if b.bltcon1&SUD == SUD {
		if b.bltcon1&AUL == AUL {
			decx()
		} else {
			incx()
		}
		if !sign {
			if b.bltcon1&SUL == SUL {
				decy()
			} else {
				incy()
			}
		}
	} else {
		if b.bltcon1&AUL == AUL {
			decy()
		} else {
			incy()
		}
		if !sign {
			if b.bltcon1&SUL == SUL {
				decx()
			} else {
				incx()
			}
		}
	}

	if b.bltcon0&USEA == USEA {
		if sign {
			b.bltapt = addr(b.bltapt, int32(b.bltbmod))
		} else {
			b.bltapt = addr(b.bltapt, int32(b.bltamod))
		}
	}

	if int16(b.bltapt) < 0 {
		b.bltcon1 |= SIGN
	} else {
		b.bltcon1 &^= SIGN
	}
}

// lineHoldA positions the single dot in channel A.
func (b *Blitter) lineHoldA() {
	b.ahold = barrelShift(b.anew&b.bltafwm, 0, b.ash(), false)
}

// lineHoldB rotates the texture in channel B. The shift value is decreased
// for the next pixel.
func (b *Blitter) lineHoldB() {
	b.bhold = barrelShift(b.bnew, b.bnew, b.bsh(), false)
	b.setBSH(b.bsh() - 1)
}

// lineHoldD computes the value of D for the current pixel and moves to the
// next pixel. It reports whether the value should be written.
func (b *Blitter) lineHoldD() bool {
	var texture uint16
	if b.bhold&1 == 1 {
		texture = 0xffff
	}
	b.dhold = b.minterm(b.ahold, texture, b.chold)

	sing := b.bltcon1&SING == SING
	write := (!sing || b.fillCarry) && b.bltcon0&USEC == USEC

	b.lineStep()

	if b.dhold != 0 {
		b.bzero = false
	}
	return write
}

// fastLine draws the whole of a line immediately.
func (b *Blitter) fastLine() {
	useB := b.bltcon0&USEB == USEB
	useC := b.bltcon0&USEC == USEC

	// the first pixel is always written in single dot mode
	b.fillCarry = true

	for range b.bltsizeV {
		if useB {
			b.bnew = b.peek(b.bltbpt)
			b.bltbpt = addr(b.bltbpt, int32(b.bltbmod))
		}
		if useC {
			b.chold = b.peek(b.bltcpt)
		}

		b.lineHoldA()
		b.lineHoldB()
		if b.lineHoldD() {
			b.poke(b.bltdpt, b.dhold)
		}
		b.bltdpt = b.bltcpt
	}
}
