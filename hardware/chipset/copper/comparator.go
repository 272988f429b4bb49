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

package copper

import "github.com/jetsetilly/ocs/hardware/chipset/agnus"

// horizontal position at which a WAIT never wakes
const noWake = 0xe1

// Comparator returns true if the beam position has reached the position in
// the first word of a WAIT or SKIP instruction, using the masks in the second
// word.
//
// Only the lower eight bits of the vertical position take part in the
// comparison and the most significant of those can not be masked. The lowest
// bit of the horizontal position is always ignored.
func Comparator(v int, h int, vphp uint16, vmhm uint16) bool {
	vBeam := uint8(v)
	vWait := uint8(vphp >> 8)
	vMask := uint8(vmhm>>8) | 0x80

	if vBeam&vMask < vWait&vMask {
		return false
	}
	if vBeam&vMask > vWait&vMask {
		return true
	}

	hBeam := uint8(h) & 0xfe
	hWait := uint8(vphp) & 0xfe
	hMask := uint8(vmhm) & 0xfe

	return hBeam&hMask >= hWait&hMask
}

// the comparison position and mask of the instruction in the latches
func (c *Copper) vphp() uint16 {
	return c.cop1ins & 0xfffe
}

func (c *Copper) vmhm() uint16 {
	return c.cop2ins&0x7ffe | 0x8001
}

func (c *Copper) bfd() bool {
	return c.cop2ins&0x8000 == 0x8000
}

func (c *Copper) isMove() bool {
	return c.cop1ins&0x01 == 0x00
}

func (c *Copper) isWait() bool {
	return c.cop1ins&0x01 == 0x01 && c.cop2ins&0x01 == 0x00
}

func (c *Copper) isSkip() bool {
	return c.cop1ins&0x01 == 0x01 && c.cop2ins&0x01 == 0x01
}

// runComparator compares the position the beam will have reached when the
// next instruction fetch happens.
func (c *Copper) runComparator() bool {
	v, h := c.bus.Beam()
	return Comparator(v, h+2, c.vphp(), c.vmhm())
}

// findMatch searches forward from the current beam position for the first
// position that satisfies the comparator. The search does not extend beyond
// the end of the frame.
func (c *Copper) findMatch() (int, int, bool) {
	v, h := c.bus.Beam()
	comp := c.vphp()
	mask := c.vmhm()

	vm := mask & 0xff00
	for ; v < c.bus.Lines(); v, h = v+1, 0 {
		vb := uint16(v&0xff) << 8

		if vb&vm == comp&vm {
			for ; h < agnus.HPOS; h++ {
				if h == noWake {
					continue
				}
				if (vb|uint16(h))&mask >= comp&mask {
					return v, h, true
				}
			}
		} else if vb&vm > comp&vm {
			return v, h, true
		}
	}

	return 0, 0, false
}

// scheduleWaitWakeup arms the COP slot for the position the WAIT instruction
// is waiting for. The copper wakes two cycles early to fetch the next
// instruction.
func (c *Copper) scheduleWaitWakeup(bfd bool) {
	tv, th, ok := c.findMatch()
	if !ok {
		// woken by the next vsync
		c.park(reqDMA)
		return
	}

	v, h := c.bus.Beam()
	delay := int64(tv-v)*agnus.HPOS + int64(th-h)

	if delay <= 2 {
		c.schedule(fetch, 2)
		return
	}

	if bfd {
		c.schedule(wakeup, delay-2)
	} else {
		c.schedule(wakeupBlit, delay-2)
	}
}
