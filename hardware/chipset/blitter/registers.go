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

import (
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// The BLTCON0, BLTCON1, BLTCON0L, BLTSIZE, BLTSIZV and BLTSIZH registers
// reach the blitter after a delay. The Set functions are called when the
// delayed value arrives. The remaining registers are written immediately with
// the Poke functions.

func (b *Blitter) guard(reg string) {
	if b.running {
		logger.Logf(b.env, "blitter", "%s written while blitter is running", reg)
	}
}

// SetBLTCON0 sets the BLTCON0 register.
func (b *Blitter) SetBLTCON0(value uint16) {
	b.guard("BLTCON0")
	b.bltcon0 = value
}

// SetBLTCON0L sets the low byte of BLTCON0. ECS only.
func (b *Blitter) SetBLTCON0L(value uint16) {
	if !b.bus.ECS() {
		return
	}
	b.guard("BLTCON0L")
	b.bltcon0 = b.bltcon0&0xff00 | value&0x00ff
}

// SetBLTCON1 sets the BLTCON1 register.
func (b *Blitter) SetBLTCON1(value uint16) {
	b.guard("BLTCON1")
	b.bltcon1 = value
}

// PokeBLTAFWM writes the first word mask of channel A.
func (b *Blitter) PokeBLTAFWM(value uint16) {
	b.bltafwm = value
}

// PokeBLTALWM writes the last word mask of channel A.
func (b *Blitter) PokeBLTALWM(value uint16) {
	b.bltalwm = value
}

func replaceHi(v uint32, w uint16) uint32 {
	return v&0x0000ffff | uint32(w&0x001f)<<16
}

func replaceLo(v uint32, w uint16) uint32 {
	return v&0xffff0000 | uint32(w&0xfffe)
}

// PokeBLTxPTH writes the high word of a channel pointer. Channel is one of
// 'A', 'B', 'C' or 'D'.
func (b *Blitter) PokeBLTxPTH(channel byte, value uint16) {
	p := b.pointer(channel)
	*p = replaceHi(*p, value)
}

// PokeBLTxPTL writes the low word of a channel pointer.
func (b *Blitter) PokeBLTxPTL(channel byte, value uint16) {
	p := b.pointer(channel)
	*p = replaceLo(*p, value)
}

func (b *Blitter) pointer(channel byte) *uint32 {
	switch channel {
	case 'A':
		return &b.bltapt
	case 'B':
		return &b.bltbpt
	case 'C':
		return &b.bltcpt
	case 'D':
		return &b.bltdpt
	}
	panic("blitter: no such channel")
}

// PokeBLTxMOD writes the modulo of a channel. The least significant bit is
// ignored.
func (b *Blitter) PokeBLTxMOD(channel byte, value uint16) {
	m := int16(value & 0xfffe)
	switch channel {
	case 'A':
		b.bltamod = m
	case 'B':
		b.bltbmod = m
	case 'C':
		b.bltcmod = m
	case 'D':
		b.bltdmod = m
	default:
		panic("blitter: no such channel")
	}
}

// PokeBLTADAT writes the data register of channel A.
func (b *Blitter) PokeBLTADAT(value uint16) {
	b.anew = value
}

// PokeBLTBDAT writes the data register of channel B. The value passes
// through the barrel shifter immediately.
func (b *Blitter) PokeBLTBDAT(value uint16) {
	b.bnew = value
	b.bhold = barrelShift(b.bnew, b.bold, b.bsh(), b.desc())
	b.bold = b.bnew
}

// PokeBLTCDAT writes the data register of channel C.
func (b *Blitter) PokeBLTCDAT(value uint16) {
	b.chold = value
}

// PeekBLTDDAT returns the most recent output of the minterm logic.
func (b *Blitter) PeekBLTDDAT() uint16 {
	return b.dhold
}

// SetBLTSIZE sets the size of the blit and starts it. The lower six bits are
// the width in words and the upper ten bits are the height in lines. A value
// of zero means 64 words or 1024 lines.
func (b *Blitter) SetBLTSIZE(value uint16) {
	b.guard("BLTSIZE")

	// finish the current step of a blit that is still running
	b.flushPending()

	b.bltsizeV = value >> 6
	b.bltsizeH = value & 0x3f
	if b.bltsizeV == 0 {
		b.bltsizeV = 0x0400
	}
	if b.bltsizeH == 0 {
		b.bltsizeH = 0x0040
	}

	b.start()
}

// SetBLTSIZV sets the height of the blit without starting it. ECS only.
func (b *Blitter) SetBLTSIZV(value uint16) {
	if !b.bus.ECS() {
		return
	}
	b.guard("BLTSIZV")
	b.bltsizeV = value & 0x7fff
}

// SetBLTSIZH sets the width of the blit and starts it. A zero width means
// 2048 words and a zero height means 32768 lines. ECS only.
func (b *Blitter) SetBLTSIZH(value uint16) {
	if !b.bus.ECS() {
		return
	}
	b.guard("BLTSIZH")
	b.flushPending()

	b.bltsizeH = value & 0x07ff
	if b.bltsizeV == 0 {
		b.bltsizeV = 0x8000
	}
	if b.bltsizeH == 0 {
		b.bltsizeH = 0x0800
	}

	b.start()
}

func (b *Blitter) flushPending() {
	if !b.running || !b.sch.HasEvent(scheduler.BLT) {
		return
	}
	ev := b.sch.Slot(scheduler.BLT)
	b.ServiceEvent(scheduler.BLT, ev.ID, ev.Data)
}

func (b *Blitter) start() {
	b.running = true
	b.sch.ScheduleRel(scheduler.BLT, clocks.DMACycles(1), strt1)
}
