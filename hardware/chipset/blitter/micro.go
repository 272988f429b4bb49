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
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// micro-program instruction flags.
const (
	nothing = 0
	busIdle = 1 << iota
	bus
	writeD
	fetchA
	fetchB
	fetchC
	holdA
	holdB
	holdD
	fill
	bltDone
	repeat

	fetch = fetchA | fetchB | fetchC
)

// copy blit programs indexed by the USEx bits and the fill mode.
var copyProgram = [16][2][6]uint16{
	// --
	{
		{busIdle, busIdle | repeat, nothing, bltDone, bltDone, bltDone},
		{busIdle, busIdle | repeat, nothing, bltDone, bltDone, bltDone},
	},
	// D0 -- D1 -- D2
	{
		{holdD | busIdle, writeD | holdA | repeat, holdD, writeD | bltDone, bltDone, bltDone},
		{fill | holdD | busIdle, writeD, busIdle | holdA | repeat, fill | holdD, writeD | bltDone, bltDone},
	},
	// C0 -- C1 -- C2
	{
		{holdD | busIdle, fetchC | holdA | repeat, holdD, bltDone, bltDone, bltDone},
		{fill | holdD | busIdle, fetchC | holdA | repeat, fill | holdD, bltDone, bltDone, bltDone},
	},
	// C0 -- C1 D0 C2 D1 -- D2
	{
		{holdD | busIdle, fetchC | holdA, writeD | repeat, holdD, writeD | bltDone, bltDone},
		{fill | holdD | busIdle, fetchC | holdA, writeD | repeat, fill | holdD, writeD | bltDone, bltDone},
	},
	// B0 -- B1 -- B2
	{
		{holdD | busIdle, fetchB | holdA, holdB | busIdle | repeat, holdD, bltDone, bltDone},
		{fill | holdD | busIdle, fetchB | holdA, holdB | busIdle | repeat, fill | holdD, bltDone, bltDone},
	},
	// B0 -- B1 D0 B2 D1 -- D2
	{
		{busIdle | holdD, fetchB | holdA, writeD | holdB | repeat, holdD, writeD | bltDone, bltDone},
		{busIdle | fill | holdD, fetchB | holdA, writeD | holdB, busIdle | repeat, fill | holdD, writeD | bltDone},
	},
	// B0 C0 -- B1 C1 -- B2 C2
	{
		{busIdle | holdD, fetchB | holdA, fetchC | holdB | repeat, holdD, bltDone, bltDone},
		{busIdle | fill | holdD, fetchB | holdA, fetchC | holdB | repeat, fill | holdD, bltDone, bltDone},
	},
	// B0 C0 -- -- B1 C1 D0 -- B2 C2 D1 -- D2
	{
		{busIdle | holdD, fetchB | holdA, fetchC | holdB, writeD | repeat, holdD, writeD | bltDone},
		{busIdle | fill | holdD, fetchB | holdA, fetchC | holdB, writeD | repeat, fill | holdD, writeD | bltDone},
	},
	// A0 -- A1 -- A2
	{
		{fetchA | holdD, holdA | busIdle | repeat, holdD, bltDone, bltDone, bltDone},
		{fetchA | fill | holdD, holdA | busIdle | repeat, fill | holdD, bltDone, bltDone, bltDone},
	},
	// A0 -- A1 D0 A2 D1 -- D2
	{
		{fetchA | holdD, writeD | holdA | repeat, holdD, writeD | bltDone, bltDone, bltDone},
		{fetchA | fill | holdD, writeD | holdA, busIdle | repeat, fill | holdD, writeD | bltDone, bltDone},
	},
	// A0 C0 A1 C1 A2 C2
	{
		{fetchA | holdD, fetchC | holdA | repeat, holdD, bltDone, bltDone, bltDone},
		{fetchA | fill | holdD, fetchC | holdA | repeat, fill | holdD, bltDone, bltDone, bltDone},
	},
	// A0 C0 -- A1 C1 D0 A2 C2 D1 -- D2
	{
		{fetchA | holdD, fetchC | holdA, writeD | repeat, holdD, writeD | bltDone, bltDone},
		{fetchA | fill | holdD, fetchC | holdA, writeD | repeat, fill | holdD, writeD | bltDone, bltDone},
	},
	// A0 B0 -- A1 B1 -- A2 B2
	{
		{fetchA | holdD, fetchB | holdA, holdB | busIdle | repeat, holdD, bltDone, bltDone},
		{fetchA | fill | holdD, fetchB | holdA, holdB | busIdle | repeat, fill | holdD, bltDone, bltDone},
	},
	// A0 B0 -- A1 B1 D0 A2 B2 D1 -- D2
	{
		{fetchA | holdD, fetchB | holdA, writeD | holdB | repeat, holdD, writeD | bltDone, bltDone},
		{fetchA | fill | holdD, fetchB | holdA, writeD | holdB, busIdle | repeat, fill | holdD, writeD | bltDone},
	},
	// A0 B0 C0 A1 B1 C1 A2 B2 C2
	{
		{fetchA | holdD, fetchB | holdA, fetchC | holdB | repeat, holdD, bltDone, bltDone},
		{fetchA | fill | holdD, fetchB | holdA, fetchC | holdB | repeat, fill | holdD, bltDone, bltDone},
	},
	// A0 B0 C0 -- A1 B1 C1 D0 A2 B2 C2 D1 -- D2
	{
		{fetchA | holdD, fetchB | holdA, fetchC | holdB, writeD | repeat, holdD, writeD | bltDone},
		{fetchA | fill | holdD, fetchB | holdA, fetchC | holdB, writeD | repeat, fill | holdD, writeD | bltDone},
	},
}

// line blit programs indexed by the USEB and USEC bits. the second program
// of each pair only reproduces the bus usage.
var lineProgram = [4][2][8]uint16{
	// B and C disabled
	{
		{busIdle | holdA, busIdle | holdB, busIdle | holdD, busIdle | repeat, nothing, bltDone, bltDone, bltDone},
		{busIdle, busIdle, busIdle, busIdle | repeat, nothing, bltDone, bltDone, bltDone},
	},
	// C enabled
	{
		{busIdle | holdA, fetchC | holdB, busIdle | holdD, writeD | repeat, nothing, bltDone, bltDone, bltDone},
		{busIdle, bus, busIdle, bus | repeat, nothing, bltDone, bltDone, bltDone},
	},
	// B enabled
	{
		{busIdle | holdA, fetchB, busIdle | holdB, busIdle | holdD, bus, busIdle | repeat, nothing, busIdle | bltDone},
		{busIdle, bus, busIdle, busIdle, bus, busIdle | repeat, nothing, busIdle | bltDone},
	},
	// B and C enabled
	{
		{busIdle | holdA, fetchB, fetchC | holdB, busIdle | holdD, bus, writeD | repeat, nothing, busIdle | bltDone},
		{busIdle, bus, bus, busIdle, bus, bus | repeat, nothing, busIdle | bltDone},
	},
}

// acquire decides whether the instruction can run in the current DMA cycle.
// The BLIT interrupt is scheduled by the first BLTDONE instruction, whether
// or not it can run.
func (b *Blitter) acquire(instr uint16, needBus bool, needIdle bool) bool {
	if instr&bltDone == bltDone && !b.birq {
		b.irq.ScheduleIrqRel(paula.BLIT, clocks.DMACycles(1))
		b.birq = true
	}
	if needBus && !b.bus.AllocateBus(agnus.OwnerBlitter) {
		return false
	}
	if needIdle && !b.bus.BusIsFree(agnus.OwnerBlitter) {
		return false
	}
	b.bltpc++
	return true
}

func (b *Blitter) busRequirements(instr uint16) (bool, bool) {
	if instr&writeD == writeD {
		return !b.lockD, b.lockD
	}
	return instr&(fetch|bus) != 0, instr&busIdle == busIdle
}

func (b *Blitter) setXCounter(v uint16) {
	b.xCounter = v
	b.mask = 0xffff
	if v == b.bltsizeH {
		b.mask &= b.bltafwm
	}
	if v == 1 {
		b.mask &= b.bltalwm
	}
}

func (b *Blitter) resetCounters() {
	b.setXCounter(b.bltsizeH)
	b.yCounter = b.bltsizeV
}

// step a channel pointer through a copy blit. the modulo is added after the
// last word of each line.
func (b *Blitter) step(ptr *uint32, cnt *uint16, mod int16) {
	incr, m := int32(2), int32(mod)
	if b.desc() {
		incr, m = -incr, -m
	}
	*ptr = addr(*ptr, incr)
	*cnt--
	if *cnt == 0 {
		*ptr = addr(*ptr, m)
		*cnt = b.bltsizeH
	}
}

// next is the REPEAT instruction. The program counter returns to the start
// of the program while there are words to process.
func (b *Blitter) next(line bool) {
	b.lockD = false

	switch {
	case !line && b.xCounter > 1:
		b.bltpc = 0
		b.setXCounter(b.xCounter - 1)
	case b.yCounter > 1:
		b.bltpc = 0
		b.setXCounter(b.bltsizeH)
		b.yCounter--
	default:
		b.bbusy = false
	}
}

// execCopy runs one instruction of a copy blit. In fake mode the data was
// produced by the fast blitter and only the bus usage is reproduced.
func (b *Blitter) execCopy(instr uint16, fake bool) {
	needBus, needIdle := b.busRequirements(instr)
	if !b.acquire(instr, needBus, needIdle) {
		return
	}

	if fake {
		if instr&repeat == repeat {
			b.next(false)
		}
		if instr&bltDone == bltDone {
			b.endBlit()
		}
		return
	}

	desc := b.desc()

	if instr&writeD == writeD && !b.lockD {
		b.bus.BlitterWrite(b.bltdpt&b.ptrMask(), b.dhold)
		if b.cntD == 1 {
			b.fillCarry = b.bltcon1&FCI == FCI
		}
		b.step(&b.bltdpt, &b.cntD, b.bltdmod)
	}

	if instr&fetchA == fetchA {
		b.anew = b.bus.BlitterRead(b.bltapt & b.ptrMask())
		b.step(&b.bltapt, &b.cntA, b.bltamod)
	}
	if instr&fetchB == fetchB {
		b.bnew = b.bus.BlitterRead(b.bltbpt & b.ptrMask())
		b.step(&b.bltbpt, &b.cntB, b.bltbmod)
	}
	if instr&fetchC == fetchC {
		b.chold = b.bus.BlitterRead(b.bltcpt & b.ptrMask())
		b.step(&b.bltcpt, &b.cntC, b.bltcmod)
	}

	if instr&holdA == holdA {
		b.ahold = barrelShift(b.anew&b.mask, b.aold, b.ash(), desc)
		b.aold = b.anew & b.mask
	}
	if instr&holdB == holdB {
		b.bhold = barrelShift(b.bnew, b.bold, b.bsh(), desc)
		b.bold = b.bnew
	}

	if instr&holdD == holdD {
		b.dhold = b.minterm(b.ahold, b.bhold, b.chold)
		if !b.lockD {
			if instr&fill == fill {
				b.dhold = b.doFill(b.dhold)
			}
			if b.dhold != 0 {
				b.bzero = false
			}
		}
	}

	if instr&repeat == repeat {
		b.next(false)
	}
	if instr&bltDone == bltDone {
		b.endBlit()
	}
}

// execLine runs one instruction of a line blit.
func (b *Blitter) execLine(instr uint16, fake bool) {
	needBus, needIdle := instr&(fetch|bus|writeD) != 0, instr&busIdle == busIdle
	if !b.acquire(instr, needBus, needIdle) {
		return
	}

	if fake {
		if instr&repeat == repeat {
			b.next(true)
		}
		if instr&bltDone == bltDone {
			b.endBlit()
		}
		return
	}

	if instr&writeD == writeD && !b.lockD {
		b.bus.BlitterWrite(b.bltdpt&b.ptrMask(), b.dhold)
	}

	if instr&fetchB == fetchB {
		b.bnew = b.bus.BlitterRead(b.bltbpt & b.ptrMask())
		b.bltbpt = addr(b.bltbpt, int32(b.bltbmod))
	}
	if instr&fetchC == fetchC {
		b.chold = b.bus.BlitterRead(b.bltcpt & b.ptrMask())
	}

	if instr&holdA == holdA {
		b.lineHoldA()
	}
	if instr&holdB == holdB {
		b.lineHoldB()
	}
	if instr&holdD == holdD {
		b.lockD = !b.lineHoldD()
	}

	if instr&repeat == repeat {
		b.next(true)
		b.bltdpt = b.bltcpt
	}
	if instr&bltDone == bltDone {
		b.endBlit()
	}
}
