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
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

func (b *Blitter) schedule(id scheduler.EventID, delay int64) {
	b.sch.ScheduleRel(scheduler.BLT, clocks.DMACycles(delay), id)
}

// ServiceEvent implements the scheduler.Handler interface.
func (b *Blitter) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	switch id {
	case strt1:
		b.prepare()

		// the blit waits for the DMA to be switched on
		if !b.bus.BlitterDMA() {
			logger.Log(b.env, "blitter", "blitter started with DMA off")
			b.stats.Parked++
			b.sch.ScheduleAbs(scheduler.BLT, clocks.NEVER, strt1)
			return
		}

		if !b.bus.BusIsFree(agnus.OwnerBlitter) {
			b.schedule(strt1, 1)
			return
		}
		b.schedule(strt2, 1)

	case strt2:
		if !b.bus.BusIsFree(agnus.OwnerBlitter) {
			b.schedule(strt2, 1)
			return
		}
		b.begin()

	case copySlow, copyFake:
		instr := copyProgram[b.use()][btoi(b.fill())][b.bltpc]
		b.execCopy(instr, id == copyFake)
		if b.running {
			b.schedule(id, 1)
		}

	case lineSlow, lineFake:
		instr := lineProgram[b.use()>>1&0x03][btoi(id == lineFake)][b.bltpc]
		b.execLine(instr, id == lineFake)
		if b.running {
			b.schedule(id, 1)
		}

	default:
		scheduler.UnknownEvent(slot, id)
	}
}

func (b *Blitter) prepare() {
	b.cntA = b.bltsizeH
	b.cntB = b.bltsizeH
	b.cntC = b.bltsizeH
	b.cntD = b.bltsizeH
	b.running = true
	b.bzero = true
	b.bbusy = true
	b.birq = false
	b.bltpc = 0
}

// begin the blit at the accuracy level given by the preferences.
func (b *Blitter) begin() {
	b.level = b.env.Prefs.Live.BlitterAccuracy.Load()

	if b.line() {
		b.stats.Line++
		switch b.level {
		case 0:
			b.fastLine()
			b.finishNow()
		case 1:
			b.fastLine()
			b.resetCounters()
			b.lockD = true
			b.schedule(lineFake, 1)
		default:
			b.resetCounters()
			b.aold = 0
			b.bold = 0
			b.lockD = false
			b.fillCarry = true
			b.schedule(lineSlow, 1)
		}
		return
	}

	b.stats.Copy++
	switch b.level {
	case 0:
		b.fastCopy()
		b.finishNow()
	case 1:
		b.fastCopy()
		b.resetCounters()
		b.lockD = true
		b.schedule(copyFake, 1)
	default:
		b.resetCounters()
		b.aold = 0
		b.bold = 0
		b.fillCarry = b.bltcon1&FCI == FCI
		b.lockD = true
		b.schedule(copySlow, 1)
	}
}

// finishNow terminates a blit that was performed in one go.
func (b *Blitter) finishNow() {
	b.bbusy = false
	b.irq.RaiseIrq(paula.BLIT)
	b.endBlit()
}

// endBlit empties the BLT slot and lets the copper know that the blit has
// finished.
func (b *Blitter) endBlit() {
	b.running = false
	b.sch.Cancel(scheduler.BLT)
	if b.cop != nil {
		b.cop.BlitterDidTerminate()
	}
}
