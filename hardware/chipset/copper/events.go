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

import (
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// schedule the next event delay DMA cycles from now. the data value of the
// slot is preserved.
func (c *Copper) schedule(id scheduler.EventID, delay int64) {
	c.sch.ScheduleRel(scheduler.COP, clocks.DMACycles(delay), id)
}

// park the event in the slot. it will not be dispatched until it is
// rescheduled.
func (c *Copper) park(id scheduler.EventID) {
	c.sch.ScheduleAbs(scheduler.COP, clocks.NEVER, id)
}

// busIsFree returns true if the copper can use the current DMA cycle. If it
// can't, the event is retried in the next cycle. If copper DMA is off the
// event is parked until DMAChanged() is called.
func (c *Copper) busIsFree(id scheduler.EventID) bool {
	if c.bus.CopperCanDoDMA() {
		return true
	}

	if !c.bus.CopperDMA() {
		c.stalled = true
		c.stalledID = id
		c.park(id)
		return false
	}

	c.schedule(id, 1)
	return false
}

// evenCycle returns true if the current DMA cycle is even. if it isn't the
// event is retried in the next cycle.
func (c *Copper) evenCycle(id scheduler.EventID) bool {
	_, h := c.bus.Beam()
	if h&0x01 == 0x01 {
		c.schedule(id, 1)
		return false
	}
	return true
}

// illegal returns true if a MOVE to the register would halt the copper.
func (c *Copper) illegal(reg uint16) bool {
	if c.cdang {
		if c.bus.ECS() {
			return false
		}
		return reg < 0x40
	}
	return reg < 0x80
}

// ServiceEvent implements the scheduler.Handler interface.
func (c *Copper) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, data int64) {
	switch id {
	case reqDMA:
		if !c.busIsFree(id) || !c.evenCycle(id) {
			return
		}
		c.schedule(fetch, 2)

	case wakeup:
		if !c.busIsFree(id) || !c.evenCycle(id) {
			return
		}

		// the comparison is made again in case the registers have changed
		// since the wakeup was scheduled
		if c.runComparator() {
			c.schedule(fetch, 2)
		} else {
			c.scheduleWaitWakeup(c.bfd())
		}

	case wakeupBlit:
		if c.busy() {
			c.park(waitBlit)
			return
		}
		if !c.busIsFree(id) || !c.evenCycle(id) {
			return
		}
		c.schedule(fetch, 2)

	case fetch:
		if !c.busIsFree(id) {
			return
		}

		// the previous instruction was a SKIP
		if c.isSkip() {
			c.skip = c.runComparator()
			if !c.bfd() {
				c.skip = c.skip && !c.busy()
			}
		}

		c.cop1ins = c.bus.CopperRead(c.coppc & c.ptrMask())
		c.advancePC()
		c.stats.Instructions++

		if c.isMove() {
			c.schedule(move, 2)
		} else {
			c.schedule(waitOrSkip, 2)
		}

	case move:
		if !c.busIsFree(id) {
			return
		}

		c.cop2ins = c.bus.CopperRead(c.coppc & c.ptrMask())
		c.advancePC()

		reg := c.cop1ins & 0x1fe
		if c.illegal(reg) {
			c.stats.Halted = true
			c.logHalt(reg)
			c.sch.Cancel(scheduler.COP)
			return
		}

		c.schedule(fetch, 2)

		if c.skip {
			c.skip = false
			return
		}

		switch registers.Register(reg) {
		case registers.COPJMP1:
			c.sch.ScheduleAbsData(scheduler.COP, c.sch.Clock()+clocks.DMACycles(2), jmp1, 1)
		case registers.COPJMP2:
			c.sch.ScheduleAbsData(scheduler.COP, c.sch.Clock()+clocks.DMACycles(2), jmp1, 2)
		default:
			c.stats.Moves++
			if c.regs != nil {
				c.regs.CopperWrite(registers.Register(reg), c.cop2ins)
			}
		}

	case waitOrSkip:
		if !c.busIsFree(id) {
			return
		}

		c.cop2ins = c.bus.CopperRead(c.coppc & c.ptrMask())
		c.advancePC()

		if c.isWait() {
			c.schedule(wait1, 2)
		} else {
			c.schedule(skip1, 2)
		}

	case wait1:
		if !c.busIsFree(id) {
			return
		}
		c.schedule(wait2, 2)

	case wait2:
		c.skip = false

		if !c.bfd() && c.busy() {
			c.park(waitBlit)
			return
		}
		if !c.busIsFree(id) {
			return
		}
		c.scheduleWaitWakeup(c.bfd())

	case waitBlit:
		_, h := c.bus.Beam()
		if o := c.bus.Owner(h); o != agnus.OwnerNone && o != agnus.OwnerBlitter {
			c.schedule(id, 1)
			return
		}
		c.scheduleWaitWakeup(false)

	case skip1:
		if !c.busIsFree(id) {
			return
		}
		c.schedule(skip2, 2)

	case skip2:
		if !c.busIsFree(id) {
			return
		}
		c.schedule(fetch, 2)

	case jmp1:
		// the bus is not needed in this cycle but it is still allocated
		_ = c.bus.AllocateBus(agnus.OwnerCopper)

		_, h := c.bus.Beam()
		if h == 0xe0 {
			c.schedule(jmp2, 1)
			return
		}
		c.schedule(jmp2, 2)

	case jmp2:
		if !c.busIsFree(id) {
			return
		}
		c.switchToList(int(data))
		c.schedule(fetch, 2)

	default:
		scheduler.UnknownEvent(slot, id)
	}
}
