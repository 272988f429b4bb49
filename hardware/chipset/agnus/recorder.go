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

package agnus

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

const regChange scheduler.EventID = 1

type change struct {
	trigger clocks.Cycle
	reg     registers.Register
	value   uint16
}

func (c change) String() string {
	return fmt.Sprintf("%s=%04x @ %d", c.reg, c.value, c.trigger)
}

// RecordRegisterChange arranges for the register to be set to the value after
// the specified number of DMA cycles. Changes with the same trigger are
// applied in the order they were recorded.
func (a *Agnus) RecordRegisterChange(delay int64, reg registers.Register, value uint16) {
	c := change{
		trigger: a.sch.Clock() + clocks.DMACycles(delay),
		reg:     reg,
		value:   value,
	}

	i, _ := slices.BinarySearchFunc(a.changes, c.trigger, func(e change, t clocks.Cycle) int {
		if e.trigger <= t {
			return -1
		}
		return 1
	})
	a.changes = slices.Insert(a.changes, i, c)

	a.sch.ScheduleAbs(scheduler.REG, a.changes[0].trigger, regChange)
}

// PendingChanges returns the number of register changes waiting to be
// applied.
func (a *Agnus) PendingChanges() int {
	return len(a.changes)
}

func (a *Agnus) serviceChanges() {
	clk := a.sch.Clock()

	for len(a.changes) > 0 && a.changes[0].trigger <= clk {
		c := a.changes[0]
		a.changes = a.changes[1:]
		if a.regs != nil {
			a.regs.ApplyRegister(c.reg, c.value)
		}
	}

	if len(a.changes) > 0 {
		a.sch.ScheduleAbs(scheduler.REG, a.changes[0].trigger, regChange)
	}
}
