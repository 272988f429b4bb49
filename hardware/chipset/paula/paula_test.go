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

package paula_test

import (
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/test"
)

func TestRegisters(t *testing.T) {
	p := paula.NewPaula(scheduler.NewScheduler())

	p.PokeINTENA(paula.SETCLR | paula.INTEN | paula.VERTB.Bit())
	test.ExpectEquality(t, p.PeekINTENAR(), uint16(paula.INTEN)|paula.VERTB.Bit())

	p.PokeINTREQ(paula.SETCLR | paula.VERTB.Bit() | paula.RBF.Bit())
	test.ExpectSuccess(t, p.Pending(paula.VERTB))
	test.ExpectSuccess(t, p.Pending(paula.RBF))

	cleared := p.PokeINTREQ(paula.RBF.Bit())
	test.ExpectEquality(t, cleared, paula.RBF.Bit())
	test.ExpectFailure(t, p.Pending(paula.RBF))

	p.PokeADKCON(paula.SETCLR | paula.UARTBRK | 0x0011)
	test.ExpectEquality(t, p.PeekADKCONR(), uint16(paula.UARTBRK|0x0011))
	p.PokeADKCON(0x0001)
	test.ExpectEquality(t, p.ADKCON(), uint16(paula.UARTBRK|0x0010))
}

func TestIPL(t *testing.T) {
	p := paula.NewPaula(scheduler.NewScheduler())

	p.RaiseIrq(paula.AUD2)
	p.RaiseIrq(paula.TBE)
	test.ExpectEquality(t, p.IPL(), 0)

	// enabled but without the master enable
	p.PokeINTENA(paula.SETCLR | paula.AUD2.Bit() | paula.TBE.Bit())
	test.ExpectEquality(t, p.IPL(), 0)

	p.PokeINTENA(paula.SETCLR | paula.INTEN)
	test.ExpectEquality(t, p.IPL(), 4)

	p.PokeINTENA(paula.AUD2.Bit())
	test.ExpectEquality(t, p.IPL(), 1)

	p.PokeINTENA(paula.SETCLR | paula.EXTER.Bit())
	p.RaiseIrq(paula.EXTER)
	test.ExpectEquality(t, p.IPL(), 6)
}

func TestScheduledIrq(t *testing.T) {
	sch := scheduler.NewScheduler()
	p := paula.NewPaula(sch)

	p.ScheduleIrqAbs(paula.BLIT, clocks.DMACycles(10))
	p.ScheduleIrqAbs(paula.AUD0, clocks.DMACycles(4))

	// a later trigger does not replace an earlier one
	p.ScheduleIrqAbs(paula.AUD0, clocks.DMACycles(20))
	test.ExpectEquality(t, p.IrqTrigger(paula.AUD0), clocks.DMACycles(4))

	sch.AdvanceTo(clocks.DMACycles(3))
	test.ExpectFailure(t, p.Pending(paula.AUD0))

	sch.AdvanceTo(clocks.DMACycles(4))
	test.ExpectSuccess(t, p.Pending(paula.AUD0))
	test.ExpectFailure(t, p.Pending(paula.BLIT))
	test.ExpectEquality(t, p.IrqTrigger(paula.AUD0), clocks.NEVER)

	sch.AdvanceTo(clocks.DMACycles(10))
	test.ExpectSuccess(t, p.Pending(paula.BLIT))
	test.ExpectFailure(t, sch.HasEvent(scheduler.IRQ))
}
