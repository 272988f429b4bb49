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

package paula

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// Register bits.
const (
	SETCLR = 1 << 15
	INTEN  = 1 << 14

	// ADKCON bits
	UARTBRK = 1 << 11
)

const irqCheck scheduler.EventID = 1

// Paula is the interrupt controller. It also holds the ADKCON register, which
// is used by the audio channels and the UART.
type Paula struct {
	sch *scheduler.Scheduler

	intreq uint16
	intena uint16
	adkcon uint16

	// pending interrupt triggers. NEVER if the source has no pending trigger
	trigger [NumSources]clocks.Cycle
}

// NewPaula is the preferred method of initialisation for the Paula type.
func NewPaula(sch *scheduler.Scheduler) *Paula {
	p := &Paula{
		sch: sch,
	}
	sch.Register(scheduler.IRQ, p, "CHECK")
	p.Reset()
	return p
}

// Reset Paula to its power-on state.
func (p *Paula) Reset() {
	p.intreq = 0
	p.intena = 0
	p.adkcon = 0
	for i := range p.trigger {
		p.trigger[i] = clocks.NEVER
	}
	p.sch.Cancel(scheduler.IRQ)
}

func (p *Paula) String() string {
	return fmt.Sprintf("INTREQ=%04x INTENA=%04x ADKCON=%04x IPL=%d", p.intreq, p.intena, p.adkcon, p.IPL())
}

func setclr(reg uint16, v uint16) uint16 {
	if v&SETCLR == SETCLR {
		return reg | (v & 0x7fff)
	}
	return reg &^ v
}

// PeekINTREQR returns the value of the INTREQR register.
func (p *Paula) PeekINTREQR() uint16 {
	return p.intreq
}

// PeekINTENAR returns the value of the INTENAR register.
func (p *Paula) PeekINTENAR() uint16 {
	return p.intena
}

// PeekADKCONR returns the value of the ADKCONR register.
func (p *Paula) PeekADKCONR() uint16 {
	return p.adkcon
}

// ADKCON returns the current value of the ADKCON register.
func (p *Paula) ADKCON() uint16 {
	return p.adkcon
}

// PokeINTREQ sets or clears the interrupt request bits. The bits that were
// cleared by the write are returned.
func (p *Paula) PokeINTREQ(v uint16) uint16 {
	old := p.intreq
	p.intreq = setclr(p.intreq, v) & 0x3fff
	return old &^ p.intreq
}

// PokeINTENA sets or clears the interrupt enable bits.
func (p *Paula) PokeINTENA(v uint16) {
	p.intena = setclr(p.intena, v)
}

// PokeADKCON sets or clears the ADKCON bits.
func (p *Paula) PokeADKCON(v uint16) {
	p.adkcon = setclr(p.adkcon, v)
}

// RaiseIrq sets the request bit for the source immediately.
func (p *Paula) RaiseIrq(src Source) {
	p.intreq |= src.Bit()
}

// Pending returns true if the source is requesting an interrupt.
func (p *Paula) Pending(src Source) bool {
	return p.intreq&src.Bit() == src.Bit()
}

// ScheduleIrqAbs arranges for the source to be raised at the specified cycle.
// If the source already has a pending trigger the earlier of the two cycles
// is kept.
func (p *Paula) ScheduleIrqAbs(src Source, cycle clocks.Cycle) {
	if cycle < p.trigger[src] {
		p.trigger[src] = cycle
	}

	ev := p.sch.Slot(scheduler.IRQ)
	if !p.sch.HasEvent(scheduler.IRQ) || cycle < ev.Trigger {
		p.sch.ScheduleAbs(scheduler.IRQ, cycle, irqCheck)
	}
}

// ScheduleIrqRel arranges for the source to be raised after a number of
// master cycles.
func (p *Paula) ScheduleIrqRel(src Source, delay clocks.Cycle) {
	p.ScheduleIrqAbs(src, p.sch.Clock()+delay)
}

// IrqTrigger returns the cycle at which the source will be raised. NEVER is
// returned if the source has no pending trigger.
func (p *Paula) IrqTrigger(src Source) clocks.Cycle {
	return p.trigger[src]
}

// ServiceEvent implements the scheduler.Handler interface.
func (p *Paula) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	if id != irqCheck {
		scheduler.UnknownEvent(slot, id)
	}

	clk := p.sch.Clock()
	next := clocks.NEVER
	for src := range p.trigger {
		if p.trigger[src] <= clk {
			p.intreq |= Source(src).Bit()
			p.trigger[src] = clocks.NEVER
		} else if p.trigger[src] < next {
			next = p.trigger[src]
		}
	}

	if next != clocks.NEVER {
		p.sch.ScheduleAbs(scheduler.IRQ, next, irqCheck)
	}
}

// IPL returns the interrupt priority level that Paula presents to the CPU.
// Zero means that there is no interrupt.
func (p *Paula) IPL() int {
	if p.intena&INTEN != INTEN {
		return 0
	}

	active := p.intreq & p.intena & 0x3fff
	var level int
	for src := TBE; src < NumSources; src++ {
		if active&src.Bit() == src.Bit() && levels[src] > level {
			level = levels[src]
		}
	}
	return level
}

// Info is a summary of Paula suitable for inspection.
type Info struct {
	INTREQ uint16
	INTENA uint16
	ADKCON uint16
	IPL    int

	// pending interrupt triggers
	Triggers [NumSources]clocks.Cycle
}

func (inf Info) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("INTREQ=%04x INTENA=%04x ADKCON=%04x IPL=%d", inf.INTREQ, inf.INTENA, inf.ADKCON, inf.IPL))
	for src, t := range inf.Triggers {
		if t != clocks.NEVER {
			b.WriteString(fmt.Sprintf(" %s@%d", Source(src), t))
		}
	}
	return b.String()
}

// Info returns a summary of Paula.
func (p *Paula) Info() Info {
	return Info{
		INTREQ:   p.intreq,
		INTENA:   p.intena,
		ADKCON:   p.adkcon,
		IPL:      p.IPL(),
		Triggers: p.trigger,
	}
}
