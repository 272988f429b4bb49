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
	"fmt"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// Bus is the view of Agnus required by the blitter.
type Bus interface {
	BusIsFree(owner agnus.BusOwner) bool
	AllocateBus(owner agnus.BusOwner) bool
	BlitterDMA() bool
	BlitterRead(addr uint32) uint16
	BlitterWrite(addr uint32, v uint16)
	Beam() (int, int)
	ECS() bool
}

// Memory is used by the blitter when it performs a blit in one go. Bus
// ownership is not recorded.
type Memory interface {
	Peek16(addr uint32) uint16
	Poke16(addr uint32, v uint16)
}

// Interrupts is the view of Paula required by the blitter.
type Interrupts interface {
	RaiseIrq(src paula.Source)
	ScheduleIrqRel(src paula.Source, delay clocks.Cycle)
}

// Copper is notified at the end of every blit.
type Copper interface {
	BlitterDidTerminate()
}

// BLTCON0 bits.
const (
	USEA = 1 << 11
	USEB = 1 << 10
	USEC = 1 << 9
	USED = 1 << 8
)

// BLTCON1 bits.
const (
	LINE = 1 << 0
	DESC = 1 << 1
	FCI  = 1 << 2
	IFE  = 1 << 3
	EFE  = 1 << 4
	SING = 1 << 1
	SUD  = 1 << 4
	SUL  = 1 << 3
	AUL  = 1 << 2
	SIGN = 1 << 6
)

// List of event IDs for the BLT slot.
const (
	strt1 scheduler.EventID = iota + 1
	strt2
	copySlow
	copyFake
	lineSlow
	lineFake
)

var labels = []string{"STRT1", "STRT2", "COPY_SLOW", "COPY_FAKE", "LINE_SLOW", "LINE_FAKE"}

// Stats records the number of blits started since the last reset.
type Stats struct {
	Copy int
	Line int

	// blits started while blitter DMA was disabled
	Parked int
}

// Blitter is the block transfer engine.
type Blitter struct {
	env *environment.Environment
	sch *scheduler.Scheduler
	bus Bus
	mem Memory
	irq Interrupts
	cop Copper

	bltcon0 uint16
	bltcon1 uint16
	bltafwm uint16
	bltalwm uint16

	bltapt uint32
	bltbpt uint32
	bltcpt uint32
	bltdpt uint32

	bltamod int16
	bltbmod int16
	bltcmod int16
	bltdmod int16

	// width in words and height in lines
	bltsizeH uint16
	bltsizeV uint16

	// data path registers
	anew  uint16
	bnew  uint16
	aold  uint16
	bold  uint16
	ahold uint16
	bhold uint16
	chold uint16
	dhold uint16

	// running is true from the write to BLTSIZE until the end of the blit.
	// bbusy is cleared when the last word has been processed, which may be
	// a few cycles before the end of the blit
	running bool
	bbusy   bool
	bzero   bool

	// the BLIT interrupt has been scheduled for this blit
	birq bool

	// fill carry in copy mode. in line mode the value is true while the
	// current pixel is the first on its row
	fillCarry bool

	// the D channel is not written until the pipeline has filled
	lockD bool

	// word mask for the current iteration of a copy blit
	mask uint16

	// word counters for each channel in the micro-program
	cntA uint16
	cntB uint16
	cntC uint16
	cntD uint16

	xCounter uint16
	yCounter uint16

	// program counter of the micro-program
	bltpc int

	// accuracy level of the current blit
	level int32

	stats Stats
}

// NewBlitter is the preferred method of initialisation for the Blitter type.
func NewBlitter(env *environment.Environment, sch *scheduler.Scheduler, bus Bus, mem Memory, irq Interrupts) *Blitter {
	b := &Blitter{
		env: env,
		sch: sch,
		bus: bus,
		mem: mem,
		irq: irq,
	}
	sch.Register(scheduler.BLT, b, labels...)
	b.Reset()
	return b
}

// Plumb the copper into the blitter.
func (b *Blitter) Plumb(cop Copper) {
	b.cop = cop
}

// Reset the blitter to its power-on state. The BLT slot is emptied.
func (b *Blitter) Reset() {
	*b = Blitter{
		env: b.env,
		sch: b.sch,
		bus: b.bus,
		mem: b.mem,
		irq: b.irq,
		cop: b.cop,
	}
	b.bltafwm = 0xffff
	b.bltalwm = 0xffff
	b.sch.Cancel(scheduler.BLT)
}

func (b *Blitter) String() string {
	return fmt.Sprintf("BLTCON0=%04x BLTCON1=%04x size=%dx%d running=%v", b.bltcon0, b.bltcon1, b.bltsizeH, b.bltsizeV, b.running)
}

// Busy returns true while a blit is in progress.
func (b *Blitter) Busy() bool {
	return b.running
}

// Flags returns the values of the BBUSY and BZERO bits of DMACONR.
func (b *Blitter) Flags() (bool, bool) {
	return b.bbusy, b.bzero
}

// Stats returns the blit counts.
func (b *Blitter) Stats() Stats {
	return b.stats
}

// DMAChanged should be called when the BLTEN or DMAEN bits of DMACON change.
// A blit that was started while the DMA was off begins.
func (b *Blitter) DMAChanged(on bool) {
	if !on {
		if b.running {
			logger.Log(b.env, "blitter", "DMA disabled while blitter is running")
		}
		return
	}

	ev := b.sch.Slot(scheduler.BLT)
	if ev.ID == strt1 && ev.Trigger == clocks.NEVER {
		b.sch.ScheduleAbs(scheduler.BLT, b.nextDMACycle(), strt1)
	}
}

func (b *Blitter) nextDMACycle() clocks.Cycle {
	clk := b.sch.Clock()
	if r := clk % clocks.MasterPerDMA; r != 0 {
		clk += clocks.MasterPerDMA - r
	}
	return clk
}

func (b *Blitter) ptrMask() uint32 {
	if b.bus.ECS() {
		return 0x1ffffe
	}
	return 0x07fffe
}

func (b *Blitter) line() bool {
	return b.bltcon1&LINE == LINE
}

func (b *Blitter) desc() bool {
	return b.bltcon1&DESC == DESC
}

func (b *Blitter) fill() bool {
	return b.bltcon1&(IFE|EFE) != 0
}

func (b *Blitter) ash() uint16 {
	return b.bltcon0 >> 12
}

func (b *Blitter) bsh() uint16 {
	return b.bltcon1 >> 12
}

func (b *Blitter) setASH(v uint16) {
	b.bltcon0 = b.bltcon0&0x0fff | (v&0xf)<<12
}

func (b *Blitter) setBSH(v uint16) {
	b.bltcon1 = b.bltcon1&0x0fff | (v&0xf)<<12
}

// use returns the USEx bits of BLTCON0 as a number between 0 and 15. channel
// A is the most significant bit.
func (b *Blitter) use() int {
	return int(b.bltcon0>>8) & 0x0f
}

func (b *Blitter) lf() uint8 {
	return uint8(b.bltcon0)
}

// Info is a summary of the blitter suitable for inspection.
type Info struct {
	BLTCON0 uint16
	BLTCON1 uint16
	ASH     uint16
	BSH     uint16
	Minterm uint8
	BLTAPT  uint32
	BLTBPT  uint32
	BLTCPT  uint32
	BLTDPT  uint32
	BLTAFWM uint16
	BLTALWM uint16
	BLTAMOD int16
	BLTBMOD int16
	BLTCMOD int16
	BLTDMOD int16
	AOld    uint16
	BOld    uint16
	AHold   uint16
	BHold   uint16
	CHold   uint16
	DHold   uint16
	Width   uint16
	Height  uint16
	Running bool
	BBUSY   bool
	BZERO   bool
	Event   string
}

func (inf Info) String() string {
	mode := "copy"
	if inf.BLTCON1&LINE == LINE {
		mode = "line"
	}
	return fmt.Sprintf("%s %dx%d LF=%02x A=%06x B=%06x C=%06x D=%06x running=%v",
		mode, inf.Width, inf.Height, inf.Minterm, inf.BLTAPT, inf.BLTBPT, inf.BLTCPT, inf.BLTDPT, inf.Running)
}

// Info returns a summary of the blitter.
func (b *Blitter) Info() Info {
	mask := b.ptrMask()
	inf := Info{
		BLTCON0: b.bltcon0,
		BLTCON1: b.bltcon1,
		ASH:     b.ash(),
		BSH:     b.bsh(),
		Minterm: b.lf(),
		BLTAPT:  b.bltapt & mask,
		BLTBPT:  b.bltbpt & mask,
		BLTCPT:  b.bltcpt & mask,
		BLTDPT:  b.bltdpt & mask,
		BLTAFWM: b.bltafwm,
		BLTALWM: b.bltalwm,
		BLTAMOD: b.bltamod,
		BLTBMOD: b.bltbmod,
		BLTCMOD: b.bltcmod,
		BLTDMOD: b.bltdmod,
		AOld:    b.aold,
		BOld:    b.bold,
		AHold:   b.ahold,
		BHold:   b.bhold,
		CHold:   b.chold,
		DHold:   b.dhold,
		Width:   b.bltsizeH,
		Height:  b.bltsizeV,
		Running: b.running,
		BBUSY:   b.bbusy,
		BZERO:   b.bzero,
		Event:   "IDLE",
	}
	if ev := b.sch.Slot(scheduler.BLT); ev.ID != scheduler.NoEvent {
		inf.Event = b.sch.Label(scheduler.BLT, ev.ID)
	}
	return inf
}
