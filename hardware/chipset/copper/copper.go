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
	"fmt"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// Bus is the view of Agnus required by the Copper.
type Bus interface {
	CopperCanDoDMA() bool
	CopperDMA() bool
	AllocateBus(owner agnus.BusOwner) bool
	Owner(h int) agnus.BusOwner
	CopperRead(addr uint32) uint16
	Beam() (int, int)
	Lines() int
	ECS() bool
}

// Blitter is the view of the blitter required by the Copper.
type Blitter interface {
	Busy() bool
}

// Registers receives the register writes made by the MOVE instruction.
type Registers interface {
	CopperWrite(reg registers.Register, value uint16)
}

// COPCON bits.
const CDANG = 1 << 1

// List of event IDs for the COP slot.
const (
	reqDMA scheduler.EventID = iota + 1
	fetch
	move
	waitOrSkip
	wait1
	wait2
	waitBlit
	skip1
	skip2
	jmp1
	jmp2
	wakeup
	wakeupBlit
)

var labels = []string{
	"REQ_DMA", "FETCH", "MOVE", "WAIT_OR_SKIP", "WAIT1", "WAIT2", "WAIT_BLIT",
	"SKIP1", "SKIP2", "JMP1", "JMP2", "WAKEUP", "WAKEUP_BLIT",
}

// Stats records the activity of the Copper in a frame.
type Stats struct {
	// number of instructions fetched
	Instructions int

	// number of MOVE instructions that wrote to a register
	Moves int

	// the copper was halted by an illegal MOVE
	Halted bool
}

// Copper is the list processor.
type Copper struct {
	env  *environment.Environment
	sch  *scheduler.Scheduler
	bus  Bus
	blt  Blitter
	regs Registers

	// the program counter and the location registers of the two lists
	coppc  uint32
	cop1lc uint32
	cop2lc uint32

	// the highest address reached by each list
	cop1end uint32
	cop2end uint32

	// the list being executed
	copList int

	// instruction latches
	cop1ins uint16
	cop2ins uint16

	// copper danger bit. the copper may write to the blitter registers
	cdang bool

	// set by a SKIP instruction and consumed by the next MOVE
	skip bool

	// the copper had DMA at the start of the frame
	activeInThisFrame bool

	// the event that was parked because copper DMA was disabled
	stalled   bool
	stalledID scheduler.EventID

	stats     Stats
	lastStats Stats
}

// NewCopper is the preferred method of initialisation for the Copper type.
func NewCopper(env *environment.Environment, sch *scheduler.Scheduler, bus Bus) *Copper {
	c := &Copper{
		env: env,
		sch: sch,
		bus: bus,
	}
	sch.Register(scheduler.COP, c, labels...)
	c.Reset()
	return c
}

// Plumb the Copper to the blitter and to the register write path.
func (c *Copper) Plumb(blt Blitter, regs Registers) {
	c.blt = blt
	c.regs = regs
}

// Reset the Copper to its power-on state. The COP slot is emptied.
func (c *Copper) Reset() {
	c.coppc = 0
	c.cop1lc = 0
	c.cop2lc = 0
	c.cop1end = 0
	c.cop2end = 0
	c.copList = 1
	c.cop1ins = 0
	c.cop2ins = 0
	c.cdang = false
	c.skip = false
	c.activeInThisFrame = false
	c.stalled = false
	c.stalledID = 0
	c.stats = Stats{}
	c.lastStats = Stats{}
	c.sch.Cancel(scheduler.COP)
}

func (c *Copper) String() string {
	return fmt.Sprintf("COPPC=%06x COP1LC=%06x COP2LC=%06x %s", c.coppc, c.cop1lc, c.cop2lc, c.State())
}

// State returns the name of the next event in the COP slot.
func (c *Copper) State() string {
	ev := c.sch.Slot(scheduler.COP)
	if ev.ID == scheduler.NoEvent {
		return "HALTED"
	}
	return c.sch.Label(scheduler.COP, ev.ID)
}

// ptrMask is the mask applied to chip RAM addresses generated by the copper.
func (c *Copper) ptrMask() uint32 {
	if c.bus.ECS() {
		return 0x1ffffe
	}
	return 0x07fffe
}

func (c *Copper) busy() bool {
	return c.blt != nil && c.blt.Busy()
}

// PokeCOPCON writes the COPCON register.
func (c *Copper) PokeCOPCON(value uint16) {
	c.cdang = value&CDANG == CDANG
}

// CDANG returns true if the copper danger bit is set.
func (c *Copper) CDANG() bool {
	return c.cdang
}

func replaceHi(v uint32, w uint16) uint32 {
	return v&0x0000ffff | uint32(w)<<16
}

func replaceLo(v uint32, w uint16) uint32 {
	return v&0xffff0000 | uint32(w)
}

// PokeCOP1LCH writes the high word of the first list's location.
func (c *Copper) PokeCOP1LCH(value uint16) {
	c.setCOP1LC(replaceHi(c.cop1lc, value&0x001f))
}

// PokeCOP1LCL writes the low word of the first list's location.
func (c *Copper) PokeCOP1LCL(value uint16) {
	c.setCOP1LC(replaceLo(c.cop1lc, value&0xfffe))
}

func (c *Copper) setCOP1LC(v uint32) {
	if v == c.cop1lc {
		return
	}
	c.cop1lc = v
	c.cop1end = v

	// a copper that is not running this frame picks up the new location
	// immediately
	if !c.activeInThisFrame && c.copList == 1 {
		c.coppc = v
	}
}

// PokeCOP2LCH writes the high word of the second list's location.
func (c *Copper) PokeCOP2LCH(value uint16) {
	if v := replaceHi(c.cop2lc, value&0x001f); v != c.cop2lc {
		c.cop2lc = v
		c.cop2end = v
	}
}

// PokeCOP2LCL writes the low word of the second list's location.
func (c *Copper) PokeCOP2LCL(value uint16) {
	if v := replaceLo(c.cop2lc, value&0xfffe); v != c.cop2lc {
		c.cop2lc = v
		c.cop2end = v
	}
}

// PokeCOPJMP is the strobe of the COPJMP1 and COPJMP2 registers when written
// by the CPU. The list argument is 1 or 2. A MOVE to the COPJMP registers is
// handled by the copper itself.
func (c *Copper) PokeCOPJMP(list int) {
	c.switchToList(list)
	c.stalled = false
	c.sch.ScheduleAbs(scheduler.COP, c.nextDMACycle(), reqDMA)
}

// PokeCOPINS writes to the instruction latches.
//
// Which latch receives the value is uncertain. With the copinslatch
// preference enabled the second latch is written while the copper is
// between the fetches of the first and second words of an instruction.
// Otherwise the first latch is always written.
func (c *Copper) PokeCOPINS(value uint16) {
	if c.env.Prefs.Live.CopinsLatch.Load() {
		id := c.sch.Slot(scheduler.COP).ID
		if id == move || id == waitOrSkip {
			c.cop2ins = value
			return
		}
	}
	c.cop1ins = value
}

// nextDMACycle returns the current clock, rounded up to the start of a DMA
// cycle.
func (c *Copper) nextDMACycle() clocks.Cycle {
	clk := c.sch.Clock()
	if r := clk % clocks.MasterPerDMA; r != 0 {
		clk += clocks.MasterPerDMA - r
	}
	return clk
}

func (c *Copper) switchToList(list int) {
	if list != 1 && list != 2 {
		panic(fmt.Sprintf("copper: no such list (%d)", list))
	}
	c.copList = list
	if list == 1 {
		c.coppc = c.cop1lc
	} else {
		c.coppc = c.cop2lc
	}
}

func (c *Copper) advancePC() {
	c.coppc += 2
	switch c.copList {
	case 1:
		c.cop1end = max(c.cop1end, c.coppc)
	case 2:
		c.cop2end = max(c.cop2end, c.coppc)
	}
}

// VsyncAction is called at the start of every frame. The copper is forced to
// restart at the location of the first list, whatever its current state.
func (c *Copper) VsyncAction() {
	c.lastStats = c.stats
	c.stats = Stats{}

	c.activeInThisFrame = c.bus.CopperDMA()
	c.switchToList(1)
	c.stalled = false
	c.sch.ScheduleAbsData(scheduler.COP, c.nextDMACycle(), jmp1, 1)
}

// DMAChanged should be called when the COPEN or DMAEN bits of DMACON change.
// A copper event parked while the DMA was off is resumed.
func (c *Copper) DMAChanged(on bool) {
	if !on || !c.stalled {
		return
	}
	c.stalled = false
	c.sch.ScheduleAbs(scheduler.COP, c.nextDMACycle(), c.stalledID)
}

// BlitterDidTerminate is called by the blitter at the end of every blit. A
// copper waiting for the blitter wakes up in the next even cycle.
func (c *Copper) BlitterDidTerminate() {
	ev := c.sch.Slot(scheduler.COP)
	if ev.ID != waitBlit {
		return
	}

	_, h := c.bus.Beam()
	if h&0x01 == 0 {
		c.ServiceEvent(scheduler.COP, waitBlit, ev.Data)
		return
	}
	c.schedule(waitBlit, 1)
}

// Stats returns the statistics of the current frame and the previous frame.
func (c *Copper) Stats() (Stats, Stats) {
	return c.stats, c.lastStats
}

// Info is a summary of the Copper suitable for inspection.
type Info struct {
	State   string
	List    int
	COPPC   uint32
	COP1LC  uint32
	COP2LC  uint32
	COP1End uint32
	COP2End uint32
	COP1INS uint16
	COP2INS uint16
	CDANG   bool
	Skip    bool
	Active  bool
}

func (inf Info) String() string {
	return fmt.Sprintf("%s list=%d COPPC=%06x COPINS=%04x %04x", inf.State, inf.List, inf.COPPC, inf.COP1INS, inf.COP2INS)
}

// Info returns a summary of the copper.
func (c *Copper) Info() Info {
	mask := c.ptrMask()
	return Info{
		State:   c.State(),
		List:    c.copList,
		COPPC:   c.coppc & mask,
		COP1LC:  c.cop1lc & mask,
		COP2LC:  c.cop2lc & mask,
		COP1End: c.cop1end & mask,
		COP2End: c.cop2end & mask,
		COP1INS: c.cop1ins,
		COP2INS: c.cop2ins,
		CDANG:   c.cdang,
		Skip:    c.skip,
		Active:  c.sch.IsPending(scheduler.COP),
	}
}

func (c *Copper) logHalt(reg uint16) {
	logger.Logf(c.env, "copper", "halted by MOVE to %s at %06x", registers.Name(reg), (c.coppc-4)&c.ptrMask())
}
