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

	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/hardware/preferences"
)

// Number of DMA cycles in a line.
const HPOS = 227

// Number of lines in a frame.
const (
	LinesPAL  = 313
	LinesNTSC = 263
)

// DMACON bits.
const (
	AUD0EN = 1 << 0
	AUD1EN = 1 << 1
	AUD2EN = 1 << 2
	AUD3EN = 1 << 3
	DSKEN  = 1 << 4
	SPREN  = 1 << 5
	BLTEN  = 1 << 6
	COPEN  = 1 << 7
	BPLEN  = 1 << 8
	DMAEN  = 1 << 9
	BLTPRI = 1 << 10
	BZERO  = 1 << 13
	BBUSY  = 1 << 14
	SETCLR = 1 << 15
)

// AudioSink receives the data words fetched by audio DMA.
type AudioSink interface {
	AudioDMA(channel int, value uint16)
}

// RegisterSink applies register changes recorded with RecordRegisterChange().
type RegisterSink interface {
	ApplyRegister(reg registers.Register, value uint16)
}

// Agnus is the DMA controller.
type Agnus struct {
	sch   *scheduler.Scheduler
	mem   *memory.ChipRAM
	prefs *preferences.Preferences

	audio AudioSink
	regs  RegisterSink

	// number of lines in a frame. decided on Reset()
	lines int64

	dmacon uint16

	// bus owner and value of every DMA cycle in the current line
	owner     [HPOS]BusOwner
	value     [HPOS]uint16
	ownerLine int64

	// blitter slow down. the CPU has been denied the bus for too long
	bls bool

	stats     Stats
	lastStats Stats

	// audio DMA pointers and locations
	audpt [4]uint32
	audlc [4]uint32

	// audio DMA requests and pointer reload requests
	audDR  [4]bool
	audDSR [4]bool

	// pending register changes
	changes []change
}

// NewAgnus is the preferred method of initialisation for the Agnus type.
func NewAgnus(sch *scheduler.Scheduler, mem *memory.ChipRAM, prefs *preferences.Preferences) *Agnus {
	a := &Agnus{
		sch:   sch,
		mem:   mem,
		prefs: prefs,
	}
	sch.Register(scheduler.DAS, a, dasLabels...)
	sch.Register(scheduler.REG, a, "CHANGE")
	a.Reset()
	return a
}

// Plumb the Agnus instance to the components that receive DMA data and
// register changes.
func (a *Agnus) Plumb(audio AudioSink, regs RegisterSink) {
	a.audio = audio
	a.regs = regs
}

// Reset Agnus to its power-on state. The scheduler should be reset before
// Agnus.
func (a *Agnus) Reset() {
	if a.prefs.Live.NTSC.Load() {
		a.lines = LinesNTSC
	} else {
		a.lines = LinesPAL
	}
	a.dmacon = 0
	a.owner = [HPOS]BusOwner{}
	a.value = [HPOS]uint16{}
	a.ownerLine = 0
	a.bls = false
	a.stats = Stats{}
	a.lastStats = Stats{}
	a.audpt = [4]uint32{}
	a.audlc = [4]uint32{}
	a.audDR = [4]bool{}
	a.audDSR = [4]bool{}
	a.changes = a.changes[:0]
	a.scheduleFirstDAS()
}

func (a *Agnus) String() string {
	v, h := a.Beam()
	return fmt.Sprintf("(%d, $%02x) DMACON=%04x", v, h, a.dmacon)
}

// ServiceEvent implements the scheduler.Handler interface.
func (a *Agnus) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, data int64) {
	switch slot {
	case scheduler.DAS:
		a.serviceDAS(id)
	case scheduler.REG:
		a.serviceChanges()
	default:
		scheduler.UnknownEvent(slot, id)
	}
}

// ECS returns true if the Agnus revision is ECS.
func (a *Agnus) ECS() bool {
	return a.prefs.Live.ECS.Load()
}

// Lines returns the number of lines in a frame.
func (a *Agnus) Lines() int {
	return int(a.lines)
}

// FrameLength returns the number of master cycles in a frame.
func (a *Agnus) FrameLength() clocks.Cycle {
	return clocks.DMACycles(a.lines * HPOS)
}

// Frame returns the number of the current frame.
func (a *Agnus) Frame() int64 {
	return clocks.AsDMACycles(a.sch.Clock()) / (a.lines * HPOS)
}

// FrameStart returns the master cycle at which the frame begins.
func (a *Agnus) FrameStart(frame int64) clocks.Cycle {
	return clocks.DMACycles(frame * a.lines * HPOS)
}

// Beam returns the vertical and horizontal position of the beam. The
// horizontal position is measured in DMA cycles.
func (a *Agnus) Beam() (int, int) {
	pos := clocks.AsDMACycles(a.sch.Clock()) % (a.lines * HPOS)
	return int(pos / HPOS), int(pos % HPOS)
}

// BeamToCycle returns the master cycle of the beam position in the current
// frame.
func (a *Agnus) BeamToCycle(v int, h int) clocks.Cycle {
	return a.FrameStart(a.Frame()) + clocks.DMACycles(int64(v)*HPOS+int64(h))
}

// DMACON returns the current value of the DMACON register, without the BBUSY
// and BZERO bits.
func (a *Agnus) DMACON() uint16 {
	return a.dmacon
}

// PeekDMACONR returns the value of DMACON as read through the DMACONR
// register. The blitter flags are supplied by the caller.
func (a *Agnus) PeekDMACONR(bbusy bool, bzero bool) uint16 {
	v := a.dmacon
	if bbusy {
		v |= BBUSY
	}
	if bzero {
		v |= BZERO
	}
	return v
}

// PokeDMACON sets or clears the DMACON bits according to bit 15 of the value.
// The previous and new values are returned so that the caller can inform the
// components affected by any change.
func (a *Agnus) PokeDMACON(value uint16) (uint16, uint16) {
	old := a.dmacon
	if value&SETCLR == SETCLR {
		a.dmacon = (a.dmacon | value) & 0x07ff
	} else {
		a.dmacon = (a.dmacon &^ value) & 0x07ff
	}
	return old, a.dmacon
}

func enabled(dmacon uint16, bit uint16) bool {
	return dmacon&DMAEN == DMAEN && dmacon&bit == bit
}

// CopperDMA returns true if Copper DMA is enabled.
func (a *Agnus) CopperDMA() bool {
	return enabled(a.dmacon, COPEN)
}

// BlitterDMA returns true if Blitter DMA is enabled.
func (a *Agnus) BlitterDMA() bool {
	return enabled(a.dmacon, BLTEN)
}

// AudioDMA returns true if audio DMA for the channel is enabled.
func (a *Agnus) AudioDMA(channel int) bool {
	return enabled(a.dmacon, AUD0EN<<channel)
}

// BlitterDMAChanged returns true if the previous and current values of DMACON differ
// in whether blitter DMA is enabled. The second value is the new state.
func BlitterDMAChanged(prev uint16, curr uint16) (bool, bool) {
	o := enabled(prev, BLTEN)
	n := enabled(curr, BLTEN)
	return o != n, n
}

// CopperDMAChanged returns true if the previous and current values of DMACON differ
// in whether copper DMA is enabled. The second value is the new state.
func CopperDMAChanged(prev uint16, curr uint16) (bool, bool) {
	o := enabled(prev, COPEN)
	n := enabled(curr, COPEN)
	return o != n, n
}

// AudioDMAChanged returns true if the previous and current values of DMACON differ
// in whether audio DMA for the channel is enabled. The second value is the
// new state.
func AudioDMAChanged(prev uint16, curr uint16, channel int) (bool, bool) {
	o := enabled(prev, AUD0EN<<channel)
	n := enabled(curr, AUD0EN<<channel)
	return o != n, n
}
