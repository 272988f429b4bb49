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

package audio

import (
	"fmt"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// DMA is the interface to the audio DMA controller.
type DMA interface {
	// whether DMA is enabled for the channel
	AudioDMA(channel int) bool

	// request a data word for the channel
	AudioDMARequest(channel int)

	// request that the DMA pointer be reloaded from the location register
	AudioPointerReload(channel int)
}

// Interrupts is the interface to the interrupt controller.
type Interrupts interface {
	ScheduleIrqRel(src paula.Source, delay clocks.Cycle)
	Pending(src paula.Source) bool
	ADKCON() uint16
}

// State of the channel state machine.
type State uint8

// List of valid State values.
const (
	State000 State = 0b000
	State001 State = 0b001
	State010 State = 0b010
	State011 State = 0b011
	State101 State = 0b101
)

func (s State) String() string {
	return fmt.Sprintf("%03b", uint8(s))
}

const perfin scheduler.EventID = 1

// Channel is a single audio channel.
type Channel struct {
	env  *environment.Environment
	sch  *scheduler.Scheduler
	dma  DMA
	irq  Interrupts
	slot scheduler.Slot

	nr int

	// the next channel. used by the attach modes. nil for channel 3
	next *Channel

	state State

	// latched and live values of the length, period and volume registers
	lenLatch uint16
	audlen   uint16
	perLatch uint16
	volLatch uint16
	audvol   uint16

	// most recent data word and the output buffer
	auddat uint16
	buffer uint16

	// interrupt will be raised on the next DMA transition that allows it
	intreq2 bool

	// write guards for the output latch. released when a new data word
	// arrives
	enablePenhi bool
	enablePenlo bool

	samples Sampler
}

func newChannel(env *environment.Environment, sch *scheduler.Scheduler, dma DMA, irq Interrupts, nr int) *Channel {
	ch := &Channel{
		env:  env,
		sch:  sch,
		dma:  dma,
		irq:  irq,
		slot: scheduler.AudioSlot(nr),
		nr:   nr,
	}
	sch.Register(ch.slot, ch, "PERFIN")
	ch.Reset()
	return ch
}

// Reset the channel to its power-on state.
func (ch *Channel) Reset() {
	ch.state = State000
	ch.lenLatch = 0
	ch.audlen = 0
	ch.perLatch = 0
	ch.volLatch = 0
	ch.audvol = 0
	ch.auddat = 0
	ch.buffer = 0
	ch.intreq2 = false
	ch.enablePenhi = false
	ch.enablePenlo = false
	ch.samples.Reset()
	ch.sch.Cancel(ch.slot)
}

func (ch *Channel) String() string {
	return fmt.Sprintf("%d: %s len=%04x per=%04x vol=%02x dat=%04x", ch.nr, ch.state, ch.audlen, ch.perLatch, ch.audvol, ch.auddat)
}

// State returns the current state of the channel.
func (ch *Channel) State() State {
	return ch.state
}

// Samples returns the tagged sample buffer of the channel.
func (ch *Channel) Samples() *Sampler {
	return &ch.samples
}

// Registers returns the values of the channel's registers, as written by the
// CPU or the copper.
func (ch *Channel) Registers() Registers {
	return Registers{
		LEN: ch.lenLatch,
		PER: ch.perLatch,
		VOL: ch.volLatch,
	}
}

// PokeAUDxLEN sets the length latch.
func (ch *Channel) PokeAUDxLEN(v uint16) {
	ch.lenLatch = v
}

// PokeAUDxPER sets the period latch.
func (ch *Channel) PokeAUDxPER(v uint16) {
	ch.perLatch = v
}

// PokeAUDxVOL sets the volume latch. Values above 64 are clamped to 64.
func (ch *Channel) PokeAUDxVOL(v uint16) {
	v &= 0x7f
	if v > 64 {
		v = 64
	}
	ch.volLatch = v
}

// PokeAUDxDAT is called when a new data word arrives, either from the CPU or
// from audio DMA.
func (ch *Channel) PokeAUDxDAT(v uint16) {
	ch.auddat = v

	// a new word releases the write guards
	ch.enablePenhi = true
	ch.enablePenlo = true

	if !ch.AUDxON() {
		// IRQ mode
		if ch.state == State000 && !ch.AUDxIP() {
			ch.move000to010()
		}
		return
	}

	// DMA mode
	switch ch.state {
	case State000:
		ch.move000to001()
	case State001:
		ch.move001to101()
	case State101:
		ch.move101to010()
	case State010, State011:
		if !ch.lenfin() {
			ch.lencount()
		} else {
			ch.lencntrld()
			ch.AUDxDSR()
			ch.intreq2 = true
		}
	}
}

// EnableDMA should be called when DMA for the channel is switched on.
func (ch *Channel) EnableDMA() {
	if ch.state == State000 {
		ch.move000to001()
	}
}

// DisableDMA should be called when DMA for the channel is switched off.
func (ch *Channel) DisableDMA() {
	switch ch.state {
	case State001, State101:
		ch.state = State000
	}
}

// ServiceEvent implements the scheduler.Handler interface. The only event is
// the expiry of the period counter.
func (ch *Channel) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	if id != perfin {
		scheduler.UnknownEvent(slot, id)
	}

	switch ch.state {
	case State010:
		ch.move010to011()
	case State011:
		if ch.AUDxON() || !ch.AUDxIP() {
			ch.move011to010()
		} else {
			ch.move011to000()
		}
	}
}

// AUDxON returns true if DMA is enabled for the channel.
func (ch *Channel) AUDxON() bool {
	return ch.dma.AudioDMA(ch.nr)
}

// AUDxIP returns true if the channel's interrupt is pending.
func (ch *Channel) AUDxIP() bool {
	return ch.irq.Pending(paula.AudioSource(ch.nr))
}

// AUDxIR raises the channel's interrupt one DMA cycle from now.
func (ch *Channel) AUDxIR() {
	ch.irq.ScheduleIrqRel(paula.AudioSource(ch.nr), clocks.DMACycles(1))
}

// AUDxDR requests a data word.
func (ch *Channel) AUDxDR() {
	ch.dma.AudioDMARequest(ch.nr)
}

// AUDxDSR requests a reload of the DMA pointer.
func (ch *Channel) AUDxDSR() {
	ch.dma.AudioPointerReload(ch.nr)
}

// attach volume
func (ch *Channel) av() bool {
	return (ch.irq.ADKCON()>>ch.nr)&0x01 == 0x01
}

// attach period
func (ch *Channel) ap() bool {
	return (ch.irq.ADKCON()>>ch.nr)&0x10 == 0x10
}

func (ch *Channel) napnav() bool {
	return !ch.ap() || ch.av()
}

func (ch *Channel) lenfin() bool {
	return ch.audlen == 1
}

func (ch *Channel) lencount() {
	ch.audlen--
}

func (ch *Channel) lencntrld() {
	ch.audlen = ch.lenLatch
}

func (ch *Channel) volcntrld() {
	ch.audvol = ch.volLatch
}

func (ch *Channel) percntrld() {
	delay := int64(ch.perLatch)
	if delay == 0 {
		delay = 0x10000
	}
	ch.sch.ScheduleRel(ch.slot, clocks.DMACycles(delay), perfin)
}

func (ch *Channel) pbufld1() {
	if ch.av() {
		if ch.next != nil {
			ch.next.PokeAUDxVOL(ch.auddat)
		}
		return
	}
	ch.buffer = ch.auddat
}

func (ch *Channel) pbufld2() {
	if ch.next != nil {
		ch.next.PokeAUDxPER(ch.auddat)
	}
}

func (ch *Channel) pen(b uint8) {
	v := int16(int8(b)) * int16(ch.audvol)
	if !ch.samples.Add(ch.sch.Clock(), v) {
		logger.Logf(ch.env, "audio", "channel %d: sample buffer full", ch.nr)
	}
}

func (ch *Channel) penhi() {
	if !ch.enablePenhi {
		return
	}
	ch.pen(uint8(ch.buffer >> 8))
	ch.enablePenhi = false
}

func (ch *Channel) penlo() {
	if !ch.enablePenlo {
		return
	}
	ch.pen(uint8(ch.buffer))
	ch.enablePenlo = false
}

// IRQ mode only
func (ch *Channel) move000to010() {
	ch.volcntrld()
	ch.percntrld()
	ch.pbufld1()
	ch.AUDxIR()

	ch.state = State010
	ch.penhi()
}

// DMA mode only
func (ch *Channel) move000to001() {
	ch.lencntrld()
	ch.AUDxDR()

	ch.state = State001
}

// DMA mode only
func (ch *Channel) move001to101() {
	ch.AUDxIR()
	ch.AUDxDR()
	ch.AUDxDSR()
	if !ch.lenfin() {
		ch.lencount()
	}

	ch.state = State101
}

// DMA mode only
func (ch *Channel) move101to010() {
	ch.percntrld()
	ch.volcntrld()
	ch.pbufld1()
	if ch.napnav() {
		ch.AUDxDR()
	}

	ch.state = State010
	ch.penhi()
}

func (ch *Channel) move010to011() {
	ch.percntrld()

	if ch.ap() {
		ch.pbufld2()

		if ch.AUDxON() {
			ch.AUDxDR()
			if ch.intreq2 {
				ch.AUDxIR()
				ch.intreq2 = false
			}
		} else {
			ch.AUDxIR()
		}
	}

	ch.state = State011
	ch.penlo()
}

func (ch *Channel) move011to000() {
	ch.sch.Cancel(ch.slot)
	ch.intreq2 = false
	ch.state = State000
}

func (ch *Channel) move011to010() {
	ch.percntrld()
	ch.pbufld1()
	ch.volcntrld()

	if ch.napnav() {
		if ch.AUDxON() {
			ch.AUDxDR()
			if ch.intreq2 {
				ch.AUDxIR()
				ch.intreq2 = false
			}
		} else {
			ch.AUDxIR()
		}
	}

	ch.state = State010
	ch.penhi()
}

// ChannelInfo is a summary of a channel suitable for inspection.
type ChannelInfo struct {
	State    State
	DMA      bool
	LenLatch uint16
	Len      uint16
	Per      uint16
	VolLatch uint16
	Vol      uint16
	Dat      uint16
	Buffer   uint16
	IntReq2  bool
	Samples  int
}

func (inf ChannelInfo) String() string {
	return fmt.Sprintf("%s dma=%v len=%04x/%04x per=%04x vol=%02x/%02x dat=%04x", inf.State, inf.DMA, inf.Len, inf.LenLatch, inf.Per, inf.Vol, inf.VolLatch, inf.Dat)
}

// Info returns a summary of the channel.
func (ch *Channel) Info() ChannelInfo {
	return ChannelInfo{
		State:    ch.state,
		DMA:      ch.AUDxON(),
		LenLatch: ch.lenLatch,
		Len:      ch.audlen,
		Per:      ch.perLatch,
		VolLatch: ch.volLatch,
		Vol:      ch.audvol,
		Dat:      ch.auddat,
		Buffer:   ch.buffer,
		IntReq2:  ch.intreq2,
		Samples:  ch.samples.Len(),
	}
}
