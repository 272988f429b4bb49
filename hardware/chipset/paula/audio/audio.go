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
	"strings"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// Audio is the implementation of the Paula audio sub-system.
type Audio struct {
	env *environment.Environment
	sch *scheduler.Scheduler

	Channels [4]*Channel
	Muxer    *Muxer

	// the clock value of the most recent call to Synthesize()
	synthesized clocks.Cycle

	// the addition of a tracker is not required
	tracker Tracker
}

// NewAudio is the preferred method of initialisation for the Audio sub-system.
func NewAudio(env *environment.Environment, sch *scheduler.Scheduler, dma DMA, irq Interrupts) *Audio {
	au := &Audio{
		env: env,
		sch: sch,
	}

	var samplers [4]*Sampler
	for i := range au.Channels {
		au.Channels[i] = newChannel(env, sch, dma, irq, i)
		samplers[i] = &au.Channels[i].samples
	}
	for i := 0; i < 3; i++ {
		au.Channels[i].next = au.Channels[i+1]
	}

	au.Muxer = NewMuxer(env.Prefs, samplers)

	return au
}

// Reset the audio channels and clear the output stream.
func (au *Audio) Reset() {
	for _, ch := range au.Channels {
		ch.Reset()
	}
	au.Muxer.Clear()
	au.synthesized = au.sch.Clock()
}

// SetTracker adds a Tracker implementation to the Audio sub-system.
func (au *Audio) SetTracker(tracker Tracker) {
	au.tracker = tracker
}

func (au *Audio) String() string {
	s := strings.Builder{}
	for i, ch := range au.Channels {
		if i > 0 {
			s.WriteString("  ")
		}
		s.WriteString(ch.String())
	}
	return s.String()
}

// AudioDMA is called by the DMA controller with a newly fetched data word.
func (au *Audio) AudioDMA(channel int, value uint16) {
	au.Channels[channel].PokeAUDxDAT(value)
}

// PokeRegister writes to the channel register at the offset from the
// channel's base address. The location registers are handled by the DMA
// controller and are ignored.
func (au *Audio) PokeRegister(channel int, offset uint16, value uint16) {
	ch := au.Channels[channel]
	prev := ch.Registers()

	switch offset {
	case AUDxLEN:
		ch.PokeAUDxLEN(value)
	case AUDxPER:
		ch.PokeAUDxPER(value)
	case AUDxVOL:
		ch.PokeAUDxVOL(value)
	case AUDxDAT:
		ch.PokeAUDxDAT(value)
	}

	if au.tracker != nil {
		reg := ch.Registers()
		if !CmpRegisters(prev, reg) {
			au.tracker.AudioChanged(au.env, au.sch.Clock(), channel, reg)
		}
	}
}

// Synthesize muxer output up to the current clock.
func (au *Audio) Synthesize() int {
	clk := au.sch.Clock()
	n := au.Muxer.Synthesize(au.synthesized, clk)
	au.synthesized = clk
	return n
}

// Info returns a summary of every channel.
func (au *Audio) Info() [4]ChannelInfo {
	var inf [4]ChannelInfo
	for i, ch := range au.Channels {
		inf[i] = ch.Info()
	}
	return inf
}
