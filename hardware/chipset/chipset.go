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

package chipset

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/blitter"
	"github.com/jetsetilly/ocs/hardware/chipset/copper"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/uart"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/logger"
)

const vblStrobe scheduler.EventID = 1

// Chipset is the main container for the emulated custom chips.
type Chipset struct {
	env *environment.Environment

	// held for writing while the emulation is running. Snapshot() holds the
	// lock for reading
	crit sync.RWMutex

	Mem     *memory.ChipRAM
	Sch     *scheduler.Scheduler
	Agnus   *agnus.Agnus
	Copper  *copper.Copper
	Blitter *blitter.Blitter
	Paula   *paula.Paula
	Audio   *audio.Audio
	UART    *uart.UART
}

// NewChipset creates the custom chips and wires them together. The chipset
// is powered on before being returned.
func NewChipset(env *environment.Environment, mem *memory.ChipRAM) (*Chipset, error) {
	if env == nil {
		return nil, curated.Errorf("chipset: an environment is required")
	}
	if mem == nil {
		return nil, curated.Errorf("chipset: chip RAM is required")
	}

	cs := &Chipset{
		env: env,
		Mem: mem,
	}

	cs.Sch = scheduler.NewScheduler()
	env.Random.SetSource(cs.Sch)
	cs.Agnus = agnus.NewAgnus(cs.Sch, mem, env.Prefs)
	cs.Paula = paula.NewPaula(cs.Sch)
	cs.Copper = copper.NewCopper(env, cs.Sch, cs.Agnus)
	cs.Blitter = blitter.NewBlitter(env, cs.Sch, cs.Agnus, mem, cs.Paula)
	cs.Audio = audio.NewAudio(env, cs.Sch, cs.Agnus, cs.Paula)
	cs.UART = uart.NewUART(env, cs.Sch, cs.Paula)

	cs.Agnus.Plumb(cs.Audio, cs)
	cs.Copper.Plumb(cs.Blitter, cs)
	cs.Blitter.Plumb(cs.Copper)

	cs.Sch.Register(scheduler.VBL, cs, "STROBE")

	cs.PowerOn()

	return cs, nil
}

// Env returns the environment the chipset was created with.
func (cs *Chipset) Env() *environment.Environment {
	return cs.env
}

func (cs *Chipset) String() string {
	return fmt.Sprintf("%s %s", cs.Agnus, cs.Copper)
}

// PowerOn resets every component to its power-on state and arms the vertical
// blank strobe for the first frame. Chip RAM is not cleared.
//
// If the RandomState preference is set, registers that are undefined after
// power-on are given random values.
func (cs *Chipset) PowerOn() {
	cs.crit.Lock()
	defer cs.crit.Unlock()

	cs.Sch.Reset()
	cs.Agnus.Reset()
	cs.Paula.Reset()
	cs.Copper.Reset()
	cs.Blitter.Reset()
	cs.Audio.Reset()
	cs.UART.Reset()

	if cs.env.Prefs.RandomState.Get().(bool) {
		cs.randomise()
	}

	cs.Sch.ScheduleAbs(scheduler.VBL, cs.Agnus.FrameStart(cs.Agnus.Frame()), vblStrobe)
}

// registers given a random value at power-on
var undefined = []registers.Register{
	registers.BLTAFWM, registers.BLTALWM,
	registers.BLTAPTH, registers.BLTAPTL, registers.BLTBPTH, registers.BLTBPTL,
	registers.BLTCPTH, registers.BLTCPTL, registers.BLTDPTH, registers.BLTDPTL,
	registers.BLTAMOD, registers.BLTBMOD, registers.BLTCMOD, registers.BLTDMOD,
	registers.BLTADAT, registers.BLTBDAT, registers.BLTCDAT,
	registers.COP1LCH, registers.COP1LCL, registers.COP2LCH, registers.COP2LCL,
}

func (cs *Chipset) randomise() {
	for _, reg := range undefined {
		cs.apply(reg, uint16(cs.env.Random.NoRewind(0x10000)))
	}
	logger.Logf(cs.env, "chipset", "randomised %d registers", len(undefined))
}

// ServiceEvent implements the scheduler.Handler interface. The only event is
// the vertical blank strobe at the start of every frame.
func (cs *Chipset) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	if id != vblStrobe {
		scheduler.UnknownEvent(slot, id)
	}

	cs.Paula.RaiseIrq(paula.VERTB)
	cs.Copper.VsyncAction()
	cs.Agnus.EndFrame()

	cs.Sch.ScheduleAbs(scheduler.VBL, cs.Agnus.FrameStart(cs.Agnus.Frame()+1), vblStrobe)
}
