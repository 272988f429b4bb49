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
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// the largest number of master cycles advanced before the audio channels
// are sampled. the sample buffer of a channel must not fill up in this time
var synthesisInterval = clocks.DMACycles(agnus.HPOS)

// Step advances the emulation by the number of master cycles. Audio output
// is synthesized up to the new clock value.
func (cs *Chipset) Step(cycles clocks.Cycle) {
	cs.crit.Lock()
	defer cs.crit.Unlock()
	cs.step(cs.Sch.Clock() + cycles)
}

func (cs *Chipset) step(target clocks.Cycle) {
	for clk := cs.Sch.Clock(); clk < target; {
		clk = min(clk+synthesisInterval, target)
		cs.Sch.AdvanceTo(clk)
		cs.Audio.Synthesize()
	}
}

// Run the emulation one frame at a time until the continueCheck function
// returns false or an error. The function is called at the end of every
// frame with the number of the frame that has just started.
func (cs *Chipset) Run(continueCheck func(frame int64) (bool, error)) error {
	for {
		cs.crit.Lock()
		cs.step(cs.Agnus.FrameStart(cs.Agnus.Frame() + 1))
		frame := cs.Agnus.Frame()
		cs.crit.Unlock()

		ok, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// RunFrames runs the emulation to the start of the frame that is numFrames
// after the current frame.
func (cs *Chipset) RunFrames(numFrames int) error {
	if numFrames <= 0 {
		return nil
	}

	cs.crit.RLock()
	target := cs.Agnus.Frame() + int64(numFrames)
	cs.crit.RUnlock()

	return cs.Run(func(frame int64) (bool, error) {
		return frame < target, nil
	})
}
