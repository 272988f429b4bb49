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

package performance

import (
	"github.com/jetsetilly/ocs/hardware/chipset"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// HardwareFPS returns the number of frames per second produced by the real
// hardware. For PAL this is slightly below 50 and for NTSC slightly below 60.
func HardwareFPS(cs *chipset.Chipset) float64 {
	ntsc := cs.Agnus.Lines() == agnus.LinesNTSC
	return clocks.Frequency(ntsc) / float64(cs.Agnus.FrameLength())
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// hardware frame rate.
func CalcFPS(hardwareFPS float64, numFrames int64, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 || hardwareFPS <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / hardwareFPS
	return fps, accuracy
}
