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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/hardware/chipset"
)

// the period at the start of Check() that is not measured. the frame rate
// needs time to settle down
var leadTime = 2 * time.Second

// Check the performance of the chipset. The chipset runs for the duration
// (plus a lead time) as fast as possible and the frame rate is written to the
// output. Profiles are created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, cs *chipset.Chipset, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	var startFrame, endFrame int64
	var measured time.Duration

	runner := func() error {
		lead := time.Now().Add(leadTime)
		measuring := false
		var start time.Time

		return cs.Run(func(frame int64) (bool, error) {
			now := time.Now()
			if !measuring {
				if now.Before(lead) {
					return true, nil
				}
				measuring = true
				start = now
				startFrame = frame
				return true, nil
			}

			if now.Sub(start) >= duration {
				endFrame = frame
				measured = now.Sub(start)
				return false, nil
			}
			return true, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(HardwareFPS(cs), numFrames, measured.Seconds())
	_, err := fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, measured.Seconds(), accuracy)
	return err
}
