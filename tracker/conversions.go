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

package tracker

import (
	"fmt"
	"math"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// MusicalNote is the name and octave of a note in scientific pitch notation.
// For example, "A4" or "C#3".
type MusicalNote string

// NoMusicalNote is used when the channel is silent or the frequency is outside
// of the range of MIDI notes.
const NoMusicalNote = MusicalNote("-")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Frequency returns the fundamental frequency in Hz produced by a channel
// playing a single cycle waveform of LEN words at the rate given by PER. Zero
// is returned if the frequency can't be calculated.
func Frequency(ntsc bool, reg audio.Registers) float64 {
	if reg.PER == 0 || reg.LEN == 0 {
		return 0
	}

	// the period counter is decremented once every DMA cycle. each word
	// holds two samples
	rate := clocks.Frequency(ntsc) / clocks.MasterPerDMA / float64(reg.PER)
	return rate / (2 * float64(reg.LEN))
}

// LookupMusicalNote converts the current register values for a channel into a
// musical note.
func LookupMusicalNote(ntsc bool, reg audio.Registers) MusicalNote {
	if reg.VOL == 0 {
		return NoMusicalNote
	}

	f := Frequency(ntsc, reg)
	if f == 0 {
		return NoMusicalNote
	}

	// MIDI note 69 is A4 (440Hz)
	n := int(math.Round(12*math.Log2(f/440))) + 69
	if n < 0 || n > 127 {
		return NoMusicalNote
	}

	return MusicalNote(fmt.Sprintf("%s%d", noteNames[n%12], n/12-1))
}
