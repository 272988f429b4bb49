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
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// Registers is the set of audio registers for a channel that are interesting
// to a Tracker implementation.
type Registers struct {
	LEN uint16
	PER uint16
	VOL uint16
}

func (reg Registers) String() string {
	return fmt.Sprintf("len=%04x per=%04x vol=%02x", reg.LEN, reg.PER, reg.VOL)
}

// CmpRegisters returns true if the two registers contain the same values.
func CmpRegisters(a Registers, b Registers) bool {
	return a.LEN == b.LEN && a.PER == b.PER && a.VOL == b.VOL
}

// TrackerEnvironment defines the subset of the Environment type required
// by a Tracker implementation.
type TrackerEnvironment interface {
	IsEmulation(environment.Label) bool
}

// Tracker implementations display or otherwise record the state of the audio
// registers for each channel.
type Tracker interface {
	// AudioChanged is called whenever the CPU or the copper changes one of
	// the registers of a channel
	AudioChanged(env TrackerEnvironment, clock clocks.Cycle, channel int, reg Registers)
}

// Register offsets from the base address of a channel.
const (
	AUDxLCH = 0x00
	AUDxLCL = 0x02
	AUDxLEN = 0x04
	AUDxPER = 0x06
	AUDxVOL = 0x08
	AUDxDAT = 0x0a
)
