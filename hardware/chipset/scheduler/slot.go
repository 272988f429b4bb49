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

package scheduler

import "fmt"

// Slot identifies a hardware sub-unit in the scheduler.
type Slot int

// List of valid Slot values, in dispatch order.
const (
	// primary slots
	REG Slot = iota // register change recorder
	DAS             // disk, audio and sprite DMA
	COP             // copper
	BLT             // blitter

	// secondary slots
	CH0 // audio channel 0
	CH1 // audio channel 1
	CH2 // audio channel 2
	CH3 // audio channel 3
	SER // serial data injection
	VBL // vertical blank
	IRQ // pending interrupts
	TXD // uart transmit
	RXD // uart receive

	NumSlots
)

func (s Slot) String() string {
	switch s {
	case REG:
		return "REG"
	case DAS:
		return "DAS"
	case COP:
		return "COP"
	case BLT:
		return "BLT"
	case CH0:
		return "CH0"
	case CH1:
		return "CH1"
	case CH2:
		return "CH2"
	case CH3:
		return "CH3"
	case SER:
		return "SER"
	case VBL:
		return "VBL"
	case IRQ:
		return "IRQ"
	case TXD:
		return "TXD"
	case RXD:
		return "RXD"
	}
	return fmt.Sprintf("slot %d", int(s))
}

// AudioSlot returns the slot for the audio channel.
func AudioSlot(channel int) Slot {
	return CH0 + Slot(channel)
}
