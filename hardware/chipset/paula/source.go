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

package paula

import "fmt"

// Source identifies an interrupt source. The value is the bit number in the
// INTREQ and INTENA registers.
type Source int

// List of valid Source values.
const (
	TBE Source = iota
	DSKBLK
	SOFT
	PORTS
	COPER
	VERTB
	BLIT
	AUD0
	AUD1
	AUD2
	AUD3
	RBF
	DSKSYN
	EXTER
	NumSources
)

// AudioSource returns the interrupt source for the audio channel.
func AudioSource(channel int) Source {
	return AUD0 + Source(channel)
}

// Bit returns the INTREQ/INTENA bit for the source.
func (src Source) Bit() uint16 {
	return 1 << src
}

func (src Source) String() string {
	switch src {
	case TBE:
		return "TBE"
	case DSKBLK:
		return "DSKBLK"
	case SOFT:
		return "SOFT"
	case PORTS:
		return "PORTS"
	case COPER:
		return "COPER"
	case VERTB:
		return "VERTB"
	case BLIT:
		return "BLIT"
	case AUD0:
		return "AUD0"
	case AUD1:
		return "AUD1"
	case AUD2:
		return "AUD2"
	case AUD3:
		return "AUD3"
	case RBF:
		return "RBF"
	case DSKSYN:
		return "DSKSYN"
	case EXTER:
		return "EXTER"
	}
	return fmt.Sprintf("Source(%d)", int(src))
}

// priority level of each source
var levels = [NumSources]int{
	TBE:    1,
	DSKBLK: 1,
	SOFT:   1,
	PORTS:  2,
	COPER:  3,
	VERTB:  3,
	BLIT:   3,
	AUD0:   4,
	AUD1:   4,
	AUD2:   4,
	AUD3:   4,
	RBF:    5,
	DSKSYN: 5,
	EXTER:  6,
}
