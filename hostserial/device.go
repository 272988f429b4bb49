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

package hostserial

import (
	"math"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
	"github.com/pkg/term"
)

// Baud returns the bit rate selected by the SERPER value.
func Baud(serper uint16, ntsc bool) int {
	hz := clocks.Frequency(ntsc) / clocks.MasterPerDMA
	return int(math.Round(hz / float64(int(serper&0x7fff)+1)))
}

// SERPER returns the value that most closely selects the bit rate. It is the
// inverse of Baud().
func SERPER(baud int, ntsc bool) (uint16, error) {
	if baud <= 0 {
		return 0, curated.Errorf("hostserial: baud rate must be positive")
	}
	hz := clocks.Frequency(ntsc) / clocks.MasterPerDMA
	p := math.Round(hz/float64(baud)) - 1
	if p < 0 || p > 0x7fff {
		return 0, curated.Errorf("hostserial: baud rate out of range (%d)", baud)
	}
	return uint16(p), nil
}

// OpenDevice opens the serial device in raw mode at the baud rate.
func OpenDevice(name string, baud int) (*term.Term, error) {
	t, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf("hostserial: %v", err)
	}
	logger.Logf(logger.Allow, "hostserial", "opened %s at %d baud", name, baud)
	return t, nil
}
