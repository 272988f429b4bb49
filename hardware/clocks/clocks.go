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

// Package clocks defines the master clock of the chipset and the conversions
// between master cycles and the slower DMA and CPU clocks derived from it.
//
// Every timestamp in the emulation is measured in master cycles. One DMA
// cycle (a colour clock) is eight master cycles and one CPU cycle is four
// master cycles.
//
// Master frequencies are those of the crystal oscillators fitted to PAL and
// NTSC machines.
package clocks

import "math"

// Cycle is a count of master clock cycles.
type Cycle int64

// NEVER is a cycle count that will never be reached.
const NEVER Cycle = math.MaxInt64

// Master clock frequencies in Hz.
const (
	PAL  = 28375160.0
	NTSC = 28636360.0
)

// Number of master cycles per derived clock cycle.
const (
	MasterPerDMA = 8
	MasterPerCPU = 4
)

// DMACycles converts a number of DMA cycles to master cycles.
func DMACycles(n int64) Cycle {
	return Cycle(n * MasterPerDMA)
}

// CPUCycles converts a number of CPU cycles to master cycles.
func CPUCycles(n int64) Cycle {
	return Cycle(n * MasterPerCPU)
}

// AsDMACycles converts master cycles to a whole number of DMA cycles, rounding
// down.
func AsDMACycles(c Cycle) int64 {
	return int64(c) / MasterPerDMA
}

// Frequency returns the master clock frequency for the television standard.
func Frequency(ntsc bool) float64 {
	if ntsc {
		return NTSC
	}
	return PAL
}
