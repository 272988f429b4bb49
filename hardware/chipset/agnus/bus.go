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

package agnus

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/hardware/clocks"
)

// BusOwner identifies the component that used a DMA cycle.
type BusOwner int

// List of valid BusOwner values.
const (
	OwnerNone BusOwner = iota
	OwnerCPU
	OwnerRefresh
	OwnerDisk
	OwnerAudio
	OwnerBitplane
	OwnerSprite
	OwnerCopper
	OwnerBlitter
	NumBusOwners
)

func (o BusOwner) String() string {
	switch o {
	case OwnerNone:
		return "-"
	case OwnerCPU:
		return "CPU"
	case OwnerRefresh:
		return "REF"
	case OwnerDisk:
		return "DSK"
	case OwnerAudio:
		return "AUD"
	case OwnerBitplane:
		return "BPL"
	case OwnerSprite:
		return "SPR"
	case OwnerCopper:
		return "COP"
	case OwnerBlitter:
		return "BLT"
	}
	return fmt.Sprintf("BusOwner(%d)", int(o))
}

// Stats counts the DMA cycles used by each owner in a frame.
type Stats struct {
	Count [NumBusOwners]int64
}

func (s Stats) String() string {
	b := strings.Builder{}
	for o := OwnerCPU; o < NumBusOwners; o++ {
		if o > OwnerCPU {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%s=%d", o, s.Count[o]))
	}
	return b.String()
}

// Stats returns the bus usage for the current frame and the previous frame.
func (a *Agnus) Stats() (Stats, Stats) {
	return a.stats, a.lastStats
}

// EndFrame should be called at the start of vertical blank. The bus usage
// statistics for the current frame are moved to the previous frame.
func (a *Agnus) EndFrame() {
	a.lastStats = a.stats
	a.stats = Stats{}
}

// h returns the horizontal position of the current DMA cycle. if the beam has
// moved to a new line since the last call, the bus owner table is cleared.
func (a *Agnus) h() int {
	dma := clocks.AsDMACycles(a.sch.Clock())
	line := dma / HPOS
	if line != a.ownerLine {
		a.owner = [HPOS]BusOwner{}
		a.value = [HPOS]uint16{}
		a.ownerLine = line
	}
	return int(dma % HPOS)
}

// Owner returns the owner of the DMA cycle at horizontal position h in the
// current line.
func (a *Agnus) Owner(h int) BusOwner {
	a.h()
	return a.owner[h]
}

// Owners returns the bus owners for every DMA cycle in the current line.
func (a *Agnus) Owners() [HPOS]BusOwner {
	a.h()
	return a.owner
}

// BusValue returns the value most recently transferred in the DMA cycle at
// horizontal position h in the current line.
func (a *Agnus) BusValue(h int) uint16 {
	a.h()
	return a.value[h]
}

// BLS returns true if the blitter has been asked to slow down because the CPU
// has been waiting for the bus.
func (a *Agnus) BLS() bool {
	return a.bls
}

// BusIsFree returns true if the owner can use the current DMA cycle.
func (a *Agnus) BusIsFree(owner BusOwner) bool {
	h := a.h()
	if a.owner[h] != OwnerNone {
		return false
	}

	switch owner {
	case OwnerCopper:
		return a.CopperCanDoDMA()
	case OwnerBlitter:
		return a.BlitterDMA()
	}
	return true
}

// AllocateBus claims the current DMA cycle for the owner. It returns false if
// the cycle cannot be claimed.
func (a *Agnus) AllocateBus(owner BusOwner) bool {
	h := a.h()
	if a.owner[h] != OwnerNone {
		return false
	}

	switch owner {
	case OwnerCopper:
		// the copper has the highest priority of the components that use
		// AllocateBus()
		a.owner[h] = OwnerCopper
		return true

	case OwnerBlitter:
		if !a.BlitterDMA() {
			return false
		}

		// the blitter gives way to the CPU if the CPU has been waiting and
		// the blitter has not been given priority
		if a.bls && a.dmacon&BLTPRI != BLTPRI {
			return false
		}

		a.owner[h] = OwnerBlitter
		return true
	}

	a.owner[h] = owner
	return true
}

// CopperCanDoDMA returns true if the copper is allowed to use the current DMA
// cycle. the copper is never allowed the bus at position $E0.
func (a *Agnus) CopperCanDoDMA() bool {
	h := a.h()
	if h == 0xe0 {
		return false
	}
	if a.owner[h] != OwnerNone {
		return false
	}
	return a.CopperDMA()
}

func (a *Agnus) read(owner BusOwner, addr uint32) uint16 {
	h := a.h()
	v := a.mem.Peek16(addr)
	a.owner[h] = owner
	a.value[h] = v
	a.stats.Count[owner]++
	return v
}

func (a *Agnus) write(owner BusOwner, addr uint32, v uint16) {
	h := a.h()
	a.mem.Poke16(addr, v)
	a.owner[h] = owner
	a.value[h] = v
	a.stats.Count[owner]++
}

// CopperRead reads a word from chip RAM in the current DMA cycle for the
// copper. Bus allocation should be made before calling this function.
func (a *Agnus) CopperRead(addr uint32) uint16 {
	return a.read(OwnerCopper, addr)
}

// BlitterRead reads a word from chip RAM in the current DMA cycle for the
// blitter.
func (a *Agnus) BlitterRead(addr uint32) uint16 {
	return a.read(OwnerBlitter, addr)
}

// BlitterWrite writes a word to chip RAM in the current DMA cycle for the
// blitter.
func (a *Agnus) BlitterWrite(addr uint32, v uint16) {
	a.write(OwnerBlitter, addr, v)
}

// AudioRead reads a word from chip RAM in the current DMA cycle for the
// audio channels.
func (a *Agnus) AudioRead(addr uint32) uint16 {
	return a.read(OwnerAudio, addr)
}

// ExecuteUntilBusIsFree is used by the CPU when it needs the bus. The
// scheduler is advanced one DMA cycle at a time until the current DMA cycle
// is free. After two cycles of waiting the blitter is asked to slow down.
//
// The number of DMA cycles spent waiting is returned. On return the current
// DMA cycle is owned by the CPU.
func (a *Agnus) ExecuteUntilBusIsFree() int {
	// align the clock to the start of a DMA cycle
	clk := a.sch.Clock()
	if r := clk % clocks.MasterPerDMA; r != 0 {
		a.sch.AdvanceTo(clk + clocks.MasterPerDMA - r)
	}

	var delay int
	for {
		h := a.h()
		if a.owner[h] == OwnerNone {
			break
		}
		a.sch.AdvanceTo(a.sch.Clock() + clocks.DMACycles(1))
		delay++
		if delay == 2 {
			a.bls = true
		}
	}

	a.bls = false
	a.owner[a.h()] = OwnerCPU
	a.stats.Count[OwnerCPU]++

	return delay
}

// CPURead reads a word from chip RAM for the CPU. The function waits until
// the bus is free.
func (a *Agnus) CPURead(addr uint32) (uint16, int) {
	delay := a.ExecuteUntilBusIsFree()
	h := a.h()
	v := a.mem.Peek16(addr)
	a.value[h] = v
	return v, delay
}

// CPUWrite writes a word to chip RAM for the CPU. The function waits until
// the bus is free.
func (a *Agnus) CPUWrite(addr uint32, v uint16) int {
	delay := a.ExecuteUntilBusIsFree()
	h := a.h()
	a.mem.Poke16(addr, v)
	a.value[h] = v
	return delay
}
