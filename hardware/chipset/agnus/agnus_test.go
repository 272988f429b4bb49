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

package agnus_test

import (
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/hardware/preferences"
	"github.com/jetsetilly/ocs/test"
)

type sink struct {
	audio [][2]int
	regs  []registers.Register
	vals  []uint16

	// called when a register change is applied
	hook func()
}

func (s *sink) AudioDMA(channel int, value uint16) {
	s.audio = append(s.audio, [2]int{channel, int(value)})
}

func (s *sink) ApplyRegister(reg registers.Register, value uint16) {
	s.regs = append(s.regs, reg)
	s.vals = append(s.vals, value)
	if s.hook != nil {
		s.hook()
	}
}

func newAgnus(t *testing.T) (*agnus.Agnus, *scheduler.Scheduler, *memory.ChipRAM, *sink) {
	t.Helper()
	t.Chdir(t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	mem, err := memory.NewChipRAM(memory.DefaultSize)
	test.DemandSuccess(t, err)

	sch := scheduler.NewScheduler()
	a := agnus.NewAgnus(sch, mem, p)
	s := &sink{}
	a.Plumb(s, s)
	return a, sch, mem, s
}

func TestBeam(t *testing.T) {
	a, sch, _, _ := newAgnus(t)

	v, h := a.Beam()
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, h, 0)
	test.ExpectEquality(t, a.Lines(), agnus.LinesPAL)

	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS*10 + 5))
	v, h = a.Beam()
	test.ExpectEquality(t, v, 10)
	test.ExpectEquality(t, h, 5)

	sch.AdvanceTo(a.FrameLength() + clocks.DMACycles(3))
	v, h = a.Beam()
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, h, 3)
	test.ExpectEquality(t, a.Frame(), int64(1))
	test.ExpectEquality(t, a.BeamToCycle(0, 3), sch.Clock())
}

func TestDMACON(t *testing.T) {
	a, _, _, _ := newAgnus(t)

	prev, curr := a.PokeDMACON(agnus.SETCLR | agnus.DMAEN | agnus.COPEN | agnus.BLTEN)
	test.ExpectEquality(t, prev, uint16(0))
	test.ExpectEquality(t, curr, uint16(agnus.DMAEN|agnus.COPEN|agnus.BLTEN))
	test.ExpectSuccess(t, a.CopperDMA())
	test.ExpectSuccess(t, a.BlitterDMA())
	test.ExpectFailure(t, a.AudioDMA(0))

	changed, on := agnus.BlitterDMAChanged(prev, curr)
	test.ExpectSuccess(t, changed)
	test.ExpectSuccess(t, on)

	// clearing DMAEN disables everything
	prev, curr = a.PokeDMACON(agnus.DMAEN)
	test.ExpectFailure(t, a.CopperDMA())
	changed, on = agnus.CopperDMAChanged(prev, curr)
	test.ExpectSuccess(t, changed)
	test.ExpectFailure(t, on)

	// read only bits are never stored
	a.PokeDMACON(agnus.SETCLR | agnus.BBUSY | agnus.BZERO)
	test.ExpectEquality(t, a.DMACON(), uint16(agnus.COPEN|agnus.BLTEN))
	test.ExpectEquality(t, a.PeekDMACONR(true, false), uint16(agnus.BBUSY|agnus.COPEN|agnus.BLTEN))
}

func TestBusArbitration(t *testing.T) {
	a, sch, _, _ := newAgnus(t)

	// without DMA neither the copper or the blitter can use the bus
	test.ExpectFailure(t, a.BusIsFree(agnus.OwnerCopper))
	test.ExpectFailure(t, a.AllocateBus(agnus.OwnerBlitter))

	a.PokeDMACON(agnus.SETCLR | agnus.DMAEN | agnus.COPEN | agnus.BLTEN)
	sch.AdvanceTo(clocks.DMACycles(0x20))
	test.ExpectSuccess(t, a.BusIsFree(agnus.OwnerCopper))
	test.ExpectSuccess(t, a.AllocateBus(agnus.OwnerCopper))
	test.ExpectEquality(t, a.Owner(0x20), agnus.OwnerCopper)

	// a cycle can only have one owner
	test.ExpectFailure(t, a.AllocateBus(agnus.OwnerBlitter))

	// refresh cycles are never available
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS + 0x03))
	test.ExpectEquality(t, a.Owner(0x03), agnus.OwnerRefresh)
	test.ExpectFailure(t, a.BusIsFree(agnus.OwnerCopper))

	// the copper cannot use position $E0
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS + 0xe0))
	test.ExpectFailure(t, a.CopperCanDoDMA())
	test.ExpectSuccess(t, a.BusIsFree(agnus.OwnerBlitter))

	// the owner table is cleared for the next line
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS*2 + 0x20))
	test.ExpectEquality(t, a.Owner(0x20), agnus.OwnerNone)
}

// blitter claims the bus in every DMA cycle for a fixed number of cycles
type blitter struct {
	a       *agnus.Agnus
	sch     *scheduler.Scheduler
	cycles  int
	granted int
	denied  int
}

func (b *blitter) ServiceEvent(_ scheduler.Slot, _ scheduler.EventID, _ int64) {
	if b.a.AllocateBus(agnus.OwnerBlitter) {
		b.granted++
	} else {
		b.denied++
	}
	b.cycles--
	if b.cycles > 0 {
		b.sch.ScheduleRel(scheduler.BLT, clocks.DMACycles(1), 1)
	}
}

func runBlitter(t *testing.T, dmacon uint16) (int, *blitter, *agnus.Agnus) {
	t.Helper()
	a, sch, _, _ := newAgnus(t)
	a.PokeDMACON(agnus.SETCLR | agnus.DMAEN | agnus.BLTEN | dmacon)

	b := &blitter{a: a, sch: sch, cycles: 10}
	sch.Register(scheduler.BLT, b, "STEP")
	sch.ScheduleAbs(scheduler.BLT, clocks.DMACycles(0x30), 1)
	sch.AdvanceTo(clocks.DMACycles(0x30))

	return a.ExecuteUntilBusIsFree(), b, a
}

func TestBlitterSlowDown(t *testing.T) {
	// the blitter gives way to the CPU after two cycles of waiting
	delay, b, a := runBlitter(t, 0)
	test.ExpectEquality(t, delay, 3)
	test.ExpectEquality(t, b.granted, 3)
	test.ExpectEquality(t, b.denied, 1)
	test.ExpectFailure(t, a.BLS())
	test.ExpectEquality(t, a.Owner(0x33), agnus.OwnerCPU)
}

func TestBlitterPriority(t *testing.T) {
	// with BLTPRI the CPU waits until the blitter has finished
	delay, b, a := runBlitter(t, agnus.BLTPRI)
	test.ExpectEquality(t, delay, 10)
	test.ExpectEquality(t, b.granted, 10)
	test.ExpectEquality(t, b.denied, 0)
	test.ExpectEquality(t, a.Owner(0x3a), agnus.OwnerCPU)
}

func TestAudioDMA(t *testing.T) {
	a, sch, mem, s := newAgnus(t)
	mem.Poke16(0x1000, 0x1234)
	mem.Poke16(0x1002, 0x5678)

	a.PokeDMACON(agnus.SETCLR | agnus.DMAEN | agnus.AUD1EN)
	a.PokeAUDxLCH(1, 0x0000)
	a.PokeAUDxLCL(1, 0x1001)
	test.ExpectEquality(t, a.AudioLC(1), uint32(0x1000))

	// the pointer reload happens before the fetch in the same slot
	a.AudioPointerReload(1)
	a.AudioDMARequest(1)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS))
	test.DemandEquality(t, len(s.audio), 1)
	test.ExpectEquality(t, s.audio[0], [2]int{1, 0x1234})
	test.ExpectEquality(t, a.AudioPT(1), uint32(0x1002))

	// the owner table belongs to the previous line
	test.ExpectEquality(t, a.Owner(0x0f), agnus.OwnerNone)

	a.AudioDMARequest(1)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS + 0x10))
	test.DemandEquality(t, len(s.audio), 2)
	test.ExpectEquality(t, s.audio[1], [2]int{1, 0x5678})
	test.ExpectEquality(t, a.Owner(0x0f), agnus.OwnerAudio)

	// no fetch for a channel with DMA disabled
	a.AudioDMARequest(2)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS * 3))
	test.ExpectEquality(t, len(s.audio), 2)
}

func TestAudioDMABusOwned(t *testing.T) {
	a, sch, mem, s := newAgnus(t)
	mem.Poke16(0x1000, 0x1234)

	a.PokeDMACON(agnus.SETCLR | agnus.DMAEN | agnus.AUD1EN)
	a.PokeAUDxLCL(1, 0x1000)
	a.AudioPointerReload(1)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS * 2))
	test.ExpectEquality(t, a.AudioPT(1), uint32(0x1000))

	// register changes are applied before the audio slot in the same cycle so
	// the hook takes the bus first
	s.hook = func() {
		test.ExpectSuccess(t, a.AllocateBus(agnus.OwnerCopper))
	}
	a.RecordRegisterChange(0x0f, registers.COLOR00, 0)
	a.AudioDMARequest(1)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS*2 + 0x10))
	test.ExpectEquality(t, len(s.regs), 1)
	test.ExpectEquality(t, a.Owner(0x0f), agnus.OwnerCopper)

	// the request is dropped and nothing is fetched
	test.ExpectEquality(t, len(s.audio), 0)
	dr, _ := a.AudioRequests(1)
	test.ExpectFailure(t, dr)
	test.ExpectEquality(t, a.AudioPT(1), uint32(0x1000))

	// the dropped request is not serviced in the next line
	s.hook = nil
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS*3 + 0x10))
	test.ExpectEquality(t, len(s.audio), 0)
}

func TestRegisterChanges(t *testing.T) {
	a, sch, _, s := newAgnus(t)

	a.RecordRegisterChange(2, registers.BLTCON0, 0x0100)
	a.RecordRegisterChange(1, registers.BLTCON1, 0x0200)
	a.RecordRegisterChange(2, registers.BLTAFWM, 0x0300)
	test.ExpectEquality(t, a.PendingChanges(), 3)

	sch.AdvanceTo(clocks.DMACycles(1))
	test.DemandEquality(t, len(s.regs), 1)
	test.ExpectEquality(t, s.regs[0], registers.BLTCON1)

	sch.AdvanceTo(clocks.DMACycles(2))
	test.DemandEquality(t, len(s.regs), 3)
	test.ExpectEquality(t, s.regs[1], registers.BLTCON0)
	test.ExpectEquality(t, s.regs[2], registers.BLTAFWM)
	test.ExpectEquality(t, s.vals[2], uint16(0x0300))
	test.ExpectEquality(t, a.PendingChanges(), 0)
}

func TestStats(t *testing.T) {
	a, sch, _, _ := newAgnus(t)
	sch.AdvanceTo(clocks.DMACycles(agnus.HPOS * 4))
	cur, _ := a.Stats()
	test.ExpectEquality(t, cur.Count[agnus.OwnerRefresh], int64(16))

	a.EndFrame()
	cur, last := a.Stats()
	test.ExpectEquality(t, cur.Count[agnus.OwnerRefresh], int64(0))
	test.ExpectEquality(t, last.Count[agnus.OwnerRefresh], int64(16))
}
