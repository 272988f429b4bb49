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

package blitter_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/blitter"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/test"
)

type copper struct {
	terminated int
}

func (c *copper) BlitterDidTerminate() {
	c.terminated++
}

type rig struct {
	env *environment.Environment
	sch *scheduler.Scheduler
	mem *memory.ChipRAM
	agn *agnus.Agnus
	pla *paula.Paula
	blt *blitter.Blitter
	cop *copper
}

func newRig(t *testing.T, accuracy int) *rig {
	t.Helper()
	t.Chdir(t.TempDir())

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Prefs.BlitterAccuracy.Set(accuracy))

	mem, err := memory.NewChipRAM(memory.DefaultSize)
	test.DemandSuccess(t, err)

	r := &rig{env: env, mem: mem}
	r.sch = scheduler.NewScheduler()
	r.agn = agnus.NewAgnus(r.sch, mem, env.Prefs)
	r.pla = paula.NewPaula(r.sch)
	r.blt = blitter.NewBlitter(env, r.sch, r.agn, mem, r.pla)
	r.cop = &copper{}
	r.blt.Plumb(r.cop)

	r.dmacon(agnus.SETCLR | agnus.DMAEN | agnus.BLTEN)
	return r
}

func (r *rig) dmacon(v uint16) {
	prev, curr := r.agn.PokeDMACON(v)
	if changed, on := agnus.BlitterDMAChanged(prev, curr); changed {
		r.blt.DMAChanged(on)
	}
}

// run the scheduler until the blit has finished and the interrupt has been
// delivered
func (r *rig) run(t *testing.T) {
	t.Helper()
	for i := 0; r.blt.Busy(); i++ {
		if i > 1000000 {
			t.Fatalf("blit did not finish")
		}
		r.sch.AdvanceTo(r.sch.Clock() + clocks.DMACycles(1))
	}
	r.sch.AdvanceTo(r.sch.Clock() + clocks.DMACycles(2))
}

// noise fills chip RAM with a repeatable pattern
func (r *rig) noise(from uint32, to uint32) {
	x := uint32(0x1234567)
	for a := from; a < to; a += 2 {
		x = x*1103515245 + 12345
		r.mem.Poke16(a, uint16(x>>12))
	}
}

type blit struct {
	con0, con1             uint16
	afwm, alwm             uint16
	apt, bpt, cpt, dpt     uint32
	amod, bmod, cmod, dmod uint16
	adat, bdat, cdat       uint16
	size                   uint16
}

func (r *rig) start(bl blit) {
	r.blt.SetBLTCON0(bl.con0)
	r.blt.SetBLTCON1(bl.con1)
	r.blt.PokeBLTAFWM(bl.afwm)
	r.blt.PokeBLTALWM(bl.alwm)
	for _, p := range []struct {
		ch  byte
		ptr uint32
		mod uint16
	}{
		{'A', bl.apt, bl.amod},
		{'B', bl.bpt, bl.bmod},
		{'C', bl.cpt, bl.cmod},
		{'D', bl.dpt, bl.dmod},
	} {
		r.blt.PokeBLTxPTH(p.ch, uint16(p.ptr>>16))
		r.blt.PokeBLTxPTL(p.ch, uint16(p.ptr))
		r.blt.PokeBLTxMOD(p.ch, p.mod)
	}
	r.blt.PokeBLTADAT(bl.adat)
	r.blt.PokeBLTBDAT(bl.bdat)
	r.blt.PokeBLTCDAT(bl.cdat)
	r.blt.SetBLTSIZE(bl.size)
}

func TestMinterm(t *testing.T) {
	// with these operands every minterm reproduces its own selector
	for lf := range 256 {
		v := blitter.Minterm(0xf0f0, 0xcccc, 0xaaaa, uint8(lf))
		test.ExpectEquality(t, v, uint16(lf)<<8|uint16(lf))
	}

	operands := []uint16{0x0000, 0xffff, 0x1234, 0xa5a5, 0x8001, 0x7ffe, 0xdead, 0x0f0f}
	for lf := range 256 {
		for _, a := range operands {
			for _, b := range operands {
				for _, c := range operands {
					if !test.ExpectEquality(t, blitter.Minterm(a, b, c, uint8(lf)), blitter.MintermReference(a, b, c, uint8(lf))) {
						return
					}
				}
			}
		}
	}
}

func TestVerifyMinterm(t *testing.T) {
	r := newRig(t, 0)
	test.DemandSuccess(t, r.env.Prefs.VerifyMinterm.Set(true))

	// the two implementations agree so the blit completes normally
	r.noise(0x1000, 0x1100)
	r.start(blit{
		con0: blitter.USEA | blitter.USED | 0xf0,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, dpt: 0x2000,
		size: 1<<6 | 4,
	})
	r.run(t)
	for i := uint32(0); i < 8; i += 2 {
		test.ExpectEquality(t, r.mem.Peek16(0x2000+i), r.mem.Peek16(0x1000+i))
	}
}

func TestFill(t *testing.T) {
	v, carry := blitter.Fill(0x0011, false, false)
	test.ExpectEquality(t, v, uint16(0x001f))
	test.ExpectFailure(t, carry)

	v, carry = blitter.Fill(0x0011, false, true)
	test.ExpectEquality(t, v, uint16(0x000f))
	test.ExpectFailure(t, carry)

	// the carry passes from the low byte to the high byte and out of the word
	v, carry = blitter.Fill(0x0100, false, false)
	test.ExpectEquality(t, v, uint16(0xff00))
	test.ExpectSuccess(t, carry)

	v, carry = blitter.Fill(0x0000, true, false)
	test.ExpectEquality(t, v, uint16(0xffff))
	test.ExpectSuccess(t, carry)

	v, carry = blitter.Fill(0x8000, true, true)
	test.ExpectEquality(t, v, uint16(0x7fff))
	test.ExpectFailure(t, carry)
}

// evenRuns is true if every run of set bits in the word has an even length.
func evenRuns(v uint16) bool {
	run := 0
	for bit := range 17 {
		if bit < 16 && v&(1<<bit) != 0 {
			run++
			continue
		}
		if run&1 == 1 {
			return false
		}
		run = 0
	}
	return true
}

func TestFillRoundTrip(t *testing.T) {
	var refilled int

	for i := range 0x10000 {
		edges := uint16(i)

		for _, carryIn := range []bool{false, true} {
			excl, exclCarry := blitter.Fill(edges, carryIn, true)
			incl, inclCarry := blitter.Fill(edges, carryIn, false)

			// the carry out is the parity of the edges
			parity := bits.OnesCount16(edges)&1 == 1
			if !test.ExpectEquality(t, exclCarry, parity != carryIn, edges, carryIn) {
				return
			}
			if !test.ExpectEquality(t, inclCarry, exclCarry, edges, carryIn) {
				return
			}

			// the inclusive fill is the exclusive fill with the edges retained
			if !test.ExpectEquality(t, incl, excl|edges, edges, carryIn) {
				return
			}

			// each bit of an exclusive fill differs from its lower neighbour
			// only where there is an edge
			decoded := excl ^ excl<<1
			if carryIn {
				decoded ^= 0x0001
			}
			if !test.ExpectEquality(t, decoded, edges, edges, carryIn) {
				return
			}

			// the decoded edges fill to the same row
			again, _ := blitter.Fill(decoded, carryIn, true)
			if !test.ExpectEquality(t, again, excl, edges, carryIn) {
				return
			}
		}

		// an already filled row with no carry between its runs fills to itself
		incl, _ := blitter.Fill(edges, false, false)
		if evenRuns(incl) {
			refilled++
			v, carry := blitter.Fill(incl, false, false)
			if !test.ExpectEquality(t, v, incl, edges) {
				return
			}
			if !test.ExpectFailure(t, carry, edges) {
				return
			}
		}
	}

	test.ExpectInequality(t, refilled, 0)

	// a carry free row with an odd run leaks its carry into the rest of the row
	v, carry := blitter.Fill(0x0047, false, false)
	test.ExpectEquality(t, v, uint16(0x007f))
	test.ExpectFailure(t, carry)
}

func TestSimpleCopy(t *testing.T) {
	for accuracy := range 3 {
		t.Run(fmt.Sprintf("accuracy %d", accuracy), func(t *testing.T) {
			r := newRig(t, accuracy)

			// three words per line, four lines, two words of modulo
			for y := uint32(0); y < 4; y++ {
				for x := uint32(0); x < 3; x++ {
					r.mem.Poke16(0x1000+y*10+x*2, uint16(0x100*y+x+1))
				}
			}

			r.start(blit{
				con0: blitter.USEA | blitter.USED | 0xf0,
				afwm: 0xffff, alwm: 0xffff,
				apt: 0x1000, dpt: 0x2000,
				amod: 4, dmod: 4,
				size: 4<<6 | 3,
			})
			test.ExpectSuccess(t, r.blt.Busy())
			bbusy, _ := r.blt.Flags()
			test.ExpectFailure(t, bbusy)

			r.run(t)

			for y := uint32(0); y < 4; y++ {
				for x := uint32(0); x < 3; x++ {
					test.ExpectEquality(t, r.mem.Peek16(0x2000+y*10+x*2), uint16(0x100*y+x+1))
				}
				// the modulo is skipped
				test.ExpectEquality(t, r.mem.Peek16(0x2000+y*10+6), uint16(0))
			}

			bbusy, bzero := r.blt.Flags()
			test.ExpectFailure(t, bbusy)
			test.ExpectFailure(t, bzero)
			test.ExpectSuccess(t, r.pla.Pending(paula.BLIT))
			test.ExpectEquality(t, r.cop.terminated, 1)
			test.ExpectEquality(t, r.blt.Info().Event, "IDLE")
			test.ExpectEquality(t, r.blt.Stats().Copy, 1)
		})
	}
}

func TestZeroFlag(t *testing.T) {
	r := newRig(t, 2)
	r.start(blit{
		con0: blitter.USEA | blitter.USED | 0xf0,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, dpt: 0x2000,
		size: 2<<6 | 2,
	})
	r.run(t)
	_, bzero := r.blt.Flags()
	test.ExpectSuccess(t, bzero)
}

// the configurations are run at every accuracy level and the resulting memory
// is compared
var equivalence = []struct {
	name string
	bl   blit
}{
	{"shifted A with masks", blit{
		con0: 4<<12 | blitter.USEA | blitter.USED | 0xf0,
		afwm: 0x0fff, alwm: 0xfff0,
		apt: 0x1000, dpt: 0x3000,
		amod: 4, dmod: 4,
		size: 4<<6 | 3,
	}},
	{"cookie cut", blit{
		con0: 3<<12 | blitter.USEA | blitter.USEB | blitter.USEC | blitter.USED | 0xca,
		con1: 3 << 12,
		afwm: 0xffff, alwm: 0xff00,
		apt: 0x1000, bpt: 0x1400, cpt: 0x1800, dpt: 0x3000,
		amod: 2, bmod: 2, cmod: 6, dmod: 6,
		size: 5<<6 | 4,
	}},
	{"descending", blit{
		con0: 5<<12 | blitter.USEA | blitter.USEB | blitter.USED | 0xc0,
		con1: 2<<12 | blitter.DESC,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000 + 34, bpt: 0x1400 + 34, dpt: 0x3000 + 34,
		amod: 4, bmod: 4, dmod: 4,
		size: 4<<6 | 3,
	}},
	{"inclusive fill", blit{
		con0: blitter.USEA | blitter.USED | 0xf0,
		con1: blitter.IFE,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, dpt: 0x3000,
		size: 6<<6 | 2,
	}},
	{"exclusive fill with carry", blit{
		con0: blitter.USEA | blitter.USEB | blitter.USEC | blitter.USED | 0x6a,
		con1: blitter.EFE | blitter.FCI,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, bpt: 0x1400, cpt: 0x1800, dpt: 0x3000,
		size: 3<<6 | 3,
	}},
	{"channel C only", blit{
		con0: 7<<12 | blitter.USEC | blitter.USED | 0x3a,
		afwm: 0x00ff, alwm: 0xff00,
		cpt: 0x1800, dpt: 0x3000,
		adat: 0xf00f, bdat: 0x1234,
		size: 3<<6 | 1,
	}},
	{"B and C", blit{
		con0: blitter.USEB | blitter.USEC | blitter.USED | 0x66,
		con1: 9 << 12,
		afwm: 0xffff, alwm: 0xffff,
		bpt: 0x1400, cpt: 0x1800, dpt: 0x3000,
		bmod: 8, cmod: 8, dmod: 8,
		adat: 0xffff,
		size: 4<<6 | 2,
	}},
}

func TestAccuracyEquivalence(t *testing.T) {
	for _, cfg := range equivalence {
		t.Run(cfg.name, func(t *testing.T) {
			var results [3][]uint16
			var zero [3]bool

			for accuracy := range 3 {
				r := newRig(t, accuracy)
				r.noise(0x1000, 0x2000)
				r.start(cfg.bl)
				r.run(t)

				for a := uint32(0x3000); a < 0x3100; a += 2 {
					results[accuracy] = append(results[accuracy], r.mem.Peek16(a))
				}
				_, zero[accuracy] = r.blt.Flags()
				test.ExpectSuccess(t, r.pla.Pending(paula.BLIT))
			}

			for accuracy := 1; accuracy < 3; accuracy++ {
				for i := range results[0] {
					if !test.ExpectEquality(t, results[accuracy][i], results[0][i], fmt.Sprintf("accuracy %d word %d", accuracy, i)) {
						break
					}
				}
				test.ExpectEquality(t, zero[accuracy], zero[0])
			}
		})
	}
}

func TestSlowBlitUsesBus(t *testing.T) {
	r := newRig(t, 2)
	r.start(blit{
		con0: blitter.USEA | blitter.USED | 0xf0,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, dpt: 0x2000,
		size: 1<<6 | 8,
	})
	r.run(t)

	cur, _ := r.agn.Stats()
	test.ExpectEquality(t, cur.Count[agnus.OwnerBlitter], int64(16))
}

func TestLine(t *testing.T) {
	for accuracy := range 3 {
		t.Run(fmt.Sprintf("accuracy %d", accuracy), func(t *testing.T) {
			r := newRig(t, accuracy)

			// a line from (0,0) to (15,3) in a bitplane forty bytes wide
			const dmax, dmin = 15, 3
			const plane = 0x4000

			r.start(blit{
				con0: blitter.USEA | blitter.USEC | blitter.USED | 0xca,
				con1: blitter.SUD | blitter.SIGN | blitter.LINE,
				afwm: 0xffff, alwm: 0xffff,
				apt:  (4*dmin - 2*dmax) & 0xffff,
				cpt:  plane,
				dpt:  plane,
				amod: (4 * (dmin - dmax)) & 0xffff,
				bmod: 4 * dmin,
				cmod: 40,
				dmod: 40,
				adat: 0x8000,
				bdat: 0xffff,
				size: (dmax+1)<<6 | 2,
			})
			r.run(t)

			test.ExpectEquality(t, r.mem.Peek16(plane), uint16(0xe000))
			test.ExpectEquality(t, r.mem.Peek16(plane+40), uint16(0x1f00))
			test.ExpectEquality(t, r.mem.Peek16(plane+80), uint16(0x00f8))
			test.ExpectEquality(t, r.mem.Peek16(plane+120), uint16(0x0007))
			test.ExpectEquality(t, r.mem.Peek16(plane+160), uint16(0x0000))
			test.ExpectEquality(t, r.blt.Stats().Line, 1)
			test.ExpectSuccess(t, r.pla.Pending(paula.BLIT))
		})
	}
}

func TestSingleDot(t *testing.T) {
	r := newRig(t, 2)

	// a shallow line in single dot mode writes one pixel per row
	const dmax, dmin = 15, 3
	const plane = 0x4000

	r.start(blit{
		con0: blitter.USEA | blitter.USEC | blitter.USED | 0x4a,
		con1: blitter.SUD | blitter.SIGN | blitter.SING | blitter.LINE,
		afwm: 0xffff, alwm: 0xffff,
		apt:  (4*dmin - 2*dmax) & 0xffff,
		cpt:  plane,
		dpt:  plane,
		amod: (4 * (dmin - dmax)) & 0xffff,
		bmod: 4 * dmin,
		cmod: 40,
		dmod: 40,
		adat: 0x8000,
		bdat: 0xffff,
		size: (dmax+1)<<6 | 2,
	})
	r.run(t)

	test.ExpectEquality(t, r.mem.Peek16(plane), uint16(0x8000))
	test.ExpectEquality(t, r.mem.Peek16(plane+40), uint16(0x1000))
	test.ExpectEquality(t, r.mem.Peek16(plane+80), uint16(0x0080))
	test.ExpectEquality(t, r.mem.Peek16(plane+120), uint16(0x0004))
}

func TestDMAOff(t *testing.T) {
	r := newRig(t, 0)
	r.dmacon(agnus.BLTEN)

	r.start(blit{
		con0: blitter.USEA | blitter.USED | 0xf0,
		afwm: 0xffff, alwm: 0xffff,
		apt: 0x1000, dpt: 0x2000,
		size: 1<<6 | 1,
	})
	r.sch.AdvanceTo(clocks.DMACycles(100))
	test.ExpectSuccess(t, r.blt.Busy())
	test.ExpectEquality(t, r.blt.Info().Event, "STRT1")
	test.ExpectFailure(t, r.sch.IsPending(scheduler.BLT))
	test.ExpectEquality(t, r.blt.Stats().Parked, 1)

	r.dmacon(agnus.SETCLR | agnus.BLTEN)
	test.ExpectSuccess(t, r.sch.IsPending(scheduler.BLT))
	r.run(t)
	test.ExpectFailure(t, r.blt.Busy())
	test.ExpectEquality(t, r.cop.terminated, 1)
}

func TestSize(t *testing.T) {
	r := newRig(t, 0)
	r.dmacon(agnus.BLTEN)

	r.blt.SetBLTSIZE(0)
	test.ExpectEquality(t, r.blt.Info().Width, uint16(64))
	test.ExpectEquality(t, r.blt.Info().Height, uint16(1024))

	r.blt.SetBLTSIZE(3<<6 | 5)
	test.ExpectEquality(t, r.blt.Info().Width, uint16(5))
	test.ExpectEquality(t, r.blt.Info().Height, uint16(3))

	// ECS registers are ignored by OCS
	r.blt.SetBLTSIZV(100)
	r.blt.SetBLTSIZH(100)
	test.ExpectEquality(t, r.blt.Info().Width, uint16(5))
	test.ExpectEquality(t, r.blt.Info().Height, uint16(3))
}

func TestECSSize(t *testing.T) {
	r := newRig(t, 0)
	test.DemandSuccess(t, r.env.Prefs.Revision.Set("ECS"))
	r.dmacon(agnus.BLTEN)

	r.blt.SetBLTSIZV(0)
	r.blt.SetBLTSIZH(0)
	test.ExpectEquality(t, r.blt.Info().Width, uint16(0x800))
	test.ExpectEquality(t, r.blt.Info().Height, uint16(0x8000))

	r.blt.SetBLTSIZV(2000)
	r.blt.SetBLTSIZH(1000)
	test.ExpectEquality(t, r.blt.Info().Width, uint16(1000))
	test.ExpectEquality(t, r.blt.Info().Height, uint16(2000))
	test.ExpectSuccess(t, r.blt.Busy())

	r.blt.SetBLTCON0(0x1234)
	r.blt.SetBLTCON0L(0xffab)
	test.ExpectEquality(t, r.blt.Info().BLTCON0, uint16(0x12ab))
}

func TestRegisters(t *testing.T) {
	r := newRig(t, 0)

	r.blt.PokeBLTxPTH('A', 0xffff)
	r.blt.PokeBLTxPTL('A', 0x1235)
	test.ExpectEquality(t, r.blt.Info().BLTAPT, uint32(0x071234))

	r.blt.PokeBLTxMOD('D', 0xffff)
	test.ExpectEquality(t, r.blt.Info().BLTDMOD, int16(-2))

	test.ExpectPanic(t, func() { r.blt.PokeBLTxMOD('E', 0) })
}
