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

package registers

import "fmt"

// Register is the byte offset of a custom chip register.
type Register uint16

// List of registers referenced by the emulation.
const (
	BLTDDAT  Register = 0x000
	DMACONR  Register = 0x002
	VPOSR    Register = 0x004
	VHPOSR   Register = 0x006
	ADKCONR  Register = 0x010
	SERDATR  Register = 0x018
	INTENAR  Register = 0x01c
	INTREQR  Register = 0x01e
	COPCON   Register = 0x02e
	SERDAT   Register = 0x030
	SERPER   Register = 0x032
	BLTCON0  Register = 0x040
	BLTCON1  Register = 0x042
	BLTAFWM  Register = 0x044
	BLTALWM  Register = 0x046
	BLTCPTH  Register = 0x048
	BLTCPTL  Register = 0x04a
	BLTBPTH  Register = 0x04c
	BLTBPTL  Register = 0x04e
	BLTAPTH  Register = 0x050
	BLTAPTL  Register = 0x052
	BLTDPTH  Register = 0x054
	BLTDPTL  Register = 0x056
	BLTSIZE  Register = 0x058
	BLTCON0L Register = 0x05a
	BLTSIZV  Register = 0x05c
	BLTSIZH  Register = 0x05e
	BLTCMOD  Register = 0x060
	BLTBMOD  Register = 0x062
	BLTAMOD  Register = 0x064
	BLTDMOD  Register = 0x066
	BLTCDAT  Register = 0x070
	BLTBDAT  Register = 0x072
	BLTADAT  Register = 0x074
	COP1LCH  Register = 0x080
	COP1LCL  Register = 0x082
	COP2LCH  Register = 0x084
	COP2LCL  Register = 0x086
	COPJMP1  Register = 0x088
	COPJMP2  Register = 0x08a
	COPINS   Register = 0x08c
	DMACON   Register = 0x096
	INTENA   Register = 0x09a
	INTREQ   Register = 0x09c
	ADKCON   Register = 0x09e
	AUD0LCH  Register = 0x0a0
	AUD3DAT  Register = 0x0da
	COLOR00  Register = 0x180
	NOOP     Register = 0x1fe
)

// Offsets of the audio registers from the base of the channel's register
// block.
const (
	AUDxLCH = 0x0
	AUDxLCL = 0x2
	AUDxLEN = 0x4
	AUDxPER = 0x6
	AUDxVOL = 0x8
	AUDxDAT = 0xa
)

// AudioBase returns the first register of the audio channel.
func AudioBase(channel int) Register {
	return AUD0LCH + Register(channel*0x10)
}

// names indexed by the register address divided by two.
var names [0x100]string

func init() {
	fixed := map[Register]string{
		0x000: "BLTDDAT", 0x002: "DMACONR", 0x004: "VPOSR", 0x006: "VHPOSR",
		0x008: "DSKDATR", 0x00a: "JOY0DAT", 0x00c: "JOY1DAT", 0x00e: "CLXDAT",
		0x010: "ADKCONR", 0x012: "POT0DAT", 0x014: "POT1DAT", 0x016: "POTGOR",
		0x018: "SERDATR", 0x01a: "DSKBYTR", 0x01c: "INTENAR", 0x01e: "INTREQR",
		0x020: "DSKPTH", 0x022: "DSKPTL", 0x024: "DSKLEN", 0x026: "DSKDAT",
		0x028: "REFPTR", 0x02a: "VPOSW", 0x02c: "VHPOSW", 0x02e: "COPCON",
		0x030: "SERDAT", 0x032: "SERPER", 0x034: "POTGO", 0x036: "JOYTEST",
		0x038: "STREQU", 0x03a: "STRVBL", 0x03c: "STRHOR", 0x03e: "STRLONG",
		0x040: "BLTCON0", 0x042: "BLTCON1", 0x044: "BLTAFWM", 0x046: "BLTALWM",
		0x048: "BLTCPTH", 0x04a: "BLTCPTL", 0x04c: "BLTBPTH", 0x04e: "BLTBPTL",
		0x050: "BLTAPTH", 0x052: "BLTAPTL", 0x054: "BLTDPTH", 0x056: "BLTDPTL",
		0x058: "BLTSIZE", 0x05a: "BLTCON0L", 0x05c: "BLTSIZV", 0x05e: "BLTSIZH",
		0x060: "BLTCMOD", 0x062: "BLTBMOD", 0x064: "BLTAMOD", 0x066: "BLTDMOD",
		0x070: "BLTCDAT", 0x072: "BLTBDAT", 0x074: "BLTADAT",
		0x078: "SPRHDAT", 0x07a: "BPLHDAT", 0x07c: "DENISEID", 0x07e: "DSKSYNC",
		0x080: "COP1LCH", 0x082: "COP1LCL", 0x084: "COP2LCH", 0x086: "COP2LCL",
		0x088: "COPJMP1", 0x08a: "COPJMP2", 0x08c: "COPINS", 0x08e: "DIWSTRT",
		0x090: "DIWSTOP", 0x092: "DDFSTRT", 0x094: "DDFSTOP", 0x096: "DMACON",
		0x098: "CLXCON", 0x09a: "INTENA", 0x09c: "INTREQ", 0x09e: "ADKCON",
		0x100: "BPLCON0", 0x102: "BPLCON1", 0x104: "BPLCON2", 0x106: "BPLCON3",
		0x108: "BPL1MOD", 0x10a: "BPL2MOD",
		0x1c0: "HTOTAL", 0x1c2: "HSSTOP", 0x1c4: "HBSTRT", 0x1c6: "HBSTOP",
		0x1c8: "VTOTAL", 0x1ca: "VSSTOP", 0x1cc: "VBSTRT", 0x1ce: "VBSTOP",
		0x1d0: "SPRHSTRT", 0x1d2: "SPRHSTOP", 0x1d4: "BPLHSTRT", 0x1d6: "BPLHSTOP",
		0x1d8: "HHPOSW", 0x1da: "HHPOSR", 0x1dc: "BEAMCON0", 0x1de: "HSSTRT",
		0x1e0: "VSSTRT", 0x1e2: "HCENTER", 0x1e4: "DIWHIGH",
		0x1fe: "NO-OP",
	}
	for r, n := range fixed {
		names[r>>1] = n
	}

	for ch := 0; ch < 4; ch++ {
		b := AudioBase(ch)
		names[(b+AUDxLCH)>>1] = fmt.Sprintf("AUD%dLCH", ch)
		names[(b+AUDxLCL)>>1] = fmt.Sprintf("AUD%dLCL", ch)
		names[(b+AUDxLEN)>>1] = fmt.Sprintf("AUD%dLEN", ch)
		names[(b+AUDxPER)>>1] = fmt.Sprintf("AUD%dPER", ch)
		names[(b+AUDxVOL)>>1] = fmt.Sprintf("AUD%dVOL", ch)
		names[(b+AUDxDAT)>>1] = fmt.Sprintf("AUD%dDAT", ch)
	}

	for i := 0; i < 6; i++ {
		names[(0x0e0+i*4)>>1] = fmt.Sprintf("BPL%dPTH", i+1)
		names[(0x0e2+i*4)>>1] = fmt.Sprintf("BPL%dPTL", i+1)
		names[(0x110+i*2)>>1] = fmt.Sprintf("BPL%dDAT", i+1)
	}

	for i := 0; i < 8; i++ {
		names[(0x120+i*4)>>1] = fmt.Sprintf("SPR%dPTH", i)
		names[(0x122+i*4)>>1] = fmt.Sprintf("SPR%dPTL", i)
		names[(0x140+i*8)>>1] = fmt.Sprintf("SPR%dPOS", i)
		names[(0x142+i*8)>>1] = fmt.Sprintf("SPR%dCTL", i)
		names[(0x144+i*8)>>1] = fmt.Sprintf("SPR%dDATA", i)
		names[(0x146+i*8)>>1] = fmt.Sprintf("SPR%dDATB", i)
	}

	for i := 0; i < 32; i++ {
		names[(int(COLOR00)+i*2)>>1] = fmt.Sprintf("COLOR%02d", i)
	}
}

// Name returns the name of the register at the address. Only the lower nine
// bits of the address are considered. Unnamed registers are returned as a hex
// value.
func Name(addr uint16) string {
	addr &= 0x1fe
	if n := names[addr>>1]; n != "" {
		return n
	}
	return fmt.Sprintf("$%03x", addr)
}

func (r Register) String() string {
	return Name(uint16(r))
}

// Lookup returns the address of the named register. The name is case
// sensitive.
func Lookup(name string) (Register, bool) {
	for i, n := range names {
		if n == name {
			return Register(i << 1), true
		}
	}
	return 0, false
}
