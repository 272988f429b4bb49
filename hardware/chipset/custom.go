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

package chipset

import (
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
)

// the number of DMA cycles before a write to the register takes effect.
// registers not listed are written immediately
var delays = map[registers.Register]int64{
	registers.BLTCON0:  2,
	registers.BLTCON0L: 2,
	registers.BLTCON1:  2,
	registers.BLTSIZE:  1,
	registers.BLTSIZV:  2,
	registers.BLTSIZH:  1,
	registers.DMACON:   2,
	registers.INTENA:   2,
	registers.INTREQ:   2,
}

// Agnus identification in bits 8 to 14 of VPOSR
const (
	idOCSPAL  = 0x00
	idOCSNTSC = 0x10
	idECSPAL  = 0x20
	idECSNTSC = 0x30
)

// PokeCustom16 writes a value to the custom register at the address. Only the
// lower nine bits of the address are decoded. Writes to read-only and
// unmapped registers are ignored.
func (cs *Chipset) PokeCustom16(addr uint32, value uint16) {
	cs.crit.Lock()
	defer cs.crit.Unlock()
	cs.write(registers.Register(addr&0x1fe), value)
}

// PeekCustom16 reads the custom register at the address. Only the lower nine
// bits of the address are decoded. Write-only and unmapped registers read as
// zero.
func (cs *Chipset) PeekCustom16(addr uint32) uint16 {
	cs.crit.RLock()
	defer cs.crit.RUnlock()
	return cs.read(registers.Register(addr & 0x1fe))
}

// CopperWrite implements the copper.Registers interface.
func (cs *Chipset) CopperWrite(reg registers.Register, value uint16) {
	cs.write(reg, value)
}

// ApplyRegister implements the agnus.RegisterSink interface.
func (cs *Chipset) ApplyRegister(reg registers.Register, value uint16) {
	cs.apply(reg, value)
}

func (cs *Chipset) write(reg registers.Register, value uint16) {
	if d, ok := delays[reg]; ok {
		cs.Agnus.RecordRegisterChange(d, reg, value)
		return
	}
	cs.apply(reg, value)
}

// reading a register never changes the state of the chipset.
func (cs *Chipset) read(reg registers.Register) uint16 {
	switch reg {
	case registers.BLTDDAT:
		return cs.Blitter.PeekBLTDDAT()
	case registers.DMACONR:
		return cs.Agnus.PeekDMACONR(cs.Blitter.Flags())
	case registers.VPOSR:
		return cs.vposr()
	case registers.VHPOSR:
		v, h := cs.Agnus.Beam()
		return uint16(v&0xff)<<8 | uint16(h&0xff)
	case registers.ADKCONR:
		return cs.Paula.PeekADKCONR()
	case registers.SERDATR:
		return cs.UART.PeekSERDATR()
	case registers.INTENAR:
		return cs.Paula.PeekINTENAR()
	case registers.INTREQR:
		return cs.Paula.PeekINTREQR()
	}
	return 0
}

func (cs *Chipset) vposr() uint16 {
	var id uint16
	ntsc := cs.env.Prefs.Live.NTSC.Load()
	switch {
	case cs.Agnus.ECS() && ntsc:
		id = idECSNTSC
	case cs.Agnus.ECS():
		id = idECSPAL
	case ntsc:
		id = idOCSNTSC
	default:
		id = idOCSPAL
	}

	// every frame is a long frame without interlace
	v, _ := cs.Agnus.Beam()
	return 0x8000 | id<<8 | uint16(v>>8)&0x01
}

func (cs *Chipset) apply(reg registers.Register, value uint16) {
	if reg >= registers.AUD0LCH && reg <= registers.AUD3DAT {
		cs.applyAudio(reg, value)
		return
	}

	switch reg {
	case registers.COPCON:
		cs.Copper.PokeCOPCON(value)

	case registers.SERDAT:
		cs.UART.PokeSERDAT(value)
	case registers.SERPER:
		cs.UART.PokeSERPER(value)

	case registers.BLTCON0:
		cs.Blitter.SetBLTCON0(value)
	case registers.BLTCON0L:
		cs.Blitter.SetBLTCON0L(value)
	case registers.BLTCON1:
		cs.Blitter.SetBLTCON1(value)
	case registers.BLTAFWM:
		cs.Blitter.PokeBLTAFWM(value)
	case registers.BLTALWM:
		cs.Blitter.PokeBLTALWM(value)
	case registers.BLTAPTH:
		cs.Blitter.PokeBLTxPTH('A', value)
	case registers.BLTAPTL:
		cs.Blitter.PokeBLTxPTL('A', value)
	case registers.BLTBPTH:
		cs.Blitter.PokeBLTxPTH('B', value)
	case registers.BLTBPTL:
		cs.Blitter.PokeBLTxPTL('B', value)
	case registers.BLTCPTH:
		cs.Blitter.PokeBLTxPTH('C', value)
	case registers.BLTCPTL:
		cs.Blitter.PokeBLTxPTL('C', value)
	case registers.BLTDPTH:
		cs.Blitter.PokeBLTxPTH('D', value)
	case registers.BLTDPTL:
		cs.Blitter.PokeBLTxPTL('D', value)
	case registers.BLTSIZE:
		cs.Blitter.SetBLTSIZE(value)
	case registers.BLTSIZV:
		cs.Blitter.SetBLTSIZV(value)
	case registers.BLTSIZH:
		cs.Blitter.SetBLTSIZH(value)
	case registers.BLTAMOD:
		cs.Blitter.PokeBLTxMOD('A', value)
	case registers.BLTBMOD:
		cs.Blitter.PokeBLTxMOD('B', value)
	case registers.BLTCMOD:
		cs.Blitter.PokeBLTxMOD('C', value)
	case registers.BLTDMOD:
		cs.Blitter.PokeBLTxMOD('D', value)
	case registers.BLTADAT:
		cs.Blitter.PokeBLTADAT(value)
	case registers.BLTBDAT:
		cs.Blitter.PokeBLTBDAT(value)
	case registers.BLTCDAT:
		cs.Blitter.PokeBLTCDAT(value)

	case registers.COP1LCH:
		cs.Copper.PokeCOP1LCH(value)
	case registers.COP1LCL:
		cs.Copper.PokeCOP1LCL(value)
	case registers.COP2LCH:
		cs.Copper.PokeCOP2LCH(value)
	case registers.COP2LCL:
		cs.Copper.PokeCOP2LCL(value)
	case registers.COPJMP1:
		cs.Copper.PokeCOPJMP(1)
	case registers.COPJMP2:
		cs.Copper.PokeCOPJMP(2)
	case registers.COPINS:
		cs.Copper.PokeCOPINS(value)

	case registers.DMACON:
		cs.pokeDMACON(value)

	case registers.INTENA:
		cs.Paula.PokeINTENA(value)
	case registers.INTREQ:
		cleared := cs.Paula.PokeINTREQ(value)
		if cleared&paula.RBF.Bit() != 0 {
			cs.UART.ClearOverrun()
		}
	case registers.ADKCON:
		cs.Paula.PokeADKCON(value)
		cs.UART.UpdateTXD()
	}
}

// the DMACON write is passed on to every component whose DMA has been
// switched on or off
func (cs *Chipset) pokeDMACON(value uint16) {
	prev, curr := cs.Agnus.PokeDMACON(value)

	if changed, on := agnus.BlitterDMAChanged(prev, curr); changed {
		cs.Blitter.DMAChanged(on)
	}
	if changed, on := agnus.CopperDMAChanged(prev, curr); changed {
		cs.Copper.DMAChanged(on)
	}
	for i, ch := range cs.Audio.Channels {
		if changed, on := agnus.AudioDMAChanged(prev, curr, i); changed {
			if on {
				ch.EnableDMA()
			} else {
				ch.DisableDMA()
			}
		}
	}
}

func (cs *Chipset) applyAudio(reg registers.Register, value uint16) {
	channel := int(reg-registers.AUD0LCH) >> 4
	offset := uint16(reg-registers.AUD0LCH) & 0x0f

	switch offset {
	case registers.AUDxLCH:
		cs.Agnus.PokeAUDxLCH(channel, value)
	case registers.AUDxLCL:
		cs.Agnus.PokeAUDxLCL(channel, value)
	default:
		cs.Audio.PokeRegister(channel, offset, value)
	}
}
