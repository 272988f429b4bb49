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

// Each audio channel has a DMA pointer (AUDxPT) and a location register
// (AUDxLC). the location register is written by the CPU or the copper and is
// copied to the pointer when the audio state machine asks for it.

// AudioLC returns the location register of the audio channel.
func (a *Agnus) AudioLC(channel int) uint32 {
	return a.audlc[channel]
}

// AudioPT returns the DMA pointer of the audio channel.
func (a *Agnus) AudioPT(channel int) uint32 {
	return a.audpt[channel]
}

// PokeAUDxLCH sets the high bits of the audio location register.
func (a *Agnus) PokeAUDxLCH(channel int, v uint16) {
	a.audlc[channel] = (a.audlc[channel] & 0x0000ffff) | (uint32(v&0x0007) << 16)
}

// PokeAUDxLCL sets the low bits of the audio location register. bit zero is
// ignored.
func (a *Agnus) PokeAUDxLCL(channel int, v uint16) {
	a.audlc[channel] = (a.audlc[channel] & 0xffff0000) | uint32(v&0xfffe)
}

// AudioDMARequest asks for a data word to be fetched for the audio channel in
// the channel's next DMA slot.
func (a *Agnus) AudioDMARequest(channel int) {
	a.audDR[channel] = true
}

// AudioPointerReload asks for the audio DMA pointer to be reloaded from the
// location register before the channel's next fetch.
func (a *Agnus) AudioPointerReload(channel int) {
	a.audDSR[channel] = true
}

// AudioRequests returns the state of the pending DMA request and pointer
// reload request for the channel.
func (a *Agnus) AudioRequests(channel int) (bool, bool) {
	return a.audDR[channel], a.audDSR[channel]
}

// doAudioDMA services the channel's fixed DMA slot. A pending request is
// cleared when the slot is reached even if the bus is already owned, in which
// case the data word is not fetched.
func (a *Agnus) doAudioDMA(channel int) {
	if a.audDSR[channel] {
		a.audDSR[channel] = false
		a.audpt[channel] = a.audlc[channel]
	}

	if !a.audDR[channel] {
		return
	}
	a.audDR[channel] = false

	if !a.AudioDMA(channel) {
		return
	}

	h := a.h()
	if a.owner[h] != OwnerNone {
		return
	}

	v := a.AudioRead(a.audpt[channel])
	a.audpt[channel] = (a.audpt[channel] + 2) & 0x0007fffe

	if a.audio != nil {
		a.audio.AudioDMA(channel, v)
	}
}
