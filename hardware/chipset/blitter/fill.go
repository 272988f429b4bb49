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

package blitter

// fill patterns indexed by [exclusive][carry in][byte] and the carry out of
// each byte indexed by [carry in][byte].
var (
	fillPattern [2][2][256]uint8
	nextCarryIn [2][256]bool
)

func init() {
	for carryIn := range 2 {
		for v := range 256 {
			carry := uint8(carryIn)
			incl := uint8(v)
			excl := uint8(v)
			for bit := range 8 {
				incl |= carry << bit
				excl ^= carry << bit
				if v&(1<<bit) != 0 {
					carry ^= 1
				}
			}
			fillPattern[0][carryIn][v] = incl
			fillPattern[1][carryIn][v] = excl
			nextCarryIn[carryIn][v] = carry == 1
		}
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Fill runs the area fill circuit over the word. The fill proceeds from the
// least significant bit to the most significant bit. The carry is updated
// for the next word on the line.
func Fill(data uint16, carry bool, exclusive bool) (uint16, bool) {
	ex := btoi(exclusive)

	lo := uint8(data)
	rlo := fillPattern[ex][btoi(carry)][lo]
	carry = nextCarryIn[btoi(carry)][lo]

	hi := uint8(data >> 8)
	rhi := fillPattern[ex][btoi(carry)][hi]
	carry = nextCarryIn[btoi(carry)][hi]

	return uint16(rhi)<<8 | uint16(rlo), carry
}

func (b *Blitter) doFill(data uint16) uint16 {
	data, b.fillCarry = Fill(data, b.fillCarry, b.bltcon1&EFE == EFE)
	return data
}

// barrelShift combines the new and old words of a channel and shifts the
// result. In descending mode the shift is to the left.
func barrelShift(anew, aold uint16, shift uint16, desc bool) uint16 {
	if desc {
		return uint16((uint32(anew)<<16 | uint32(aold)) >> (16 - shift))
	}
	return uint16((uint32(aold)<<16 | uint32(anew)) >> shift)
}
