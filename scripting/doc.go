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

// Package scripting runs Lua scripts against a chipset. Scripts are useful
// for setting up test scenarios that would otherwise need a CPU program: a
// script pokes registers, writes chip RAM, advances the clock and inspects
// the result.
//
// The following functions are available to a script:
//
//	poke(reg, value)     write a custom register. reg is a name or an offset
//	peek(reg)            read a custom register
//	write(addr, value)   write a word of chip RAM
//	read(addr)           read a word of chip RAM
//	advance(n)           advance the clock by n DMA cycles. returns the clock
//	vsync([n])           run to the start of the nth next frame. returns the frame
//	beam()               returns the vertical and horizontal beam position
//	copper(addr, list)   write a Copper list to chip RAM and point COP1LC at it
//	disasm(addr, n)      returns a table of disassembled Copper instructions
//	random(n)            a number between 0 and n-1 that depends on the clock
//	log(...)             write the arguments to the central log
//
// Values are Lua numbers and are truncated to the width of the register.
package scripting
