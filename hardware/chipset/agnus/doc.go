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

// Package agnus implements the DMA controller of the chipset. Agnus owns the
// beam position, the DMACON register, the audio DMA pointers and, most
// importantly, the bus arbiter.
//
// Every access to chip RAM by the Copper, the Blitter and the audio channels
// goes through the bus arbiter. The arbiter records the owner of every DMA
// cycle in the current line. A DMA cycle can have only one owner.
//
// The DAS slot of the scheduler is used by Agnus for the fixed DMA cycles of
// each line: memory refresh and audio DMA. Disk and sprite DMA cycles are not
// emulated.
//
// The REG slot is used by the register change recorder. Some register writes
// take effect a number of DMA cycles after the write has been made. These
// writes are recorded and applied at the correct time through the
// RegisterSink interface.
package agnus
