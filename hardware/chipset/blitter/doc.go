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

// Package blitter implements the block transfer engine of Agnus.
//
// A blit combines up to three source channels (A, B and C) with a minterm
// and writes the result to the destination channel D. Channel A passes
// through a barrel shifter masked by the first and last word masks, channel B
// passes through a second barrel shifter. In copy mode the result may be run
// through the area fill circuit. In line mode the blitter draws a line using
// the channel A pointer as the Bresenham decision variable.
//
// The blitter runs at one of three accuracy levels, selected by the
// chipset.blitter.accuracy preference:
//
//	0  the blit is performed in one go when it starts. BLIT is raised
//	   immediately.
//	1  the blit is performed in one go but the micro-program is replayed
//	   for the bus timing.
//	2  the micro-program performs the blit one DMA cycle at a time.
//
// Memory is left in the same state whatever the accuracy level.
//
// The micro-program for each combination of enabled channels is a short
// list of steps. Each step may fetch a word, run a barrel shifter, run the
// minterm and fill logic or write the D channel. The REPEAT step loops back
// to the start of the program until every word has been processed and the
// BLTDONE step terminates the blit.
package blitter
