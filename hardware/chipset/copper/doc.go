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

// Package copper implements the Copper, the list processor of Agnus.
//
// The Copper fetches two-word instructions from chip RAM and executes them.
// There are three instructions: MOVE writes a value to a custom register,
// WAIT stalls until the beam reaches a position and SKIP skips the next MOVE
// if the beam has passed a position.
//
// Every step of an instruction is an event in the COP slot of the scheduler.
// An event that can't get the bus is retried in the next DMA cycle. If Copper
// DMA is disabled the event is parked until the DMA is enabled again.
//
// The Copper is restarted at the start of every frame by VsyncAction().
package copper
