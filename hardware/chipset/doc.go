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

// Package chipset connects the custom chips to each other and to chip RAM.
//
// The Chipset type owns the scheduler and every component registered with
// it. Custom register accesses from outside the chipset are made with
// PokeCustom16() and PeekCustom16(). The Copper writes registers through the
// same decoder.
//
// Some register writes do not take effect immediately. DMACON, INTENA,
// INTREQ and the blitter control registers are passed to the register change
// recorder in Agnus and are applied after a short delay, measured in DMA
// cycles. All other registers are written immediately.
//
// The chipset is not safe for concurrent use except for Snapshot(), which
// may be called from any goroutine.
package chipset
