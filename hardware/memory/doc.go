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

// Package memory implements the chip RAM of the machine. Chip RAM is the only
// memory that the custom chips can reach with DMA.
//
// Chip RAM is word organised. Odd addresses are aligned down to the even
// address when reading or writing words. Addresses beyond the size of the
// installed memory are mirrored.
//
// The custom chips do not access chip RAM directly. Access is through the bus
// arbiter in the agnus package, which records the owner of every bus cycle.
package memory
