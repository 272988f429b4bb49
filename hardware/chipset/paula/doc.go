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

// Package paula implements the interrupt controller and the ADKCON register of
// the Paula chip. The audio channels and the UART, also part of Paula, are
// implemented in the audio and uart sub-packages.
//
// Interrupts can be raised immediately with RaiseIrq() or at a later cycle
// with ScheduleIrqAbs() and ScheduleIrqRel(). Delayed interrupts use the IRQ
// slot of the scheduler. Each source has at most one pending trigger.
package paula
