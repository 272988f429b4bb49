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

// Package scheduler coordinates the timing of every state machine in the
// chipset. The master clock is owned by the Scheduler and is advanced with
// the AdvanceTo() function.
//
// Each hardware sub-unit owns exactly one slot in the scheduler. A slot holds
// at most one pending event: a trigger cycle, an event ID and an auxiliary
// data value. Arming a slot that already holds an event overwrites the
// previous event.
//
// Events are dispatched to the Handler registered for the slot in order of
// trigger cycle. Events with the same trigger cycle are dispatched in slot
// order. The slot is cleared before the handler is called. A handler that
// wants to be called again must rearm its slot, which it can do for the
// current clock if required.
//
// Scheduling an event in the past, scheduling an event ID that has not been
// registered, or dispatching to a slot without a handler is a programming
// error and will cause a panic.
package scheduler
