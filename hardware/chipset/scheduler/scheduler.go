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

package scheduler

import (
	"fmt"

	"github.com/jetsetilly/ocs/hardware/clocks"
)

// EventID names the next state of the handler that owns the slot. Values are
// specific to each handler. The zero value indicates that there is no event.
type EventID int

// NoEvent is the EventID of an empty slot.
const NoEvent EventID = 0

// Handler implementations are called when an event in their slot is due.
type Handler interface {
	ServiceEvent(slot Slot, id EventID, data int64)
}

// Event is the content of a single slot.
type Event struct {
	Trigger clocks.Cycle
	ID      EventID
	Data    int64
}

type slot struct {
	Event
	handler Handler

	// labels for the EventIDs accepted by the handler. index zero is the
	// label for NoEvent
	labels []string
}

func (s *slot) label() string {
	if int(s.ID) < len(s.labels) {
		return s.labels[s.ID]
	}
	return fmt.Sprintf("%d", s.ID)
}

// Scheduler owns the master clock and the slot table.
type Scheduler struct {
	clock clocks.Cycle
	slots [NumSlots]slot

	// the earliest trigger in the slot table. NEVER if there are no pending
	// events
	next clocks.Cycle
}

// NewScheduler is the preferred method of initialisation for the Scheduler type.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.Reset()
	return s
}

// Reset clears every slot and sets the clock to zero. Handlers remain
// registered.
func (s *Scheduler) Reset() {
	s.clock = 0
	for i := range s.slots {
		s.slots[i].Event = Event{Trigger: clocks.NEVER}
	}
	s.next = clocks.NEVER
}

// Register the handler for a slot. The labels argument names the EventIDs
// that the handler accepts, starting with EventID 1. Only EventIDs named in
// the list can be scheduled for the slot.
func (s *Scheduler) Register(sl Slot, h Handler, labels ...string) {
	if s.slots[sl].handler != nil {
		panic(fmt.Sprintf("scheduler: slot %s already has a handler", sl))
	}
	s.slots[sl].handler = h
	s.slots[sl].labels = append([]string{"-"}, labels...)
}

// Clock returns the current value of the master clock.
func (s *Scheduler) Clock() clocks.Cycle {
	return s.clock
}

func (s *Scheduler) updateNext() {
	s.next = clocks.NEVER
	for i := range s.slots {
		if s.slots[i].ID != NoEvent && s.slots[i].Trigger < s.next {
			s.next = s.slots[i].Trigger
		}
	}
}

// ScheduleAbsData arms a slot with an event that will be dispatched at the
// absolute cycle. The event replaces any event already in the slot.
//
// A cycle of clocks.NEVER parks the event in the slot. It will never be
// dispatched but the slot will report the event ID with HasEvent().
func (s *Scheduler) ScheduleAbsData(sl Slot, cycle clocks.Cycle, id EventID, data int64) {
	if cycle < s.clock {
		panic(fmt.Sprintf("scheduler: %s event %d scheduled in the past (%d < %d)", sl, id, cycle, s.clock))
	}
	if id <= NoEvent || int(id) >= len(s.slots[sl].labels) {
		panic(fmt.Sprintf("scheduler: unknown event for %s (%d)", sl, id))
	}

	s.slots[sl].Event = Event{
		Trigger: cycle,
		ID:      id,
		Data:    data,
	}

	if cycle < s.next {
		s.next = cycle
	}
}

// ScheduleAbs arms a slot with an event at the absolute cycle. The data value
// of the slot is preserved.
func (s *Scheduler) ScheduleAbs(sl Slot, cycle clocks.Cycle, id EventID) {
	s.ScheduleAbsData(sl, cycle, id, s.slots[sl].Data)
}

// ScheduleRel arms a slot with an event at a cycle relative to the current
// clock.
func (s *Scheduler) ScheduleRel(sl Slot, delta clocks.Cycle, id EventID) {
	s.ScheduleAbs(sl, s.clock+delta, id)
}

// ScheduleImm arms a slot with an event for the current clock. The event will
// be dispatched before AdvanceTo() returns.
func (s *Scheduler) ScheduleImm(sl Slot, id EventID) {
	s.ScheduleAbs(sl, s.clock, id)
}

// RescheduleAbs changes the trigger cycle of the event in the slot. The event
// ID is unchanged.
func (s *Scheduler) RescheduleAbs(sl Slot, cycle clocks.Cycle) {
	s.ScheduleAbs(sl, cycle, s.slots[sl].ID)
}

// RescheduleRel changes the trigger cycle of the event in the slot to a cycle
// relative to the current clock. The event ID is unchanged.
func (s *Scheduler) RescheduleRel(sl Slot, delta clocks.Cycle) {
	s.ScheduleAbs(sl, s.clock+delta, s.slots[sl].ID)
}

// Cancel the event in the slot. Cancelling an empty slot has no effect.
func (s *Scheduler) Cancel(sl Slot) {
	s.slots[sl].Event = Event{Trigger: clocks.NEVER, Data: s.slots[sl].Data}
}

// HasEvent returns true if the slot holds an event, even if the event is
// parked.
func (s *Scheduler) HasEvent(sl Slot) bool {
	return s.slots[sl].ID != NoEvent
}

// IsPending returns true if the slot holds an event that will be dispatched.
func (s *Scheduler) IsPending(sl Slot) bool {
	return s.slots[sl].ID != NoEvent && s.slots[sl].Trigger != clocks.NEVER
}

// IsDue returns true if the slot holds an event for the current clock or
// earlier.
func (s *Scheduler) IsDue(sl Slot) bool {
	return s.slots[sl].ID != NoEvent && s.slots[sl].Trigger <= s.clock
}

// Slot returns the event currently in the slot.
func (s *Scheduler) Slot(sl Slot) Event {
	return s.slots[sl].Event
}

// AdvanceTo dispatches every event with a trigger cycle less than or equal to
// the cycle argument and leaves the clock at that cycle. Events are
// dispatched in order of trigger cycle, and then in slot order.
func (s *Scheduler) AdvanceTo(cycle clocks.Cycle) {
	if cycle < s.clock {
		panic(fmt.Sprintf("scheduler: advancing to the past (%d < %d)", cycle, s.clock))
	}

	for s.next <= cycle {
		// find the earliest event. ties are broken in favour of the lowest slot
		due := -1
		for i := range s.slots {
			if s.slots[i].ID == NoEvent {
				continue
			}
			if due == -1 || s.slots[i].Trigger < s.slots[due].Trigger {
				due = i
			}
		}

		ev := s.slots[due].Event
		h := s.slots[due].handler
		if h == nil {
			panic(fmt.Sprintf("scheduler: no handler for %s", Slot(due)))
		}

		s.clock = ev.Trigger
		s.slots[due].Event = Event{Trigger: clocks.NEVER, Data: ev.Data}
		s.updateNext()

		h.ServiceEvent(Slot(due), ev.ID, ev.Data)
	}

	s.clock = cycle
}

// SlotInfo is a summary of a slot suitable for inspection.
type SlotInfo struct {
	Slot    Slot
	Trigger clocks.Cycle
	ID      EventID
	Label   string
	Data    int64
}

func (i SlotInfo) String() string {
	if i.ID == NoEvent {
		return fmt.Sprintf("%s: -", i.Slot)
	}
	if i.Trigger == clocks.NEVER {
		return fmt.Sprintf("%s: %s (parked)", i.Slot, i.Label)
	}
	return fmt.Sprintf("%s: %s @ %d", i.Slot, i.Label, i.Trigger)
}

// Info is a summary of the scheduler suitable for inspection.
type Info struct {
	Clock clocks.Cycle
	Slots [NumSlots]SlotInfo
}

// Info returns a summary of the scheduler.
func (s *Scheduler) Info() Info {
	inf := Info{Clock: s.clock}
	for i := range s.slots {
		inf.Slots[i] = SlotInfo{
			Slot:    Slot(i),
			Trigger: s.slots[i].Trigger,
			ID:      s.slots[i].ID,
			Label:   s.slots[i].label(),
			Data:    s.slots[i].Data,
		}
	}
	return inf
}

// Label returns the label of the EventID for the slot.
func (s *Scheduler) Label(sl Slot, id EventID) string {
	if int(id) < len(s.slots[sl].labels) {
		return s.slots[sl].labels[id]
	}
	return fmt.Sprintf("%d", id)
}

// UnknownEvent panics with a message describing an event that the handler
// for the slot does not recognise. Handlers should call this in the default
// case of their dispatch switch.
func UnknownEvent(sl Slot, id EventID) {
	panic(fmt.Sprintf("scheduler: %s handler does not recognise event %d", sl, id))
}
