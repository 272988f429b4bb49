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

// Package tracker keeps a history of the changes made to the audio registers
// and describes each change as a musical note.
package tracker

import (
	"sync"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// the maximum number of entries in the history
const maxEntries = 1024

type Entry struct {
	Clock     clocks.Cycle
	Channel   int
	Registers audio.Registers

	MusicalNote MusicalNote
}

// Tracker implements the audio.Tracker interface and keeps a history of the
// audio registers over time.
type Tracker struct {
	env *environment.Environment

	crit    sync.Mutex
	entries []Entry
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// Only changes made in the emulation with the same label as the environment
// are recorded.
func NewTracker(env *environment.Environment) *Tracker {
	return &Tracker{
		env:     env,
		entries: make([]Entry, 0, maxEntries),
	}
}

// AudioChanged implements the audio.Tracker interface.
func (tr *Tracker) AudioChanged(env audio.TrackerEnvironment, clock clocks.Cycle, channel int, reg audio.Registers) {
	if !env.IsEmulation(tr.env.Label) {
		return
	}

	tr.crit.Lock()
	defer tr.crit.Unlock()

	tr.entries = append(tr.entries, Entry{
		Clock:       clock,
		Channel:     channel,
		Registers:   reg,
		MusicalNote: LookupMusicalNote(tr.env.Prefs.Live.NTSC.Load(), reg),
	})
	if len(tr.entries) > maxEntries {
		tr.entries = tr.entries[1:]
	}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return append([]Entry(nil), tr.entries...)
}

// Clear removes all entries from the history.
func (tr *Tracker) Clear() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.entries = tr.entries[:0]
}
