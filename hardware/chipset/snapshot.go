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

package chipset

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/blitter"
	"github.com/jetsetilly/ocs/hardware/chipset/copper"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/uart"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
)

// AgnusInfo is a summary of Agnus suitable for inspection.
type AgnusInfo struct {
	Frame   int64
	V       int
	H       int
	DMACON  uint16
	Pending int
	Bus     agnus.Stats
	LastBus agnus.Stats
}

func (inf AgnusInfo) String() string {
	return fmt.Sprintf("frame=%d (%d, $%02x) DMACON=%04x pending=%d", inf.Frame, inf.V, inf.H, inf.DMACON, inf.Pending)
}

// State is a copy of the state of every component, produced by Snapshot().
// It shares no memory with the chipset.
type State struct {
	Scheduler scheduler.Info
	Agnus     AgnusInfo
	Copper    copper.Info
	Blitter   blitter.Info
	Paula     paula.Info
	Audio     [4]audio.ChannelInfo
	UART      uart.Info
}

func (s *State) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("clock: %d\n", s.Scheduler.Clock))
	b.WriteString(fmt.Sprintf("agnus: %s\n", s.Agnus))
	b.WriteString(fmt.Sprintf("copper: %s\n", s.Copper))
	b.WriteString(fmt.Sprintf("blitter: %s\n", s.Blitter))
	b.WriteString(fmt.Sprintf("paula: %s\n", s.Paula))
	for i, ch := range s.Audio {
		b.WriteString(fmt.Sprintf("aud%d: %s\n", i, ch))
	}
	b.WriteString(fmt.Sprintf("uart: %s\n", s.UART))
	for _, sl := range s.Scheduler.Slots {
		b.WriteString(fmt.Sprintf("%s\n", sl))
	}
	return b.String()
}

// Snapshot returns the state of every component. It is safe to call
// Snapshot() from any goroutine.
func (cs *Chipset) Snapshot() *State {
	cs.crit.RLock()
	defer cs.crit.RUnlock()

	cur, last := cs.Agnus.Stats()
	v, h := cs.Agnus.Beam()

	return &State{
		Scheduler: cs.Sch.Info(),
		Agnus: AgnusInfo{
			Frame:   cs.Agnus.Frame(),
			V:       v,
			H:       h,
			DMACON:  cs.Agnus.PeekDMACONR(cs.Blitter.Flags()),
			Pending: cs.Agnus.PendingChanges(),
			Bus:     cur,
			LastBus: last,
		},
		Copper:  cs.Copper.Info(),
		Blitter: cs.Blitter.Info(),
		Paula:   cs.Paula.Info(),
		Audio:   cs.Audio.Info(),
		UART:    cs.UART.Info(),
	}
}
