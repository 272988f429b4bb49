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

package agnus

import (
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
)

// DAS event IDs.
const (
	dasRefresh scheduler.EventID = iota + 1
	dasA0
	dasA1
	dasA2
	dasA3
)

var dasLabels = []string{"REFRESH", "A0", "A1", "A2", "A3"}

// horizontal position of each DAS event
var dasPosition = map[scheduler.EventID]int64{
	dasRefresh: 0x01,
	dasA0:      0x0d,
	dasA1:      0x0f,
	dasA2:      0x11,
	dasA3:      0x13,
}

// memory refresh cycles of every line
var refreshCycles = [...]int{0x01, 0x03, 0x05, 0xe2}

func (a *Agnus) scheduleFirstDAS() {
	line := clocks.AsDMACycles(a.sch.Clock()) / HPOS
	trigger := clocks.DMACycles(line*HPOS + dasPosition[dasRefresh])
	if trigger < a.sch.Clock() {
		trigger += clocks.DMACycles(HPOS)
	}
	a.sch.ScheduleAbs(scheduler.DAS, trigger, dasRefresh)
}

func (a *Agnus) serviceDAS(id scheduler.EventID) {
	line := clocks.AsDMACycles(a.sch.Clock()) / HPOS

	switch id {
	case dasRefresh:
		a.h()
		for _, h := range refreshCycles {
			a.owner[h] = OwnerRefresh
		}
		a.stats.Count[OwnerRefresh] += int64(len(refreshCycles))
	case dasA0, dasA1, dasA2, dasA3:
		a.doAudioDMA(int(id - dasA0))
	default:
		scheduler.UnknownEvent(scheduler.DAS, id)
	}

	// the next DAS event in this line or the refresh at the start of the next
	// line
	next := id + 1
	if next > dasA3 {
		next = dasRefresh
		line++
	}
	a.sch.ScheduleAbs(scheduler.DAS, clocks.DMACycles(line*HPOS+dasPosition[next]), next)
}
