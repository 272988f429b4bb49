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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/paths"
	"github.com/jetsetilly/ocs/prefs"
)

// AudioPreferences are the preferences used by the audio muxer. Values are
// read by the muxer whenever it synthesizes a new batch of samples.
type AudioPreferences struct {
	dsk *prefs.Disk

	// interpolation method. one of NONE, NEAREST or LINEAR
	Sampling prefs.String

	// filter chain. one of NONE, A500, A1200, LP, LED or HP
	Filter prefs.String

	// the state of the power LED. the LED filter is only active when the LED
	// is on
	LED prefs.Bool

	// per channel pan and volume. values are 0 to 100. a pan value of 50 is
	// centre
	Pan [4]prefs.Int
	Vol [4]prefs.Int

	// master volume for the left and right outputs. values 0 to 100
	VolL prefs.Int
	VolR prefs.Int
}

func (p *AudioPreferences) String() string {
	return p.dsk.String()
}

func oneOf(name string, valid ...string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		s := strings.ToUpper(v.(string))
		for _, o := range valid {
			if s == o {
				return nil
			}
		}
		return fmt.Errorf("preferences: unknown %s (%s)", name, v)
	}
}

func percentage(v prefs.Value) error {
	if v.(int) < 0 || v.(int) > 100 {
		return fmt.Errorf("preferences: value must be between 0 and 100 (%d)", v)
	}
	return nil
}

func newAudioPreferences() (*AudioPreferences, error) {
	p := &AudioPreferences{}

	p.Sampling.SetHookPre(oneOf("sampling method", "NONE", "NEAREST", "LINEAR"))
	p.Filter.SetHookPre(oneOf("filter", "NONE", "A500", "A1200", "LP", "LED", "HP"))
	for i := range p.Pan {
		p.Pan[i].SetHookPre(percentage)
		p.Vol[i].SetHookPre(percentage)
	}
	p.VolL.SetHookPre(percentage)
	p.VolR.SetHookPre(percentage)

	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("audio preferences: %v", err)
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("audio preferences: %v", err)
	}

	add := func(key string, v pref) {
		if err == nil {
			err = p.dsk.Add(key, v)
		}
	}

	add("chipset.audio.sampling", &p.Sampling)
	add("chipset.audio.filter", &p.Filter)
	add("chipset.audio.led", &p.LED)
	for i := range p.Pan {
		add(fmt.Sprintf("chipset.audio.pan%d", i), &p.Pan[i])
		add(fmt.Sprintf("chipset.audio.vol%d", i), &p.Vol[i])
	}
	add("chipset.audio.volL", &p.VolL)
	add("chipset.audio.volR", &p.VolR)
	if err != nil {
		return nil, curated.Errorf("audio preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("audio preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. Channels 0 and 3 are
// panned left and channels 1 and 2 are panned right, in the manner of the
// real hardware, but not fully so.
func (p *AudioPreferences) SetDefaults() {
	_ = p.Sampling.Set("NEAREST")
	_ = p.Filter.Set("A500")
	_ = p.LED.Set(false)
	_ = p.Pan[0].Set(20)
	_ = p.Pan[1].Set(80)
	_ = p.Pan[2].Set(80)
	_ = p.Pan[3].Set(20)
	for i := range p.Vol {
		_ = p.Vol[i].Set(100)
	}
	_ = p.VolL.Set(50)
	_ = p.VolR.Set(50)
}

// Load audio preferences from disk.
func (p *AudioPreferences) Load() error {
	return p.dsk.Load(false)
}

// Save current audio preferences to disk.
func (p *AudioPreferences) Save() error {
	return p.dsk.Save()
}
