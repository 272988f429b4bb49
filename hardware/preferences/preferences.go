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
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/paths"
	"github.com/jetsetilly/ocs/prefs"
)

// LivePreferences encapsulates the current (live) values of preferences that
// are consulted by the emulation on every DMA cycle.
//
// For performance critical situations these values should be preferred to the
// prefs values in Preferences. They are updated automatically when the
// corresponding prefs value is updated.
type LivePreferences struct {
	ECS             atomic.Bool
	NTSC            atomic.Bool
	BlitterAccuracy atomic.Int32
	VerifyMinterm   atomic.Bool
	CopinsLatch     atomic.Bool
}

// Preferences defines and collates all the preference values used by the
// chipset.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values in performance critical code
	Live LivePreferences

	// agnus revision. either "OCS" or "ECS"
	Revision prefs.String

	// television standard. either "PAL" or "NTSC"
	TV prefs.String

	// initialise hardware to unknown state after power-on
	RandomState prefs.Bool

	// 0 fast, 1 fast with bus timing, 2 cycle exact
	BlitterAccuracy prefs.Int

	// evaluate both minterm implementations and panic on disagreement
	VerifyMinterm prefs.Bool

	// see copper.PokeCOPINS() for details
	CopinsLatch prefs.Bool

	// preferences used by the audio muxer
	Audio *AudioPreferences

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	p.Revision.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "OCS", "ECS":
		default:
			return fmt.Errorf("preferences: unknown revision (%s)", v)
		}
		return nil
	})
	p.Revision.SetHookPost(func(v prefs.Value) error {
		p.Live.ECS.Store(strings.ToUpper(v.(string)) == "ECS")
		return nil
	})

	p.TV.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "PAL", "NTSC":
		default:
			return fmt.Errorf("preferences: unknown television standard (%s)", v)
		}
		return nil
	})
	p.TV.SetHookPost(func(v prefs.Value) error {
		p.Live.NTSC.Store(strings.ToUpper(v.(string)) == "NTSC")
		return nil
	})

	p.BlitterAccuracy.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 2 {
			return fmt.Errorf("preferences: blitter accuracy must be between 0 and 2 (%d)", v)
		}
		return nil
	})
	p.BlitterAccuracy.SetHookPost(func(v prefs.Value) error {
		p.Live.BlitterAccuracy.Store(int32(v.(int)))
		return nil
	})

	p.VerifyMinterm.SetHookPost(func(v prefs.Value) error {
		p.Live.VerifyMinterm.Store(v.(bool))
		return nil
	})
	p.CopinsLatch.SetHookPost(func(v prefs.Value) error {
		p.Live.CopinsLatch.Store(v.(bool))
		return nil
	})

	p.SetDefaults()

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	keys := []struct {
		key string
		val pref
	}{
		{key: "chipset.revision", val: &p.Revision},
		{key: "chipset.tv", val: &p.TV},
		{key: "chipset.randstate", val: &p.RandomState},
		{key: "chipset.blitter.accuracy", val: &p.BlitterAccuracy},
		{key: "chipset.blitter.verifyminterm", val: &p.VerifyMinterm},
		{key: "chipset.copper.copinslatch", val: &p.CopinsLatch},
	}
	for _, k := range keys {
		err = p.dsk.Add(k.key, k.val)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	p.Audio, err = newAudioPreferences()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Revision.Set("OCS")
	_ = p.TV.Set("PAL")
	_ = p.RandomState.Set(false)
	_ = p.BlitterAccuracy.Set(2)
	_ = p.VerifyMinterm.Set(false)
	_ = p.CopinsLatch.Set(true)
	if p.Audio != nil {
		p.Audio.SetDefaults()
	}
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load current chipset preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil {
		return err
	}
	return p.Audio.Load()
}

// Save current chipset preferences to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return err
	}
	return p.Audio.Save()
}
