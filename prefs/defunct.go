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

package prefs

// keys that may appear in older preference files but are no longer used. the
// value records what replaced them. defunct keys are dropped from the file the
// next time it is saved.
var defunct = map[string]string{
	"chipset.blitter.fast":     "chipset.blitter.accuracy",
	"chipset.audio.oversample": "chipset.audio.sampling",
}

func isDefunct(key string) bool {
	_, ok := defunct[key]
	return ok
}
