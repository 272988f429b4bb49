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

package paths

import (
	"strings"
	"time"
)

// UniqueFilename returns a name made from prefix, the label and the current
// time. The label is omitted if it is empty:
//
//	chipset_frame10_20260118_093012
//	chipset_20260118_093012
//
// Names created in the same second will be the same. The existence of the file
// is not checked.
func UniqueFilename(prefix string, label string) string {
	parts := []string{prefix}
	if l := strings.TrimSpace(label); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, time.Now().Format("20060102_150405"))
	return strings.Join(parts, "_")
}
