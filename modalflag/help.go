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

package modalflag

import (
	"fmt"
	"strings"
)

// help amends the usage message produced by the flag package with the mode
// path, the list of sub-modes and any additional help.
func (md *Modes) help(usage string) {
	w := md.output()

	banner, flags, _ := strings.Cut(usage, "\n")

	if flags == "" && len(md.subModes) == 0 {
		if md.Path() != "" {
			fmt.Fprintf(w, "No help available for %s\n", md.Path())
		} else {
			fmt.Fprintln(w, "No help available")
		}
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(w, "%s for %s mode\n", banner, md.Path())
	} else {
		fmt.Fprintln(w, banner)
	}
	fmt.Fprint(w, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(w, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(w, "\n%s\n", md.additionalHelp)
	}
}
