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

// Package version reports the version of the ocs binary. Release builds set
// the version number with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/ocs/version.number=v0.1.0"
//
// Other builds take what they can from the VCS information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is used when referring to the program in output.
const ApplicationName = "ocs"

// set by the linker for release builds.
var number string

// Info describes the build.
type Info struct {
	// Number is the release number. For builds that were not made with the
	// linker flag it is "unreleased" if VCS information is available and
	// "local" if it isn't
	Number string

	// Revision is the VCS revision or the empty string if there is none
	Revision string

	// Dirty is true if the source had uncommitted changes when built
	Dirty bool

	// GoVersion is the version of the toolchain used to build the binary
	GoVersion string
}

// Release returns true if the build has a release number.
func (inf Info) Release() bool {
	return number != "" && inf.Number == number
}

func (inf Info) String() string {
	rev := inf.Revision
	switch {
	case rev == "":
		rev = "no revision information"
	case inf.Dirty:
		rev += "+dirty"
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, rev)
}

// Get returns information about the running binary.
var Get = sync.OnceValue(func() Info {
	inf := Info{Number: number}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		inf.GoVersion = bi.GoVersion
	}

	var vcs bool
	if ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				inf.Dirty = s.Value == "true"
			}
		}
	}

	if inf.Number == "" {
		if vcs {
			inf.Number = "unreleased"
		} else {
			inf.Number = "local"
		}
	}

	return inf
})
