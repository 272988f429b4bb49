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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ocs/test"
	"github.com/jetsetilly/ocs/version"
)

func TestInfo(t *testing.T) {
	inf := version.Info{Number: "v1.0", Revision: "abc123", Dirty: true}
	test.ExpectEquality(t, inf.String(), "ocs v1.0 (abc123+dirty)")

	inf = version.Info{Number: "local"}
	test.ExpectEquality(t, inf.String(), "ocs local (no revision information)")
	test.ExpectFailure(t, inf.Release())
}

func TestGet(t *testing.T) {
	inf := version.Get()
	test.ExpectSuccess(t, inf.Number != "")
	test.ExpectSuccess(t, strings.HasPrefix(inf.String(), version.ApplicationName+" "))

	// the same value every time
	test.ExpectEquality(t, version.Get(), inf)
}
