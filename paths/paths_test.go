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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ocs/paths"
	"github.com/jetsetilly/ocs/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".ocs/foo/bar/baz")

	// sub-path directory is created by ResourcePath()
	info, err := os.Stat(".ocs/foo/bar")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".ocs/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".ocs/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".ocs")
}

func TestEnvConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvConfig, dir)

	pth, err := paths.ResourcePath("sub", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(dir, "sub", "preferences"))

	info, err := os.Stat(filepath.Join(dir, "sub"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_"))
	test.ExpectEquality(t, strings.Count(fn, "_"), 2)

	fn = paths.UniqueFilename("dump", "frame")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "dump_frame_"))
}
