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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/performance"
	"github.com/jetsetilly/ocs/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem|performance.ProfileTrace)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(50, 100, 4)
	test.ExpectEquality(t, fps, 25.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, accuracy = performance.CalcFPS(50, 100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func newChipset(t *testing.T) *chipset.Chipset {
	t.Helper()
	t.Chdir(t.TempDir())

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mem, err := memory.NewChipRAM(memory.DefaultSize)
	test.DemandSuccess(t, err)

	cs, err := chipset.NewChipset(env, mem)
	test.DemandSuccess(t, err)
	return cs
}

func TestHardwareFPS(t *testing.T) {
	cs := newChipset(t)
	test.ExpectApproximate(t, performance.HardwareFPS(cs), 49.92, 0.001)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	for _, fn := range []string{"test_cpu.profile", "test_mem.profile"} {
		_, err := os.Stat(filepath.Join(".", fn))
		test.ExpectSuccess(t, err, fn)
	}
	_, err = os.Stat("test_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check runs for longer than two seconds")
	}

	cs := newChipset(t)

	var b strings.Builder
	test.ExpectSuccess(t, performance.Check(&b, performance.ProfileNone, cs, 100*time.Millisecond))
	test.ExpectSuccess(t, strings.Contains(b.String(), " fps ("))

	test.ExpectFailure(t, performance.Check(&b, performance.ProfileNone, cs, 0))
}
