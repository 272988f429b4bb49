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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/ocs/performance/limiter"
	"github.com/jetsetilly/ocs/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lim.Period(), 10*time.Millisecond)

	// the first call to Wait() starts the schedule
	start := time.Now()
	for range 6 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 50*time.Millisecond)
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewLimiter(10)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, lim.HasWaited())
	test.ExpectFailure(t, lim.HasWaited())

	time.Sleep(lim.Period())
	test.ExpectSuccess(t, lim.HasWaited())
	test.ExpectFailure(t, lim.HasWaited())
}
