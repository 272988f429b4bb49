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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(50)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runFrame()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/ocs/curated"
)

// Limiter triggers a fixed number of times per second.
type Limiter struct {
	period time.Duration

	// the time of the next trigger. zero until the first call to Wait() or
	// HasWaited()
	next time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(perSecond float64) (*Limiter, error) {
	lim := &Limiter{}
	if err := lim.SetLimit(perSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond float64) error {
	if perSecond <= 0 {
		return curated.Errorf("limiter: rate must be positive (%f)", perSecond)
	}
	lim.period = time.Duration(float64(time.Second) / perSecond)
	return nil
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// advance the trigger time. if the caller has fallen more than a period
// behind then the schedule restarts from now rather than triggering in a
// burst to catch up
func (lim *Limiter) advance(now time.Time) {
	lim.next = lim.next.Add(lim.period)
	if now.Sub(lim.next) > lim.period {
		lim.next = now.Add(lim.period)
	}
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	now := time.Now()
	if lim.next.IsZero() {
		lim.next = now.Add(lim.period)
		return
	}

	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
		now = lim.next
	}
	lim.advance(now)
}

// HasWaited will return true if the trigger time has already passed and
// false if it is still yet to happen. The trigger is consumed if true is
// returned.
func (lim *Limiter) HasWaited() bool {
	now := time.Now()
	if lim.next.IsZero() {
		lim.next = now.Add(lim.period)
		return true
	}
	if now.Before(lim.next) {
		return false
	}
	lim.advance(now)
	return true
}
