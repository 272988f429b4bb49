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

// Package audio implements the four audio channels of Paula and the muxer that
// mixes the output of the channels into a stereo stream for the host.
//
// Each channel is a state machine with five states, named after the state
// bits of the hardware: 000, 001, 010, 011 and 101. Transitions are driven by
// writes to AUDxDAT (by the CPU or by audio DMA), by changes to the channel's
// DMA enable bit, and by the period counter expiring. The period counter is
// the channel's slot in the scheduler.
//
// The output of a channel is recorded as a series of samples tagged with the
// master cycle at which the output latch changed. The muxer interpolates
// between tagged samples to produce output at the host sample rate.
package audio
