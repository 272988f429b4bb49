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

// Package performance measures how quickly the chipset emulation runs
// compared to real hardware.
//
// Check() runs the chipset flat out for a fixed duration, after a short
// warm-up, and reports the achieved frame rate as a percentage of the frame
// rate of the emulated television standard. Profiles can be written while it
// runs.
//
// HardwareFPS() gives the frame rate of real hardware for the chipset's
// current configuration and CalcFPS() turns a count of frames over a duration
// into a frame rate and accuracy. Neither is suited to a live display.
//
// The limiter sub-package slows the emulation to real time.
package performance
