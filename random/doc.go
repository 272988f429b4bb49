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

// Package random provides the random numbers used inside the emulation. Code
// in the emulation should use it rather than the math/rand/v2 package
// directly so that runs can be reproduced.
//
// Rewindable() returns a number that depends only on the seed and the master
// clock. Asking twice at the same clock gives the same answer, which suits
// scripts that want reproducible "random" input.
//
// NoRewind() returns the next number from a sequence that starts with the
// seed. The chipset uses it for the power-on state of the custom registers.
//
// Setting ZeroSeed makes every run identical. Normalised environments, which
// are used by tests, always set it.
package random
