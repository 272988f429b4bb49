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

// Package digest creates SHA1 digests of the output of the chipset. A digest
// is chained: each new value is computed over the previous value and the new
// data. Two runs of the emulation produce the same digest only if they
// produced identical output at every step, which makes digests suitable for
// regression testing.
package digest

// Digest implementations compute a running digest value.
type Digest interface {
	Hash() string
	ResetDigest()
}
