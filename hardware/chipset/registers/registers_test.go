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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.Name(0x096), "DMACON")
	test.ExpectEquality(t, registers.Name(0x097), "DMACON")
	test.ExpectEquality(t, registers.Name(0x296), "DMACON")
	test.ExpectEquality(t, registers.Name(0x0da), "AUD3DAT")
	test.ExpectEquality(t, registers.Name(0x0b4), "AUD1LEN")
	test.ExpectEquality(t, registers.Name(0x0f4), "BPL6PTH")
	test.ExpectEquality(t, registers.Name(0x17e), "SPR7DATB")
	test.ExpectEquality(t, registers.Name(0x1be), "COLOR31")
	test.ExpectEquality(t, registers.Name(0x068), "$068")
	test.ExpectEquality(t, registers.AUD3DAT.String(), "AUD3DAT")
	test.ExpectEquality(t, registers.AudioBase(2)+registers.AUDxPER, 0x0c6)

	r, ok := registers.Lookup("COPJMP2")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, registers.COPJMP2)
	_, ok = registers.Lookup("FOO")
	test.ExpectFailure(t, ok)
}
