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

// Package modalflag wraps the flag package from the standard library so that
// a program can have modes, each with their own flags. The ocs command uses it
// to select between RUN, SERIAL, DISASM and its other modes.
//
// Arguments are given once with NewArgs() and then Parse() is called for each
// level of mode. Sub-modes are added with AddSubModes() before the call to
// Parse(), the first being the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		count := md.AddInt("count", 64, "number of instructions")
//		...
//	}
//
// Sub-mode names are case insensitive. The selected mode is removed from the
// remaining arguments but an argument that doesn't match any sub-mode is left
// in place and the default sub-mode is selected.
//
// As well as the usual flag types, AddAddress() accepts chip RAM addresses in
// hexadecimal with a "$" prefix and AddChoice() restricts a string to a fixed
// list of values.
package modalflag
