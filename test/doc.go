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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. The documentation for those functions describe
// the currently supported types.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This may not be how we want to interpret nil in all situations but because
// of how errors usually works (nil to indicate no error) we *need* to
// interpret nil in this way.
//
// ExpectEquality and ExpectInequality compare values of any comparable type.
// The Demand* functions are the same as the Expect* functions except that
// they end the test immediately on failure.
//
// ExpectPanic runs a function and checks that it panics. The emulation panics
// when it detects an internal inconsistency (an event scheduled in the past
// for example) and the tests use ExpectPanic to make sure that it does.
//
// All functions accept optional tags which are printed as part of the failure
// message. This is useful when a test is run in a loop and the failing
// iteration needs to be identified.
//
// The Writer type captures output. NewCappedWriter() and NewRingWriter()
// return Writers with a fixed limit.
package test
