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

// Package statsview serves live charts of the Go runtime, such as heap size,
// goroutine count and GC pauses, while the emulation runs. It is useful for
// watching the allocation behaviour of the chipset over many frames.
//
// The server is only available when the statsview build tag is present:
//
//	go build -tags statsview
//
// Without the tag Launch() returns an error and Available() returns false.
// The charts are served by "github.com/go-echarts/statsview" at:
//
//	localhost:12600/debug/statsview
package statsview
