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

// Package hostserial connects the emulated serial port to the host. The host
// side can be the console, in raw mode, or a serial device.
//
// The Bridge type implements the uart.Listener interface. Bytes transmitted
// by the UART are written to the host and bytes read from the host are
// injected onto the RXD line when Pump() is called.
package hostserial
