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

// Package uart implements the serial port UART of Paula and the serial port
// lines that it is connected to.
//
// The UART transmits and receives one bit per bit period. The bit period is
// derived from the SERPER register and is measured in DMA cycles. Bits are
// sent and sampled on the TXD and RXD slots of the scheduler.
//
// Data can be sent to the UART with SerialPort.Inject(). Injected bytes are
// framed with a start bit and a stop bit and shifted onto the RXD line at the
// UART's current bit rate, using the SER slot of the scheduler.
package uart
