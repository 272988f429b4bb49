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

package uart

import (
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
)

// Listener implementations are notified of activity on the serial port.
type Listener interface {
	// the TXD line has changed
	TXD(level bool)

	// a complete word has been transmitted. the word includes the stop bits
	Sent(word uint16)
}

const injectEvent scheduler.EventID = 1

// SerialPort is the connection between the UART and the outside world. Lines
// are high when idle.
type SerialPort struct {
	uart *UART

	txd bool
	rxd bool

	listener Listener

	// bytes waiting to be injected onto the RXD line
	inject []uint8

	// the frame currently being injected, least significant bit first, and
	// the number of bits remaining
	frame uint16
	bits  int
}

func newSerialPort(u *UART) *SerialPort {
	return &SerialPort{
		uart: u,
		txd:  true,
		rxd:  true,
	}
}

func (p *SerialPort) reset() {
	p.txd = true
	p.rxd = true
	p.inject = p.inject[:0]
	p.frame = 0
	p.bits = 0
	p.uart.sch.Cancel(scheduler.SER)
}

// SetListener attaches a Listener to the serial port. A nil value removes
// the current listener.
func (p *SerialPort) SetListener(l Listener) {
	p.listener = l
}

// TXD returns the state of the transmit line.
func (p *SerialPort) TXD() bool {
	return p.txd
}

// RXD returns the state of the receive line.
func (p *SerialPort) RXD() bool {
	return p.rxd
}

func (p *SerialPort) setTXD(level bool) {
	if p.txd == level {
		return
	}
	p.txd = level
	if p.listener != nil {
		p.listener.TXD(level)
	}
}

func (p *SerialPort) sent(word uint16) {
	if p.listener != nil {
		p.listener.Sent(word)
	}
}

// SetRXD changes the state of the receive line.
func (p *SerialPort) SetRXD(level bool) {
	if p.rxd == level {
		return
	}
	p.rxd = level
	p.uart.rxdChanged(level)
}

// Inject queues bytes to be shifted onto the RXD line. Each byte is framed
// with a start bit and a single stop bit and is sent at the bit rate of the
// UART.
func (p *SerialPort) Inject(data []uint8) {
	p.inject = append(p.inject, data...)
	if !p.uart.sch.HasEvent(scheduler.SER) {
		p.uart.sch.ScheduleImm(scheduler.SER, injectEvent)
	}
}

// Injecting returns the number of bytes waiting to be injected, including
// the byte currently being injected.
func (p *SerialPort) Injecting() int {
	n := len(p.inject)
	if p.bits > 0 {
		n++
	}
	return n
}

// ServiceEvent implements the scheduler.Handler interface.
func (p *SerialPort) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	if id != injectEvent {
		scheduler.UnknownEvent(slot, id)
	}

	if p.bits == 0 {
		if len(p.inject) == 0 {
			p.SetRXD(true)
			return
		}

		// start bit, data bits and stop bit
		p.frame = uint16(p.inject[0])<<1 | 0x200
		p.bits = 10
		p.inject = p.inject[1:]
	}

	p.SetRXD(p.frame&0x01 == 0x01)
	p.frame >>= 1
	p.bits--

	p.uart.sch.ScheduleRel(scheduler.SER, p.uart.pulse(), injectEvent)
}
