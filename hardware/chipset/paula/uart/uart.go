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
	"fmt"

	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset/paula"
	"github.com/jetsetilly/ocs/hardware/chipset/scheduler"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// Interrupts is the interface to the interrupt controller.
type Interrupts interface {
	RaiseIrq(src paula.Source)
	Pending(src paula.Source) bool
	ADKCON() uint16
}

// SERDATR bits.
const (
	OVRUN = 1 << 15
	RBF   = 1 << 14
	TBE   = 1 << 13
	TSRE  = 1 << 12
	RXD   = 1 << 11
)

// SERPER bits.
const LONG = 1 << 15

const bitEvent scheduler.EventID = 1

// UART is the serial transmitter and receiver.
type UART struct {
	env *environment.Environment
	sch *scheduler.Scheduler
	irq Interrupts

	Port *SerialPort

	serper uint16

	transmitBuffer uint16
	transmitShift  uint16

	// the word currently being transmitted
	sending uint16

	// the bit being driven by the transmitter. the value of the TXD line
	// also depends on UARTBRK
	out bool

	receiveBuffer uint16
	receiveShift  uint16
	recCnt        int
	overrun       bool
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(env *environment.Environment, sch *scheduler.Scheduler, irq Interrupts) *UART {
	u := &UART{
		env: env,
		sch: sch,
		irq: irq,
	}
	u.Port = newSerialPort(u)
	sch.Register(scheduler.TXD, u, "BIT")
	sch.Register(scheduler.RXD, u, "BIT")
	sch.Register(scheduler.SER, u.Port, "INJECT")
	u.Reset()
	return u
}

// Reset the UART to its power-on state.
func (u *UART) Reset() {
	u.serper = 0
	u.transmitBuffer = 0
	u.transmitShift = 0
	u.sending = 0
	u.out = true
	u.receiveBuffer = 0
	u.receiveShift = 0
	u.recCnt = 0
	u.overrun = false
	u.sch.Cancel(scheduler.TXD)
	u.sch.Cancel(scheduler.RXD)
	u.Port.reset()
}

func (u *UART) String() string {
	return fmt.Sprintf("SERPER=%04x SERDATR=%04x", u.serper, u.PeekSERDATR())
}

// PulseWidth returns the length of a bit in DMA cycles.
func (u *UART) PulseWidth() int64 {
	return int64(u.serper&0x7fff) + 1
}

func (u *UART) pulse() clocks.Cycle {
	return clocks.DMACycles(u.PulseWidth())
}

// PacketLength returns the number of data bits in a packet.
func (u *UART) PacketLength() int {
	if u.serper&LONG == LONG {
		return 9
	}
	return 8
}

// PokeSERPER sets the bit period and the packet length.
func (u *UART) PokeSERPER(v uint16) {
	u.serper = v
}

// PokeSERDAT writes a word to the transmit buffer. Transmission begins
// immediately if the shift register is empty.
func (u *UART) PokeSERDAT(v uint16) {
	u.transmitBuffer = v & 0x3ff

	if u.transmitShift == 0 && !u.sch.HasEvent(scheduler.TXD) {
		u.copyToTransmitShiftRegister()
	}
}

// PeekSERDATR returns the value of the SERDATR register.
func (u *UART) PeekSERDATR() uint16 {
	v := u.receiveBuffer & 0x3ff
	if u.overrun {
		v |= OVRUN
	}
	if u.irq.Pending(paula.RBF) {
		v |= RBF
	}
	if u.transmitBuffer == 0 {
		v |= TBE
	}
	if u.transmitShift == 0 && !u.sch.HasEvent(scheduler.TXD) {
		v |= TSRE
	}
	if u.Port.RXD() {
		v |= RXD
	}
	return v
}

// ClearOverrun is called when the RBF bit in INTREQ is cleared.
func (u *UART) ClearOverrun() {
	u.overrun = false
}

// UpdateTXD should be called whenever ADKCON changes. Setting the UARTBRK
// bit forces the TXD line low.
func (u *UART) UpdateTXD() {
	u.Port.setTXD(u.out && u.irq.ADKCON()&paula.UARTBRK != paula.UARTBRK)
}

func (u *UART) drive(bit bool) {
	u.out = bit
	u.UpdateTXD()
}

func (u *UART) copyToTransmitShiftRegister() {
	u.transmitShift = u.transmitBuffer
	u.sending = u.transmitBuffer
	u.transmitBuffer = 0

	// the buffer is empty again
	u.irq.RaiseIrq(paula.TBE)

	// start bit
	u.drive(false)
	u.sch.ScheduleRel(scheduler.TXD, u.pulse(), bitEvent)
}

func (u *UART) serviceTXD() {
	if u.transmitShift == 0 {
		// the previous word has been sent completely, including the stop bits
		u.Port.sent(u.sending)

		if u.transmitBuffer != 0 {
			u.copyToTransmitShiftRegister()
			return
		}

		u.drive(true)
		return
	}

	u.drive(u.transmitShift&0x01 == 0x01)
	u.transmitShift >>= 1
	u.sch.ScheduleRel(scheduler.TXD, u.pulse(), bitEvent)
}

// rxdChanged is called by the serial port whenever the RXD line changes.
func (u *UART) rxdChanged(level bool) {
	// a falling edge starts a new reception if one is not in progress. the
	// start bit is counted and the first data bit is sampled half way
	// through its period
	if !level && !u.sch.HasEvent(scheduler.RXD) {
		u.receiveShift = 0
		u.recCnt = 1
		u.sch.ScheduleRel(scheduler.RXD, clocks.DMACycles(u.PulseWidth()*3/2), bitEvent)
	}
}

func (u *UART) serviceRXD() {
	bit := u.Port.RXD()
	if bit {
		u.receiveShift |= 1 << (u.recCnt - 1)
	}
	u.recCnt++

	if u.recCnt >= u.PacketLength()+2 {
		u.copyFromReceiveShiftRegister()

		// a low stop bit is the start of another packet
		if !bit {
			u.receiveShift = 0
			u.recCnt = 1
			u.sch.ScheduleRel(scheduler.RXD, u.pulse(), bitEvent)
		}
		return
	}

	u.sch.ScheduleRel(scheduler.RXD, u.pulse(), bitEvent)
}

func (u *UART) copyFromReceiveShiftRegister() {
	if u.irq.Pending(paula.RBF) {
		u.overrun = true
		logger.Logf(u.env, "uart", "receive overrun (%04x)", u.receiveShift)
	}
	u.receiveBuffer = u.receiveShift
	u.irq.RaiseIrq(paula.RBF)
}

// ServiceEvent implements the scheduler.Handler interface.
func (u *UART) ServiceEvent(slot scheduler.Slot, id scheduler.EventID, _ int64) {
	if id != bitEvent {
		scheduler.UnknownEvent(slot, id)
	}

	switch slot {
	case scheduler.TXD:
		u.serviceTXD()
	case scheduler.RXD:
		u.serviceRXD()
	default:
		scheduler.UnknownEvent(slot, id)
	}
}

// Info is a summary of the UART suitable for inspection.
type Info struct {
	SERPER         uint16
	SERDATR        uint16
	TransmitBuffer uint16
	TransmitShift  uint16
	ReceiveBuffer  uint16
	ReceiveShift   uint16
	Overrun        bool
	TXD            bool
	RXD            bool
}

func (inf Info) String() string {
	return fmt.Sprintf("SERPER=%04x SERDATR=%04x txd=%v rxd=%v", inf.SERPER, inf.SERDATR, inf.TXD, inf.RXD)
}

// Info returns a summary of the UART.
func (u *UART) Info() Info {
	return Info{
		SERPER:         u.serper,
		SERDATR:        u.PeekSERDATR(),
		TransmitBuffer: u.transmitBuffer,
		TransmitShift:  u.transmitShift,
		ReceiveBuffer:  u.receiveBuffer,
		ReceiveShift:   u.receiveShift,
		Overrun:        u.overrun,
		TXD:            u.Port.TXD(),
		RXD:            u.Port.RXD(),
	}
}
