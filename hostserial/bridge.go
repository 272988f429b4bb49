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

package hostserial

import (
	"errors"
	"io"
	"sync"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/logger"
)

// Injector is the part of the serial port that receives bytes from the host.
type Injector interface {
	Inject(data []uint8)
	Injecting() int
}

// size of the channels between the host and the emulation
const queueLen = 1024

// the largest number of bytes waiting in the serial port before Pump() stops
// injecting more
const maxInjecting = 16

// Bridge passes bytes between the emulated serial port and the host.
type Bridge struct {
	host io.ReadWriteCloser

	in   chan uint8
	out  chan uint8
	done chan struct{}

	// closed when the writer goroutine has finished
	flushed chan struct{}

	// closed when the host can no longer be read
	hungup chan struct{}

	wg        sync.WaitGroup
	closeOnce sync.Once

	crit   sync.Mutex
	err    error
	closed bool
}

// NewBridge starts the goroutines that read from and write to the host.
func NewBridge(host io.ReadWriteCloser) *Bridge {
	b := &Bridge{
		host: host,
		in:   make(chan uint8, queueLen),
		out:  make(chan uint8, queueLen),
		done: make(chan struct{}),

		flushed: make(chan struct{}),
		hungup:  make(chan struct{}),
	}

	b.wg.Add(1)
	go b.reader()
	go b.writer()

	return b
}

func (b *Bridge) setErr(err error) {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return
	}
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.err == nil {
		b.err = err
	}
}

func (b *Bridge) reader() {
	defer b.wg.Done()
	defer close(b.hungup)
	defer close(b.in)

	buf := make([]byte, 64)
	for {
		n, err := b.host.Read(buf)
		for _, c := range buf[:n] {
			select {
			case b.in <- c:
			case <-b.done:
				return
			}
		}
		if err != nil {
			b.setErr(err)
			return
		}
	}
}

func (b *Bridge) writer() {
	defer close(b.flushed)
	for c := range b.out {
		if _, err := b.host.Write([]byte{c}); err != nil {
			b.setErr(err)
			return
		}
	}
}

// TXD implements the uart.Listener interface.
func (b *Bridge) TXD(_ bool) {
}

// Sent implements the uart.Listener interface. The data bits of the word are
// queued for writing to the host. The byte is dropped if the queue is full
// or if the bridge has been closed.
func (b *Bridge) Sent(word uint16) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.closed {
		return
	}
	select {
	case b.out <- uint8(word):
	default:
		logger.Log(logger.Allow, "hostserial", "output queue full")
	}
}

// Pump moves bytes read from the host into the serial port. It should be
// called regularly from the emulation goroutine. The number of bytes moved is
// returned.
func (b *Bridge) Pump(port Injector) int {
	if port.Injecting() >= maxInjecting {
		return 0
	}

	var data []uint8
	for len(data)+port.Injecting() < maxInjecting {
		select {
		case c, ok := <-b.in:
			if !ok {
				if len(data) > 0 {
					port.Inject(data)
				}
				return len(data)
			}
			data = append(data, c)
		default:
			if len(data) > 0 {
				port.Inject(data)
			}
			return len(data)
		}
	}

	port.Inject(data)
	return len(data)
}

// Hungup returns a channel that is closed when the host can no longer be
// read. For example, when the console's escape key has been pressed.
func (b *Bridge) Hungup() <-chan struct{} {
	return b.hungup
}

// Err returns the first error encountered while reading from or writing to
// the host.
func (b *Bridge) Err() error {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.err != nil {
		return curated.Errorf("hostserial: %v", b.err)
	}
	return nil
}

// Close the connection to the host. Bytes waiting to be written are written
// before the host is closed.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.crit.Lock()
		b.closed = true
		close(b.out)
		b.crit.Unlock()

		<-b.flushed
		close(b.done)
		err = b.host.Close()
		b.wg.Wait()
	})
	if err != nil {
		return curated.Errorf("hostserial: %v", err)
	}
	return b.Err()
}
