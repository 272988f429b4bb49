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
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/ocs/curated"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EscapeKey ends a console session. It is never passed to the emulation.
const EscapeKey = 0x1d

// how long to wait before polling stdin again when there is no input
const pollInterval = 5 * time.Millisecond

// Console connects to the terminal on stdin and stdout. The terminal is put
// into raw mode until Close() is called. Ctrl-C is passed to the emulation
// like any other key so the session is ended with the EscapeKey (Ctrl-]).
type Console struct {
	in  *os.File
	out *os.File

	state *term.State

	stop      chan struct{}
	closeOnce sync.Once
}

// OpenConsole puts the terminal into raw mode. Stdin must be a terminal.
func OpenConsole() (*Console, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, curated.Errorf("hostserial: stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, curated.Errorf("hostserial: %v", err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, state)
		return nil, curated.Errorf("hostserial: %v", err)
	}

	return &Console{
		in:    os.Stdin,
		out:   os.Stdout,
		state: state,
		stop:  make(chan struct{}),
	}, nil
}

// Read implements the io.Reader interface. It blocks until there is input or
// until the console is closed.
func (c *Console) Read(p []byte) (int, error) {
	for {
		select {
		case <-c.stop:
			return 0, io.EOF
		default:
		}

		n, err := unix.Read(int(c.in.Fd()), p)
		if n > 0 {
			if i := bytes.IndexByte(p[:n], EscapeKey); i >= 0 {
				return i, io.EOF
			}
			return n, nil
		}
		if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EWOULDBLOCK) {
			return 0, err
		}

		select {
		case <-c.stop:
			return 0, io.EOF
		case <-time.After(pollInterval):
		}
	}
}

// Write implements the io.Writer interface. Output processing is disabled in
// raw mode so line feeds are expanded here.
func (c *Console) Write(p []byte) (int, error) {
	q := bytes.ReplaceAll(p, []byte{'\n'}, []byte{'\r', '\n'})
	if _, err := c.out.Write(q); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close restores the terminal.
func (c *Console) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.stop)
		fd := int(c.in.Fd())
		_ = unix.SetNonblock(fd, false)
		err = term.Restore(fd, c.state)
	})
	if err != nil {
		return curated.Errorf("hostserial: %v", err)
	}
	return nil
}
