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

package test

import (
	"fmt"
	"strings"
	"sync"
)

// Writer collects everything written to it. The zero value grows without
// limit. Writers created with NewCappedWriter() or NewRingWriter() hold at
// most the number of bytes they were created with.
//
// Writer is safe to use from more than one goroutine, which makes it suitable
// as the output side of a fake serial connection.
type Writer struct {
	crit sync.Mutex
	buf  []byte

	limit int
	ring  bool
}

// NewCappedWriter returns a Writer that discards anything written once the
// limit has been reached.
func NewCappedWriter(limit int) (*Writer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit for capped writer (%d)", limit)
	}
	return &Writer{limit: limit, buf: make([]byte, 0, limit)}, nil
}

// NewRingWriter returns a Writer that keeps only the most recent bytes.
func NewRingWriter(limit int) (*Writer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit for ring writer (%d)", limit)
	}
	return &Writer{limit: limit, ring: true, buf: make([]byte, 0, limit)}, nil
}

// Write implements the io.Writer interface. A capped writer reports a short
// write once it is full but never returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()

	if w.limit == 0 {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}

	if w.ring {
		w.buf = append(w.buf, p...)
		if over := len(w.buf) - w.limit; over > 0 {
			w.buf = append(w.buf[:0], w.buf[over:]...)
		}
		return len(p), nil
	}

	n := min(len(p), w.limit-len(w.buf))
	w.buf = append(w.buf, p[:n]...)
	return n, nil
}

// Clear forgets everything written so far.
func (w *Writer) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buf = w.buf[:0]
}

// Compare returns true if the collected output is exactly s.
func (w *Writer) Compare(s string) bool {
	return w.String() == s
}

// Lines splits the collected output into lines. A trailing newline does not
// produce an empty final line.
func (w *Writer) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *Writer) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return string(w.buf)
}
