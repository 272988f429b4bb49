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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/ocs/curated"
)

// Sizes of chip RAM supported by the OCS and ECS revisions of Agnus.
const (
	Size256K = 0x040000
	Size512K = 0x080000
	Size1M   = 0x100000
)

// DefaultSize is the amount of chip RAM fitted to a stock machine.
const DefaultSize = Size512K

// ChipRAM is the memory accessible by the custom chips.
type ChipRAM struct {
	data []uint8
	mask uint32
}

// NewChipRAM is the preferred method of initialisation for the ChipRAM
// type. The size must be a power of two.
func NewChipRAM(size int) (*ChipRAM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, curated.Errorf("chip ram: size must be a power of two (%d)", size)
	}
	return &ChipRAM{
		data: make([]uint8, size),
		mask: uint32(size - 1),
	}, nil
}

// Size returns the number of bytes of chip RAM.
func (mem *ChipRAM) Size() int {
	return len(mem.data)
}

// Clear sets all chip RAM to zero.
func (mem *ChipRAM) Clear() {
	clear(mem.data)
}

// Peek8 returns the byte at the address.
func (mem *ChipRAM) Peek8(addr uint32) uint8 {
	return mem.data[addr&mem.mask]
}

// Poke8 writes a byte to the address.
func (mem *ChipRAM) Poke8(addr uint32, value uint8) {
	mem.data[addr&mem.mask] = value
}

// Peek16 returns the big-endian word at the address. Odd addresses are
// aligned to the preceding even address.
func (mem *ChipRAM) Peek16(addr uint32) uint16 {
	a := addr & mem.mask &^ 1
	return uint16(mem.data[a])<<8 | uint16(mem.data[a+1])
}

// Poke16 writes a big-endian word to the address. Odd addresses are aligned
// to the preceding even address.
func (mem *ChipRAM) Poke16(addr uint32, value uint16) {
	a := addr & mem.mask &^ 1
	mem.data[a] = uint8(value >> 8)
	mem.data[a+1] = uint8(value)
}

// Load copies the contents of the reader into chip RAM at the address. The
// number of bytes loaded is returned. Data that would extend beyond the end
// of chip RAM is an error.
func (mem *ChipRAM) Load(r io.Reader, addr uint32) (int, error) {
	if int(addr) >= len(mem.data) {
		return 0, curated.Errorf("chip ram: load address out of range ($%06x)", addr)
	}

	n, err := io.ReadFull(r, mem.data[addr:])
	if err == nil {
		// there may be more data in the reader
		var b [1]byte
		if m, _ := r.Read(b[:]); m > 0 {
			return n, curated.Errorf("chip ram: data too large for chip ram")
		}
		return n, nil
	}
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return n, nil
	}
	return n, curated.Errorf("chip ram: %v", err)
}

// WriteTo writes the entire contents of chip RAM to w. It implements the
// io.WriterTo interface.
func (mem *ChipRAM) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(mem.data)
	return int64(n), err
}

// LoadBytes copies the data into chip RAM at the address, wrapping at the
// end of memory.
func (mem *ChipRAM) LoadBytes(data []uint8, addr uint32) {
	for i, v := range data {
		mem.data[(addr+uint32(i))&mem.mask] = v
	}
}

// Dump returns a hex dump of the range of chip RAM. The start address is
// aligned to 16 bytes.
func (mem *ChipRAM) Dump(addr uint32, length int) string {
	addr &^= 0x0f
	s := strings.Builder{}
	s.WriteString("          -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("        ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < length; y += 16 {
		s.WriteString(fmt.Sprintf("%06x | ", (addr+uint32(y))&mem.mask))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.Peek8(addr+uint32(y+x))))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
