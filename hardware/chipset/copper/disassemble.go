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

package copper

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/hardware/chipset/registers"
)

// Memory is the chip RAM from which copper instructions are read.
type Memory interface {
	Peek16(addr uint32) uint16
}

// Instruction is a disassembled copper instruction.
type Instruction struct {
	Address uint32
	Word1   uint16
	Word2   uint16
}

// IsMove returns true if the instruction is a MOVE.
func (ins Instruction) IsMove() bool {
	return ins.Word1&0x01 == 0x00
}

// IsWait returns true if the instruction is a WAIT.
func (ins Instruction) IsWait() bool {
	return ins.Word1&0x01 == 0x01 && ins.Word2&0x01 == 0x00
}

// IsSkip returns true if the instruction is a SKIP.
func (ins Instruction) IsSkip() bool {
	return ins.Word1&0x01 == 0x01 && ins.Word2&0x01 == 0x01
}

// IsEnd returns true if the instruction is the conventional end of a copper
// list. A WAIT for a position that can never be reached.
func (ins Instruction) IsEnd() bool {
	return ins.Word1 == 0xffff && ins.Word2 == 0xfffe
}

// Register returns the destination of a MOVE instruction.
func (ins Instruction) Register() registers.Register {
	return registers.Register(ins.Word1 & 0x1fe)
}

func (ins Instruction) String() string {
	if ins.IsMove() {
		return fmt.Sprintf("MOVE $%04X, %s", ins.Word2, ins.Register())
	}

	s := strings.Builder{}
	if ins.IsWait() {
		s.WriteString("WAIT")
	} else {
		s.WriteString("SKIP")
	}

	// blitter finished disable
	if ins.Word2&0x8000 == 0x0000 {
		s.WriteString("b")
	}

	vp := ins.Word1 >> 8
	hp := ins.Word1 & 0xfe
	s.WriteString(fmt.Sprintf(" ($%02X,$%02X)", vp, hp))

	vm := (ins.Word2 >> 8) & 0x7f
	hm := ins.Word2 & 0xfe
	if vm != 0x7f || hm != 0xfe {
		s.WriteString(fmt.Sprintf(", ($%02X,$%02X)", vm, hm))
	}

	return s.String()
}

// Decode the instruction at the address.
func Decode(mem Memory, addr uint32) Instruction {
	return Instruction{
		Address: addr,
		Word1:   mem.Peek16(addr),
		Word2:   mem.Peek16(addr + 2),
	}
}

// Disassemble count instructions starting at the address. Disassembly stops
// early at the end of the list.
func Disassemble(mem Memory, addr uint32, count int) []Instruction {
	l := make([]Instruction, 0, count)
	for range count {
		ins := Decode(mem, addr)
		l = append(l, ins)
		if ins.IsEnd() {
			break
		}
		addr += 4
	}
	return l
}
