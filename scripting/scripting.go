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

package scripting

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset"
	"github.com/jetsetilly/ocs/hardware/chipset/copper"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern of errors raised while a script runs.
const ScriptError = "script: %v"

// base address of the custom chip registers
const customBase = 0xdff000

// Script is a Lua interpreter bound to a chipset.
type Script struct {
	env *environment.Environment
	cs  *chipset.Chipset
	L   *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(env *environment.Environment, cs *chipset.Chipset) *Script {
	s := &Script{
		env: env,
		cs:  cs,
		L:   lua.NewState(),
	}

	funcs := map[string]lua.LGFunction{
		"poke":    s.poke,
		"peek":    s.peek,
		"write":   s.write,
		"read":    s.read,
		"advance": s.advance,
		"vsync":   s.vsync,
		"beam":    s.beam,
		"copper":  s.copper,
		"disasm":  s.disasm,
		"random":  s.random,
		"log":     s.log,
	}
	for n, f := range funcs {
		s.L.SetGlobal(n, s.L.NewFunction(f))
	}

	return s
}

// Close the interpreter.
func (s *Script) Close() {
	s.L.Close()
}

// RunFile runs the script in the named file.
func (s *Script) RunFile(filename string) error {
	if err := s.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the script source.
func (s *Script) RunString(source string) error {
	if err := s.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// register returns the address of the register named or numbered by the
// argument at position n.
func (s *Script) register(n int) uint32 {
	v := s.L.CheckAny(n)
	switch v.Type() {
	case lua.LTString:
		r, ok := registers.Lookup(strings.ToUpper(v.String()))
		if !ok {
			s.L.ArgError(n, fmt.Sprintf("unknown register %s", v.String()))
		}
		return customBase | uint32(r)
	case lua.LTNumber:
		return customBase | uint32(lua.LVAsNumber(v))&0x1fe
	}
	s.L.TypeError(n, lua.LTString)
	return 0
}

// address returns the chip RAM address at position n.
func (s *Script) address(n int) uint32 {
	addr := uint32(s.L.CheckInt64(n))
	if addr&0x01 == 0x01 {
		s.L.ArgError(n, "address must be even")
	}
	if int(addr) >= s.cs.Mem.Size() {
		s.L.ArgError(n, fmt.Sprintf("address out of range (%#x)", addr))
	}
	return addr
}

func (s *Script) poke(L *lua.LState) int {
	reg := s.register(1)
	v := uint16(L.CheckInt64(2))
	s.cs.PokeCustom16(reg, v)
	return 0
}

func (s *Script) peek(L *lua.LState) int {
	reg := s.register(1)
	L.Push(lua.LNumber(s.cs.PeekCustom16(reg)))
	return 1
}

func (s *Script) write(L *lua.LState) int {
	addr := s.address(1)
	s.cs.Mem.Poke16(addr, uint16(L.CheckInt64(2)))
	return 0
}

func (s *Script) read(L *lua.LState) int {
	addr := s.address(1)
	L.Push(lua.LNumber(s.cs.Mem.Peek16(addr)))
	return 1
}

func (s *Script) advance(L *lua.LState) int {
	n := L.CheckInt64(1)
	if n < 0 {
		L.ArgError(1, "cannot advance backwards")
	}
	s.cs.Step(clocks.DMACycles(n))
	L.Push(lua.LNumber(clocks.AsDMACycles(s.cs.Sch.Clock())))
	return 1
}

func (s *Script) vsync(L *lua.LState) int {
	if err := s.cs.RunFrames(L.OptInt(1, 1)); err != nil {
		L.RaiseError("vsync: %v", err)
	}
	L.Push(lua.LNumber(s.cs.Agnus.Frame()))
	return 1
}

func (s *Script) beam(L *lua.LState) int {
	v, h := s.cs.Agnus.Beam()
	L.Push(lua.LNumber(v))
	L.Push(lua.LNumber(h))
	return 2
}

// random(n) returns a number between 0 and n-1. The number depends on the
// master clock so a script run twice produces the same numbers.
func (s *Script) random(L *lua.LState) int {
	n := L.CheckInt(1)
	if n <= 0 {
		L.ArgError(1, "must be positive")
		return 0
	}
	L.Push(lua.LNumber(s.env.Random.Rewindable(n)))
	return 1
}

// copper(addr, list) writes the words in the list to consecutive chip RAM
// addresses. The address after the last word is returned.
func (s *Script) copper(L *lua.LState) int {
	addr := s.address(1)
	list := L.CheckTable(2)

	start := addr
	for i := 1; i <= list.Len(); i++ {
		w, ok := list.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(2, fmt.Sprintf("entry %d is not a number", i))
		}
		if int(addr) >= s.cs.Mem.Size() {
			L.ArgError(2, "list does not fit in chip RAM")
		}
		s.cs.Mem.Poke16(addr, uint16(w))
		addr += 2
	}

	s.cs.PokeCustom16(customBase|uint32(registers.COP1LCH), uint16(start>>16))
	s.cs.PokeCustom16(customBase|uint32(registers.COP1LCL), uint16(start))

	L.Push(lua.LNumber(addr))
	return 1
}

func (s *Script) disasm(L *lua.LState) int {
	addr := s.address(1)
	n := L.OptInt(2, 1)

	t := L.NewTable()
	for _, ins := range copper.Disassemble(s.cs.Mem, addr, n) {
		t.Append(lua.LString(ins.String()))
	}
	L.Push(t)
	return 1
}

func (s *Script) log(L *lua.LState) int {
	var b strings.Builder
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			b.WriteRune(' ')
		}
		b.WriteString(L.Get(i).String())
	}
	logger.Log(s.env, "script", b.String())
	return 0
}
