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

package modalflag

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// address is a chip RAM address. Values can be decimal, or hexadecimal with
// either a "0x" or "$" prefix.
type address struct {
	v *uint32
}

func (a address) String() string {
	if a.v == nil {
		return ""
	}
	return fmt.Sprintf("$%06x", *a.v)
}

func (a address) Set(s string) error {
	s = strings.TrimSpace(s)
	if h, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + h
	}
	v, err := strconv.ParseUint(s, 0, 24)
	if err != nil {
		return fmt.Errorf("not a valid address: %s", s)
	}
	*a.v = uint32(v)
	return nil
}

// AddAddress flag for next call to Parse(). Addresses are limited to 24 bits.
func (md *Modes) AddAddress(name string, value uint32, usage string) *uint32 {
	v := new(uint32)
	*v = value
	md.flags.Var(address{v: v}, name, usage)
	return v
}

// choice is a string flag restricted to a list of values. Comparison is case
// insensitive and the stored value is upper case.
type choice struct {
	v       *string
	choices []string
}

func (c choice) String() string {
	if c.v == nil {
		return ""
	}
	return *c.v
}

func (c choice) Set(s string) error {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
	}
	*c.v = s
	return nil
}

// AddChoice flag for next call to Parse(). The default value does not need to
// be one of the choices, which allows the empty string to mean "not given".
func (md *Modes) AddChoice(name string, value string, choices []string, usage string) *string {
	c := choice{v: new(string)}
	*c.v = value
	for _, s := range choices {
		c.choices = append(c.choices, strings.ToUpper(s))
	}
	md.flags.Var(c, name, fmt.Sprintf("%s: %s", usage, strings.Join(c.choices, ", ")))
	return c.v
}
