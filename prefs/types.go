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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// value is the storage shared by the concrete preference types. it is safe to
// read from a goroutine other than the one that sets it.
type value[T bool | int | string] struct {
	v        atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *value[T]) load() T {
	v, _ := p.v.Load().(T)
	return v
}

// the hooks are called even if the value hasn't changed. an error from the pre
// hook prevents the value from being stored.
func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}
	p.v.Store(nv)
	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

func (p *value[T]) String() string {
	return fmt.Sprint(p.load())
}

// Get returns the raw pref value.
func (p *value[T]) Get() Value {
	return p.load()
}

// Reset sets the zero value for the type.
func (p *value[T]) Reset() error {
	var z T
	return p.store(z)
}

// SetHookPre sets a function to be called before a new value is stored. The
// function can veto the new value by returning an error.
func (p *value[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets a function to be called after a new value is stored.
func (p *value[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

// Set new value. New value must be of type bool or string. A string of
// anything other than "true" (case insensitive) is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

// Set new value. New value can be an integer type or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(n)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
}

// Set new value. New value must be of type string.
func (p *String) Set(v Value) error {
	if s, ok := v.(string); ok {
		return p.store(s)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.String", v)
}
