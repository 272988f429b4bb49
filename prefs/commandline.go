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
	"slices"
	"strings"
	"sync"
)

// group is one set of preferences given on the command line. entries are
// removed as they are claimed by a preference value during loading.
type group map[string]string

// the command line preferences are a stack so that a nested emulation can
// have its own set without disturbing the outer one.
var cmdline struct {
	crit  sync.Mutex
	stack []group
}

// parseGroup splits a string of the form "key::value; key::value" into a
// group. badly formed entries are ignored.
func parseGroup(s string) group {
	g := make(group)
	for entry := range strings.SplitSeq(s, ";") {
		k, v, ok := strings.Cut(entry, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		g[k] = strings.TrimSpace(v)
	}
	return g
}

// String returns the group in the same form it was parsed from, with the keys
// sorted.
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s::%s", k, g[k])
	}
	return strings.Join(s, "; ")
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
func PushCommandLineStack(prefs string) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	cmdline.stack = append(cmdline.stack, parseGroup(prefs))
}

// PopCommandLineStack forgets the most recent group. The entries that were
// never claimed by a preference are returned so that the caller can report
// them.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	n := len(cmdline.stack)
	if n == 0 {
		return ""
	}
	top := cmdline.stack[n-1]
	cmdline.stack = cmdline.stack[:n-1]
	return top.String()
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// GetCommandLinePref claims the value for key from the most recent group.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	n := len(cmdline.stack)
	if n == 0 {
		return false, nil
	}
	top := cmdline.stack[n-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)
	return true, v
}
