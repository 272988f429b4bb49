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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/ocs/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is the error pattern returned by Load() when the prefs file
// does not exist.
const NoPrefsFile = "prefs: file does not exist (%s)"

// separator between key and value in a prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%v\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The key
// value must be unique for the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their defaults.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that are not
// known to this Disk instance are preserved unless they are defunct.
func (dsk *Disk) Save() error {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err == nil {
		err = parse(f, func(k, v string) error {
			if !isDefunct(k) {
				data[k] = v
			}
			return nil
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack
// override values on disk.
//
// If saveOnFail is true and the prefs file does not exist then the file is
// created with the current values.
func (dsk *Disk) Load(saveOnFail bool) error {
	defer dsk.commandLine()

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			if saveOnFail {
				return dsk.Save()
			}
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	err = parse(f, func(k, v string) error {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// apply any values in the top group of the command line stack.
func (dsk *Disk) commandLine() {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			_ = p.Set(v)
		}
	}
}

// parse prefs file, calling f for every key/value pair. the boilerplate line
// is required.
func parse(r io.Reader, f func(k, v string) error) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("not a valid prefs file")
	}

	for scanner.Scan() {
		l := scanner.Text()
		if strings.TrimSpace(l) == "" {
			continue
		}
		k, v, ok := strings.Cut(l, keySep)
		if !ok {
			continue
		}
		if err := f(k, v); err != nil {
			return err
		}
	}

	return scanner.Err()
}
