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
	"flag"
	"io"
	"os"
	"strings"
)

// Modes handles command line arguments for a program with more than one mode
// of operation. Each mode has its own set of flags.
type Modes struct {
	// help messages are written to Output. if it is nil then os.Stdout is
	// used
	Output io.Writer

	flags *flag.FlagSet
	set   map[string]bool

	args    []string
	argsIdx int

	// the sub-modes for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// every mode selected so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

func (md *Modes) output() io.Writer {
	if md.Output == nil {
		return os.Stdout
	}
	return md.Output
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs resets the argument list. It also starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// sub-modes added before the call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.set = nil
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the list of flags when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode ever added is the default. Sub-modes are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the arguments were parsed without error. If
	// sub-modes were added then Mode() returns the selected sub-mode.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been printed.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned alongside.
	ParseError
)

// Parse the arguments for the current mode. If sub-modes have been added then
// the first argument after the flags selects between them. An argument that
// isn't a sub-mode selects the default sub-mode and stays in the list of
// remaining arguments.
//
// Help is printed to the Output writer when the -help flag is seen.
func (md *Modes) Parse() (ParseResult, error) {
	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args[md.argsIdx:])

	md.set = make(map[string]bool)
	md.flags.Visit(func(f *flag.Flag) {
		md.set[f.Name] = true
	})

	if err == flag.ErrHelp {
		md.help(usage.String())
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// flags not recognised at this level may belong to the default mode
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, s := range md.subModes {
			if s == arg {
				mode = s
				md.argsIdx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor the selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). The empty string
// is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// IsSet returns true if the named flag was given in the most recent call to
// Parse().
func (md *Modes) IsSet(name string) bool {
	return md.set[name]
}
