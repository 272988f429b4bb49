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

// Package paths prepares the paths of files that ocs keeps between runs, such
// as the preferences file.
//
// ResourcePath() joins a sub-path and filename to the base configuration
// directory, creating the directory if necessary:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// Development builds use ".ocs" in the current working directory. Release
// builds (build tag "release") use "ocs" in the directory returned by
// os.UserConfigDir(), which on Linux gives:
//
//	/home/user/.config/ocs/preferences
//
// In either case the OCS_CONFIG environment variable, if set, replaces the
// base directory.
package paths
