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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that overrides the base
// configuration directory.
const EnvConfig = "OCS_CONFIG"

// ResourcePath returns the path of file in the subPth directory of the base
// configuration directory. The file can be empty, in which case the path of
// the directory is returned. The directory is created if it doesn't exist.
func ResourcePath(subPth string, file string) (string, error) {
	base := os.Getenv(EnvConfig)
	if base == "" {
		var err error
		base, err = baseDir()
		if err != nil {
			return "", fmt.Errorf("paths: %w", err)
		}
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, file), nil
}
