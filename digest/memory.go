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

package digest

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/jetsetilly/ocs/curated"
)

// Memory computes a digest of the contents of chip RAM.
type Memory struct {
	src    io.WriterTo
	digest [sha1.Size]byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(src io.WriterTo) *Memory {
	return &Memory{src: src}
}

// Hash implements the Digest interface.
func (dig *Memory) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Memory) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the current contents of memory. Update should be
// called at the same point in every frame.
func (dig *Memory) Update() error {
	h := sha1.New()
	h.Write(dig.digest[:])
	if _, err := dig.src.WriteTo(h); err != nil {
		return curated.Errorf("digest: %v", err)
	}
	copy(dig.digest[:], h.Sum(nil))
	return nil
}
