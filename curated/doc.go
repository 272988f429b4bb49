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

// Package curated is an error type for errors that are expected to be seen by
// the user. A curated error carries its format pattern so that callers can
// test which error they have without comparing strings:
//
//	const ImageError = "image: %v"
//
//	err := curated.Errorf(ImageError, err)
//	if curated.Is(err, ImageError) {
//		...
//	}
//
// Is() checks only the outermost error. Has() searches the whole chain of
// curated errors. IsAny() is true for any curated error, which is useful for
// deciding whether an error is suitable for display or whether it indicates a
// programming fault.
//
// Errors built from other errors by nesting in this way can produce messages
// like "image: image: file not found". The Error() function removes adjacent
// duplicate parts so that the message becomes "image: file not found".
//
// The first error among the values of a curated error is returned by
// Unwrap(), so curated errors work with errors.Is() and errors.As() from the
// standard library.
package curated
