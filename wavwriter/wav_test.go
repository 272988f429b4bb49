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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/test"
	"github.com/jetsetilly/ocs/wavwriter"
	"github.com/youpy/go-wav"
)

func TestNew(t *testing.T) {
	_, err := wavwriter.New("", 44100)
	test.ExpectFailure(t, err)
	_, err = wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)

	aw.Write([]audio.Frame{{L: 0, R: 0}, {L: 1, R: -1}, {L: 2, R: 0.5}})
	test.ExpectEquality(t, aw.Len(), 3)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format.NumChannels, uint16(2))
	test.ExpectEquality(t, format.SampleRate, uint32(22050))
	test.ExpectEquality(t, format.BitsPerSample, uint16(16))

	samples, err := r.ReadSamples(3)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(samples), 3)
	test.ExpectEquality(t, samples[1].Values[0], 32767)
	test.ExpectEquality(t, samples[1].Values[1], -32767)

	// values outside of the range are clamped
	test.ExpectEquality(t, samples[2].Values[0], 32767)
	test.ExpectEquality(t, samples[2].Values[1], 16384)
}

func TestBadPath(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 44100)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.Close())
}
