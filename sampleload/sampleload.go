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

package sampleload

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "sampleload: unsupported format (%s)"
	DecodeError       = "sampleload: %s: %v"
)

const logTag = "sampleload"

// Sample is a mono recording. Values are in the range -1.0 to 1.0.
type Sample struct {
	Rate float64
	Data []float32
}

// Duration returns the length of the sample in seconds.
func (s Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / s.Rate
}

// Load decodes the named file. The format is decided by the file extension.
func Load(perm logger.Permission, filename string) (Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Sample{}, curated.Errorf("sampleload: %v", err)
	}
	defer f.Close()

	var s Sample

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		s, err = DecodeWAV(f)
	case ".mp3":
		s, err = DecodeMP3(f)
	default:
		return Sample{}, curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return Sample{}, err
	}

	logger.Logf(perm, logTag, "%s: %d samples at %.0fHz (%.02fs)", filepath.Base(filename), len(s.Data), s.Rate, s.Duration())

	return s, nil
}

// DecodeWAV decodes PCM data from a WAV file.
func DecodeWAV(r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return Sample{}, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, "wav", err)
	}

	return Sample{
		Rate: float64(dec.SampleRate),
		Data: mixdown(buf),
	}, nil
}

// mixdown converts the interleaved integer buffer to a single channel of
// floating point values
func mixdown(buf *audio.IntBuffer) []float32 {
	chans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		chans = buf.Format.NumChannels
	}
	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = 16
	}
	scale := float32(int64(1) << (depth - 1))

	data := make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i+chans <= len(buf.Data); i += chans {
		var v int
		for c := 0; c < chans; c++ {
			v += buf.Data[i+c]
		}
		data = append(data, float32(v)/float32(chans)/scale)
	}
	return data
}

// DecodeMP3 decodes an MP3 stream. The decoder always produces 16-bit stereo
// data.
func DecodeMP3(r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, "mp3", err)
	}

	var data []float32
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+4 <= n; i += 4 {
			l := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			r := int16(uint16(chunk[i+2]) | uint16(chunk[i+3])<<8)
			data = append(data, (float32(l)+float32(r))/2/32768)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return Sample{}, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	return Sample{
		Rate: float64(dec.SampleRate()),
		Data: data,
	}, nil
}

// Period returns the value of AUDxPER that plays samples at the rate. The
// value is clamped to the range accepted by the hardware.
func Period(ntsc bool, rate float64) uint16 {
	if rate <= 0 {
		return 0xffff
	}
	per := math.Round(clocks.Frequency(ntsc) / clocks.MasterPerDMA / rate)
	return uint16(max(minPeriod, min(0xffff, per)))
}

// minimum period that the hardware can play
const minPeriod = 124

// MaxRate returns the highest sample rate that a channel can play.
func MaxRate(ntsc bool) float64 {
	return clocks.Frequency(ntsc) / clocks.MasterPerDMA / minPeriod
}

// Fit resamples the sample if its rate is too high for a channel to play.
func Fit(ntsc bool, s Sample) Sample {
	if m := MaxRate(ntsc); s.Rate > m {
		return Resample(s, m)
	}
	return s
}

// Resample the sample to a new rate using linear interpolation.
func Resample(s Sample, rate float64) Sample {
	if rate <= 0 || s.Rate <= 0 || len(s.Data) == 0 || rate == s.Rate {
		return Sample{Rate: rate, Data: append([]float32(nil), s.Data...)}
	}

	ratio := s.Rate / rate
	n := int(float64(len(s.Data)) / ratio)
	out := make([]float32, n)
	for i := range out {
		p := float64(i) * ratio
		j := int(p)
		frac := float32(p - float64(j))
		a := s.Data[j]
		b := a
		if j+1 < len(s.Data) {
			b = s.Data[j+1]
		}
		out[i] = a + (b-a)*frac
	}

	return Sample{Rate: rate, Data: out}
}
