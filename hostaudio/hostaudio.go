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

package hostaudio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/logger"
)

// oto allows only one context per process
var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ctxRate int
	ctxErr  error
)

func openContext(sampleRate int) (*oto.Context, error) {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
			BufferSize:   50 * time.Millisecond,
		}

		var ready chan struct{}
		ctx, ready, ctxErr = oto.NewContext(op)
		if ctxErr != nil {
			return
		}
		<-ready
		ctxRate = sampleRate
	})

	if ctxErr != nil {
		return nil, curated.Errorf("hostaudio: %v", ctxErr)
	}
	if ctxRate != sampleRate {
		return nil, curated.Errorf("hostaudio: sound device already opened at %dHz", ctxRate)
	}
	return ctx, nil
}

// Player plays a Stream through the host sound device.
type Player struct {
	crit   sync.Mutex
	stream *Stream
	player *oto.Player
}

// NewPlayer opens the sound device at the sample rate. The sample rate
// should be the same as the rate of the muxer.
func NewPlayer(src Source, sampleRate int) (*Player, error) {
	c, err := openContext(sampleRate)
	if err != nil {
		return nil, err
	}

	p := &Player{
		stream: NewStream(src),
	}
	p.player = c.NewPlayer(p.stream)

	return p, nil
}

// Play starts playback. It is safe to call Play() on a playing Player.
func (p *Player) Play() {
	p.crit.Lock()
	defer p.crit.Unlock()
	if p.player != nil && !p.player.IsPlaying() {
		p.player.Play()
	}
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.player == nil {
		return nil
	}

	if u := p.stream.Underrun(); u > 0 {
		logger.Logf(logger.Allow, "hostaudio", "%d frames of silence inserted", u)
	}

	err := p.player.Close()
	p.player = nil
	if err != nil {
		return curated.Errorf("hostaudio: %v", err)
	}
	return nil
}
