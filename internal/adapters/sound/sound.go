// Package sound plays the completion chime.
package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/ports"
)

const (
	sampleRate    = 44100
	channelCount  = 2
	bytesPerFrame = channelCount * 2
)

// note is one tone of the chime.
type note struct {
	freq     float64
	duration time.Duration
}

// chime is a rising two-note bell.
var chime = []note{
	{freq: 659.25, duration: 350 * time.Millisecond},
	{freq: 987.77, duration: 650 * time.Millisecond},
}

// New returns the chime player, or a silent one when sound is disabled.
func New(enabled bool, log zerolog.Logger) ports.SoundPlayer {
	if !enabled {
		return Noop{}
	}
	return &Chime{log: log}
}

// Chime plays a synthesized bell through the system audio device.
// If no audio device can be opened it falls back to the terminal beep.
type Chime struct {
	log zerolog.Logger

	once    sync.Once
	ctx     *oto.Context
	initErr error
	pcm     []byte

	mu sync.Mutex
}

// Ensure Chime implements ports.SoundPlayer.
var _ ports.SoundPlayer = (*Chime)(nil)

func (c *Chime) init() {
	c.pcm = synthesize(chime)

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		c.initErr = err
		c.log.Warn().Err(err).Msg("audio device unavailable, falling back to beep")
		return
	}
	<-ready
	c.ctx = ctx
}

// Play plays the chime once. It blocks until playback ends or ctx is done.
func (c *Chime) Play(ctx context.Context) error {
	c.once.Do(c.init)
	if c.initErr != nil {
		if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			return fmt.Errorf("failed to beep: %w", err)
		}
		return nil
	}

	// Overlapping completions play one after another.
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	player.Play()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			_ = player.Close()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}
	return nil
}

// synthesize renders notes as 16-bit little-endian stereo PCM. Each note is
// a sine with a short attack and an exponential decay.
func synthesize(notes []note) []byte {
	var buf bytes.Buffer
	for _, n := range notes {
		frames := int(n.duration.Seconds() * sampleRate)
		attack := sampleRate / 200
		for i := 0; i < frames; i++ {
			t := float64(i) / sampleRate
			env := math.Exp(-4 * t / n.duration.Seconds())
			if i < attack {
				env *= float64(i) / float64(attack)
			}
			v := 0.4 * env * (math.Sin(2*math.Pi*n.freq*t) + 0.3*math.Sin(4*math.Pi*n.freq*t)) / 1.3
			sample := int16(v * math.MaxInt16)
			for ch := 0; ch < channelCount; ch++ {
				_ = binary.Write(&buf, binary.LittleEndian, sample)
			}
		}
	}
	return buf.Bytes()
}

// Noop is a SoundPlayer that plays nothing.
type Noop struct{}

// Play does nothing.
func (Noop) Play(context.Context) error { return nil }
