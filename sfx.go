package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/healthhammer/prefabs"
)

const sampleRate = 44100

// toneBank plays short synthesized tones for hammer cues.
type toneBank struct {
	players map[string]*audio.Player
}

func newToneBank(ctx *audio.Context, specs []prefabs.AudioSpec) *toneBank {
	b := &toneBank{players: make(map[string]*audio.Player, len(specs))}
	for _, s := range specs {
		p := ctx.NewPlayerFromBytes(tone(s.Frequency, s.Length.Seconds()))
		p.SetVolume(s.Volume)
		b.players[s.Name] = p
	}
	return b
}

// Play implements obj.SoundPlayer.
func (b *toneBank) Play(name string) {
	if b == nil {
		return
	}
	p, ok := b.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// tone renders a decaying sine as 16-bit little-endian stereo PCM.
func tone(freq, seconds float64) []byte {
	n := int(seconds * sampleRate)
	if n <= 0 || freq <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
