package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"mazehorror/internal/sound"
)

var clipKeys = append([]string{
	sound.Music, sound.GhostHum, sound.Buzz, sound.Hit,
	sound.Pickup, sound.LevelUp, sound.GameOverTone,
}, sound.Ambience...)

// mixer is the ebiten-backed sound.Mixer. Playback failures are logged and
// otherwise ignored.
type mixer struct {
	ctx     *audio.Context
	rng     *rand.Rand
	clips   map[string][]byte
	players map[string]*audio.Player
	loops   map[string]bool
	volumes map[string]float64
}

func newMixer(ctx *audio.Context, dir string) *mixer {
	m := &mixer{
		ctx:     ctx,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano() + 4)),
		clips:   make(map[string][]byte),
		players: make(map[string]*audio.Player),
		loops:   make(map[string]bool),
		volumes: make(map[string]float64),
	}
	loaded := 0
	for _, key := range clipKeys {
		pcm, err := loadClip(dir, key)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("audio: %v", err)
			}
			pcm = synthFallback(key)
		} else {
			loaded++
		}
		if pcm != nil {
			m.clips[key] = pcm
		}
	}
	log.Printf("audio: %d of %d clips loaded from %s", loaded, len(clipKeys), dir)
	return m
}

// loadClip decodes dir/key.wav or dir/key.mp3 to 16-bit stereo PCM.
func loadClip(dir, key string) ([]byte, error) {
	var firstErr error
	for _, ext := range []string{".wav", ".mp3"} {
		path := filepath.Join(dir, key+ext)
		raw, err := os.ReadFile(path)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return decodeClip(path, raw)
	}
	return nil, firstErr
}

func decodeClip(path string, raw []byte) ([]byte, error) {
	var stream io.Reader
	var err error
	if filepath.Ext(path) == ".mp3" {
		stream, err = mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	} else {
		stream, err = wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	pcm = pcm[:len(pcm)-len(pcm)%4]
	if len(pcm) == 0 {
		return nil, fmt.Errorf("clip %q has no audio data", path)
	}
	return pcm, nil
}

func (m *mixer) player(key string) *audio.Player {
	if p, ok := m.players[key]; ok {
		return p
	}
	pcm, ok := m.clips[key]
	if !ok {
		return nil
	}
	var p *audio.Player
	if m.loops[key] {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		var err error
		if p, err = m.ctx.NewPlayer(loop); err != nil {
			log.Printf("audio: %s: %v", key, err)
			return nil
		}
	} else {
		p = m.ctx.NewPlayerFromBytes(pcm)
	}
	if v, ok := m.volumes[key]; ok {
		p.SetVolume(v)
	}
	m.players[key] = p
	return p
}

func (m *mixer) Play(key string) {
	p := m.player(key)
	if p == nil {
		return
	}
	if !m.loops[key] {
		if err := p.SetPosition(0); err != nil {
			log.Printf("audio: rewind %s: %v", key, err)
		}
	}
	p.Play()
}

func (m *mixer) Stop(key string) {
	p, ok := m.players[key]
	if !ok {
		return
	}
	p.Pause()
	if err := p.SetPosition(0); err != nil {
		log.Printf("audio: rewind %s: %v", key, err)
	}
}

func (m *mixer) SetVolume(key string, v float64) {
	m.volumes[key] = v
	if p, ok := m.players[key]; ok {
		p.SetVolume(v)
	}
}

func (m *mixer) SetLoop(key string, loop bool) {
	if m.loops[key] == loop {
		return
	}
	m.loops[key] = loop
	if p, ok := m.players[key]; ok {
		p.Pause()
		_ = p.Close()
		delete(m.players, key)
	}
}

// Voice gives a ghost its own looping hum, synthesized when the clip is
// missing.
func (m *mixer) Voice(key string, volume float64) sound.Handle {
	var src io.Reader
	if pcm, ok := m.clips[key]; ok {
		src = audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	} else {
		src = newDroneStream(45+m.rng.Float64()*25, m.rng.Int63())
	}
	p, err := m.ctx.NewPlayer(src)
	if err != nil {
		log.Printf("audio: voice %s: %v", key, err)
		return sound.Nop{}.Voice(key, volume)
	}
	p.SetBufferSize(voiceBufferDuration)
	p.SetVolume(volume)
	return &voice{p: p}
}

type voice struct {
	p *audio.Player
}

func (v *voice) Play() {
	if v.p != nil {
		v.p.Play()
	}
}

func (v *voice) Pause() {
	if v.p != nil {
		v.p.Pause()
	}
}

func (v *voice) SetVolume(x float64) {
	if v.p != nil {
		v.p.SetVolume(x)
	}
}

func (v *voice) Close() {
	if v.p == nil {
		return
	}
	v.p.Pause()
	_ = v.p.Close()
	v.p = nil
}
