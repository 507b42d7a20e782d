package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orf-cloud/parameter"
)

// Wave selects the tone source of a Note
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Note is one enveloped tone
type Note struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Gain    float64
}

// Streamer renders the note; the stream ends after Length
func (n Note) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.Length)
	body := beep.Take(total, n.source(rate))
	return newVolume(shape(body, total, rate.N(n.Attack), rate.N(n.Release)), n.Gain)
}

func (n Note) source(rate beep.SampleRate) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch n.Wave {
	case WaveNoise:
		return noise()
	case WaveSquare:
		s, err = generators.SquareTone(rate, n.Freq)
	default:
		s, err = generators.SineTone(rate, n.Freq)
	}
	if err != nil {
		return generators.Silence(-1)
	}
	return s
}

func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// shape applies a linear attack and release over total samples
func shape(s beep.Streamer, total, attack, release int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := envelopeGain(pos, total, attack, release)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

func envelopeGain(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = min(g, float64(total-pos)/float64(release))
	}
	return max(g, 0)
}

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateSpawnCue is a short high blip
func CreateSpawnCue(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return Note{
		Freq:    1046.5,
		Length:  parameter.SpawnCueDuration,
		Attack:  parameter.SpawnCueAttack,
		Release: parameter.SpawnCueRelease,
		Gain:    cfg.MasterVolume * 0.6,
	}.Streamer(rate)
}

// CreateEvictCue is a low buzz under a noise tick
func CreateEvictCue(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	tick := Note{
		Wave:    WaveNoise,
		Length:  parameter.EvictCueDuration,
		Attack:  parameter.EvictCueAttack,
		Release: parameter.EvictCueRelease,
		Gain:    0.3,
	}
	buzz := tick
	buzz.Wave = WaveSquare
	buzz.Freq = 110
	buzz.Gain = 0.2
	return newVolume(beep.Mix(tick.Streamer(rate), buzz.Streamer(rate)), cfg.MasterVolume)
}

// CreateExhaustedCue is a two-note falling chime
func CreateExhaustedCue(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	high := Note{
		Freq:    659.25,
		Length:  parameter.ExhaustedCueNoteDuration,
		Attack:  parameter.ExhaustedCueAttack,
		Release: parameter.ExhaustedCueRelease,
		Gain:    cfg.MasterVolume * 0.7,
	}
	low := high
	low.Freq = 440
	return beep.Seq(high.Streamer(rate), low.Streamer(rate))
}

// CueStreamer returns the streamer for cue, nil for an unknown cue
func CueStreamer(cue CueType, cfg Config) beep.Streamer {
	switch cue {
	case CueSpawn:
		return CreateSpawnCue(cfg)
	case CueEvict:
		return CreateEvictCue(cfg)
	case CueExhausted:
		return CreateExhaustedCue(cfg)
	default:
		return nil
	}
}
