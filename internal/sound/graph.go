package sound

// The output graph is a fixed three-bus mix: Music and Effects sum into
// Master, Master feeds the stream the device pulls. It doubles as the
// audio clock: Now() is the number of frames rendered so far, so offline
// callers (tests, the silent pump) advance time simply by reading.

import (
	"io"
	"math"
	"sync"
)

type graph struct {
	mu       sync.Mutex
	rate     int
	frames   int64
	master   *gainParam
	music    *gainParam
	effects  *gainParam
	muted    bool
	voices   []*voice
	noiseSeq uint64
}

func newGraph(rate int) *graph {
	return &graph{
		rate:    rate,
		master:  newGainParam(1),
		music:   newGainParam(0), // faded in by the transport
		effects: newGainParam(effectsLevel),
	}
}

// Now returns the current audio-clock time in seconds.
func (g *graph) Now() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return float64(g.frames) / float64(g.rate)
}

func (g *graph) addVoice(v *voice) {
	g.mu.Lock()
	defer g.mu.Unlock()
	// A start time already in the past plays immediately.
	if v.startFrame < g.frames {
		shift := g.frames - v.startFrame
		v.startFrame += shift
		v.endFrame += shift
		v.killFrame += shift
	}
	g.voices = append(g.voices, v)
}

func (g *graph) activeVoices() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.voices)
}

// setMuted flips master gain between 0 and 1 with no transition ramp;
// mute must be perceptually instant.
func (g *graph) setMuted(muted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.muted = muted
	now := float64(g.frames) / float64(g.rate)
	g.master.cancelScheduledValues(now)
	if muted {
		g.master.setValueAtTime(0, now)
	} else {
		g.master.setValueAtTime(1, now)
	}
}

func (g *graph) isMuted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.muted
}

// Read renders interleaved stereo float32 LE frames. It never returns
// io.EOF; with no voices it streams silence so the device keeps pulling
// and the clock keeps advancing.
func (g *graph) Read(p []byte) (int, error) {
	n := len(p) / 8
	if n == 0 {
		return 0, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	t := float64(g.frames) / float64(g.rate)
	dt := 1 / float64(g.rate)
	for i := 0; i < n; i++ {
		var musicSum, fxSum float64
		for _, v := range g.voices {
			if g.frames < v.startFrame {
				continue
			}
			s := v.sample()
			if v.bus == BusEffects {
				fxSum += s
			} else {
				musicSum += s
			}
		}
		mix := musicSum*g.music.valueAt(t) + fxSum*g.effects.valueAt(t)
		out := softSat(mix * g.master.valueAt(t))
		putStereoF32(p, i, out)
		g.frames++
		t += dt
	}

	// Drop finished voices in place.
	kept := g.voices[:0]
	for _, v := range g.voices {
		if !v.done(g.frames) {
			kept = append(kept, v)
		}
	}
	g.voices = kept

	g.master.prune(t)
	g.music.prune(t)
	g.effects.prune(t)
	return n * 8, nil
}

var _ io.Reader = (*graph)(nil)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
