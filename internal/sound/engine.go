// Package sound synthesizes every sound in the game from oscillator and
// noise primitives; there are no audio assets. A look-ahead scheduler
// turns a logical beat sequence into sample-accurate voices on an audio
// clock derived from the rendered stream, so the coarse wall-clock timer
// driving it never affects musical timing.
package sound

import (
	"fmt"
	"time"
)

// Engine wires the output graph, device, scheduler and effect library
// together. Construct one per process with NewEngine. All public methods
// are synchronous, non-blocking and safe to call from the game loop.
type Engine struct {
	g       *graph
	sched   *scheduler
	dev     *device
	beatDur float64
	offline bool

	// gradedDelay gates which tier effect follows the reveal drumroll.
	// Derived from the drumroll's actual span so the two stay in sync.
	gradedDelay time.Duration
}

// NewEngine creates the audio engine. The playback device itself is
// opened lazily on the first call that needs to make sound (platform
// policy wants a user interaction first). Set SOUND_DISABLED=1 to run
// fully silent.
func NewEngine() *Engine {
	e := newEngine(envBool("SOUND_DISABLED"))
	if e.offline {
		// A disabled engine never opens a device, but scheduled voices
		// still need a consumer to render out (silently) and be
		// disposed, or they pile up for the life of the process.
		go silentPump(e.g)
	}
	return e
}

func newEngine(offline bool) *Engine {
	bpm := envInt("SOUND_BPM", DefaultBPM)
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	e := &Engine{
		g:       newGraph(SampleRate),
		beatDur: 60.0 / float64(bpm),
		offline: offline,
	}
	e.gradedDelay = gradedResultDelay()
	e.sched = newScheduler(e)
	e.dev = newDevice()
	return e
}

// StartMusic starts the background loop with a fade-in. No-op while
// already playing.
func (e *Engine) StartMusic() {
	e.ensureDevice()
	e.sched.Start()
}

// StopMusic fades the music out and halts the beat cursor. No-op while
// already stopped.
func (e *Engine) StopMusic() {
	e.sched.Stop()
}

// IsMusicPlaying reports whether the transport is running.
func (e *Engine) IsMusicPlaying() bool {
	return e.sched.IsRunning()
}

// ToggleMute flips the master mute and returns the new state. Mute only
// zeroes the master bus; a running transport keeps scheduling silently.
func (e *Engine) ToggleMute() bool {
	muted := !e.g.isMuted()
	e.g.setMuted(muted)
	return muted
}

// IsMuted reports the master mute state.
func (e *Engine) IsMuted() bool {
	return e.g.isMuted()
}

// ensureDevice lazily opens the output device. Implicit in every entry
// point that schedules sound; callers never check device state.
func (e *Engine) ensureDevice() {
	if e.offline {
		return
	}
	e.dev.ensure(e.g)
}

// scheduleEvent realizes one event description at an absolute
// audio-clock time.
func (e *Engine) scheduleEvent(ev SoundEvent, beatTime float64) error {
	at := beatTime + ev.OffsetBeats*e.beatDur
	switch ev.Kind {
	case EventTone:
		return e.tone(ev.Freq, ev.Wave, ev.Dur, ev.Peak, at, ev.Bus)
	case EventChord:
		return e.chord(ev.Freqs, ev.Wave, ev.Dur, ev.Peak, at, ev.Bus)
	case EventNoise:
		return e.noiseBurst(ev.Dur, ev.Peak, at, ev.HighPassHz, ev.Bus)
	}
	return fmt.Errorf("sound: unknown event kind %d", ev.Kind)
}
