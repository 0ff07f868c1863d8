package sound

import "math"

// Waveform selects the oscillator shape for tone voices.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// Bus identifies the mix point a voice sums into. Only the two source
// buses are addressable; the master stage is not a voice target.
type Bus int

const (
	BusMusic Bus = iota
	BusEffects
)

// voice is a one-shot scheduled source: an oscillator or a noise buffer
// shaped by an exponential-decay envelope. It starts at startFrame, hits
// the envelope floor by endFrame, and is disposed at killFrame (one
// release tail later). Voices are owned by the graph and touched only by
// the render loop once added.
type voice struct {
	bus        Bus
	startFrame int64
	endFrame   int64
	killFrame  int64

	// Oscillator state (noise == nil).
	wave     Waveform
	phase    float64
	phaseInc float64

	// Noise buffer state.
	noise    []float64
	noisePos int

	envGain  float64
	envDecay float64
}

func newToneVoice(freq float64, wave Waveform, dur, peak, start float64, bus Bus, rate int) *voice {
	frames := int64(math.Round(dur * float64(rate)))
	if frames < 1 {
		frames = 1
	}
	sf := int64(math.Round(start * float64(rate)))
	return &voice{
		bus:        bus,
		startFrame: sf,
		endFrame:   sf + frames,
		killFrame:  sf + frames + int64(releaseTail*float64(rate)),
		wave:       wave,
		phaseInc:   freq / float64(rate),
		envGain:    peak,
		envDecay:   decayPerSample(peak, dur, rate),
	}
}

func newNoiseVoice(buf []float64, dur, peak, start float64, bus Bus, rate int) *voice {
	sf := int64(math.Round(start * float64(rate)))
	frames := int64(math.Round(dur * float64(rate)))
	if frames < 1 {
		frames = 1
	}
	return &voice{
		bus:        bus,
		startFrame: sf,
		endFrame:   sf + frames,
		killFrame:  sf + frames + int64(releaseTail*float64(rate)),
		noise:      buf,
		envGain:    peak,
		envDecay:   decayPerSample(peak, dur, rate),
	}
}

// decayPerSample returns the per-sample multiplier that takes the
// envelope from peak to envFloor over dur seconds.
func decayPerSample(peak, dur float64, rate int) float64 {
	n := dur * float64(rate)
	if n < 1 {
		n = 1
	}
	return math.Pow(envFloor/peak, 1/n)
}

// sample renders one mono sample and advances the voice.
func (v *voice) sample() float64 {
	var s float64
	if v.noise != nil {
		if v.noisePos < len(v.noise) {
			s = v.noise[v.noisePos]
			v.noisePos++
		}
	} else {
		switch v.wave {
		case WaveSine:
			s = math.Sin(2 * math.Pi * v.phase)
		case WaveSquare:
			if v.phase < 0.5 {
				s = 1
			} else {
				s = -1
			}
		case WaveSawtooth:
			s = 2*v.phase - 1
		case WaveTriangle:
			s = 1 - 4*math.Abs(v.phase-0.5)
		}
		v.phase += v.phaseInc
		if v.phase >= 1 {
			v.phase -= math.Floor(v.phase)
		}
	}
	s *= v.envGain
	v.envGain *= v.envDecay
	return s
}

// done reports whether the voice can be dropped at the given frame.
func (v *voice) done(frame int64) bool {
	if frame >= v.killFrame {
		return true
	}
	return v.noise != nil && v.noisePos >= len(v.noise)
}
