package sound

import (
	"fmt"
	"math"
)

// Synthesis primitives. Each one schedules a one-shot voice at an exact
// audio-clock time and returns synchronously; rendering happens later on
// the stream the device pulls. Invalid parameters are rejected up front
// rather than let a degenerate voice glitch the output.

func (e *Engine) tone(freq float64, wave Waveform, dur, peak, start float64, bus Bus) error {
	if freq <= 0 {
		return fmt.Errorf("tone: frequency must be positive, got %g Hz", freq)
	}
	if dur <= 0 {
		return fmt.Errorf("tone: duration must be positive, got %g s", dur)
	}
	if peak <= 0 {
		return fmt.Errorf("tone: peak amplitude must be positive, got %g", peak)
	}
	peak = clampF(peak, 0, 1)
	e.g.addVoice(newToneVoice(freq, wave, dur, peak, start, bus, e.g.rate))
	return nil
}

// chord plays one tone per frequency. Per-voice amplitude is peak/sqrt(n)
// so chords of different sizes carry comparable energy, not peak/n.
func (e *Engine) chord(freqs []float64, wave Waveform, dur, peak, start float64, bus Bus) error {
	if len(freqs) == 0 {
		return fmt.Errorf("chord: no frequencies")
	}
	for _, f := range freqs {
		if f <= 0 {
			return fmt.Errorf("chord: frequency must be positive, got %g Hz", f)
		}
	}
	per := peak / math.Sqrt(float64(len(freqs)))
	for _, f := range freqs {
		if err := e.tone(f, wave, dur, per, start, bus); err != nil {
			return err
		}
	}
	return nil
}

// noiseBurst plays a buffer of uniform random samples, optionally routed
// through a one-pole high-pass before the usual decay envelope. Used for
// hi-hats, crashes and clicks.
func (e *Engine) noiseBurst(dur, peak, start, highPassHz float64, bus Bus) error {
	if dur <= 0 {
		return fmt.Errorf("noise: duration must be positive, got %g s", dur)
	}
	if peak <= 0 {
		return fmt.Errorf("noise: peak amplitude must be positive, got %g", peak)
	}
	if highPassHz < 0 {
		return fmt.Errorf("noise: high-pass cutoff must be non-negative, got %g Hz", highPassHz)
	}
	peak = clampF(peak, 0, 1)

	g := e.g
	g.mu.Lock()
	g.noiseSeq++
	seed := g.noiseSeq
	g.mu.Unlock()

	n := int(math.Round(dur * float64(g.rate)))
	if n < 2 {
		n = 2
	}
	buf := make([]float64, n)
	rnd := newRand64(seed * 0x9E3779B97F4A7C15)
	for i := range buf {
		buf[i] = rnd.float11()
	}
	if highPassHz > 0 {
		highPass(buf, highPassHz, g.rate)
	}

	g.addVoice(newNoiseVoice(buf, dur, peak, start, bus, g.rate))
	return nil
}

// highPass runs a one-pole high-pass over buf in place.
func highPass(buf []float64, cutoff float64, rate int) {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(rate)
	a := rc / (rc + dt)
	var prevIn, prevOut float64
	for i, x := range buf {
		prevOut = a * (prevOut + x - prevIn)
		prevIn = x
		buf[i] = prevOut
	}
}
