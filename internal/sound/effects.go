package sound

import (
	"log"
	"time"
)

// The effect library maps event names to short hand-composed sequences of
// synthesis calls anchored at "now" plus small offsets. Effects are
// fire-and-forget: every voice inside an effect is independent, and a
// voice that fails to schedule never stops its siblings. Errors surface
// here, at the dispatch boundary, and nowhere else.

type effectFunc func(e *Engine, at float64) []error

var soundEffects = map[string]effectFunc{
	"click":           fxClick,
	"team_added":      fxTeamAdded,
	"team_removed":    fxTeamRemoved,
	"round_start":     fxRoundStart,
	"guess_submitted": fxGuessSubmitted,
	"skip":            fxSkip,
	"reveal":          fxReveal,
	"result_top":      fxResultTop,
	"result_high":     fxResultHigh,
	"result_low":      fxResultLow,
	"result_miss":     fxResultMiss,
}

// Play triggers a named effect immediately. Unknown names and muted state
// are quiet no-ops (the former logged so a typo is diagnosable).
func (e *Engine) Play(name string) {
	if e.IsMuted() {
		return
	}
	fx, ok := soundEffects[name]
	if !ok {
		log.Printf("sound: unknown effect %q", name)
		return
	}
	e.ensureDevice()
	for _, err := range fx(e, e.g.Now()) {
		if err != nil {
			log.Printf("sound: effect %q voice dropped: %v", name, err)
		}
	}
}

// PlayGradedResult plays the reveal drumroll, then once the roll has run
// its course plays exactly one of four tiers picked from the score.
func (e *Engine) PlayGradedResult(score int) {
	e.Play("reveal")
	tier := gradedTier(score)
	time.AfterFunc(e.gradedDelay, func() {
		e.Play(tier)
	})
}

// gradedTier thresholds the score against the fixed cutoffs. Boundaries
// select the higher tier.
func gradedTier(score int) string {
	switch {
	case score >= 10:
		return "result_top"
	case score >= 7:
		return "result_high"
	case score >= 1:
		return "result_low"
	default:
		return "result_miss"
	}
}

// Reveal drumroll: tightening snare-ish hits with a final open crash.
// The graded-result delay is derived from this table, not hardcoded, so
// reshaping the roll never desynchronizes the payoff.
var drumrollHits = []float64{0, 0.09, 0.18, 0.27, 0.35, 0.42, 0.48, 0.53, 0.57, 0.60}

const drumrollHitDur = 0.05

func drumrollSpan() float64 {
	return drumrollHits[len(drumrollHits)-1] + drumrollHitDur
}

func gradedResultDelay() time.Duration {
	return time.Duration(drumrollSpan() * float64(time.Second))
}

func fxReveal(e *Engine, at float64) []error {
	var errs []error
	for i, off := range drumrollHits {
		peak := 0.25 + 0.02*float64(i)
		errs = append(errs, e.noiseBurst(drumrollHitDur, peak, at+off, 2000, BusEffects))
	}
	return errs
}

func fxClick(e *Engine, at float64) []error {
	return []error{
		e.tone(900, WaveSquare, 0.03, 0.15, at, BusEffects),
	}
}

func fxTeamAdded(e *Engine, at float64) []error {
	return []error{
		e.tone(523.25, WaveTriangle, 0.12, 0.4, at, BusEffects),      // C5
		e.tone(659.25, WaveTriangle, 0.16, 0.4, at+0.08, BusEffects), // E5
	}
}

func fxTeamRemoved(e *Engine, at float64) []error {
	return []error{
		e.tone(659.25, WaveTriangle, 0.12, 0.4, at, BusEffects),      // E5
		e.tone(440.00, WaveTriangle, 0.18, 0.4, at+0.08, BusEffects), // A4
	}
}

func fxRoundStart(e *Engine, at float64) []error {
	return []error{
		e.tone(392.00, WaveSquare, 0.10, 0.3, at, BusEffects),      // G4
		e.tone(523.25, WaveSquare, 0.10, 0.3, at+0.10, BusEffects), // C5
		// C major payoff chord.
		e.chord([]float64{523.25, 659.25, 783.99}, WaveTriangle, 0.45, 0.5, at+0.20, BusEffects),
	}
}

func fxGuessSubmitted(e *Engine, at float64) []error {
	return []error{
		e.tone(740, WaveSine, 0.07, 0.3, at, BusEffects),
		e.noiseBurst(0.03, 0.15, at+0.02, 5000, BusEffects),
	}
}

func fxSkip(e *Engine, at float64) []error {
	return []error{
		e.tone(330, WaveSawtooth, 0.10, 0.3, at, BusEffects),
		e.tone(247, WaveSawtooth, 0.16, 0.3, at+0.09, BusEffects),
	}
}

// Top tier: ascending bell arpeggio into a bright chord plus crash.
func fxResultTop(e *Engine, at float64) []error {
	arp := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	var errs []error
	for i, f := range arp {
		errs = append(errs, e.tone(f, WaveTriangle, 0.18, 0.45, at+0.08*float64(i), BusEffects))
	}
	errs = append(errs,
		e.chord([]float64{523.25, 659.25, 783.99, 1046.50}, WaveTriangle, 0.8, 0.6, at+0.32, BusEffects),
		e.noiseBurst(0.5, 0.3, at+0.32, 5000, BusEffects),
	)
	return errs
}

func fxResultHigh(e *Engine, at float64) []error {
	return []error{
		e.tone(523.25, WaveTriangle, 0.15, 0.4, at, BusEffects),
		e.tone(659.25, WaveTriangle, 0.15, 0.4, at+0.12, BusEffects),
		e.chord([]float64{523.25, 659.25, 783.99}, WaveTriangle, 0.5, 0.45, at+0.24, BusEffects),
	}
}

func fxResultLow(e *Engine, at float64) []error {
	return []error{
		e.tone(392.00, WaveTriangle, 0.14, 0.35, at, BusEffects),
		e.tone(523.25, WaveTriangle, 0.22, 0.35, at+0.12, BusEffects),
	}
}

// Miss: slow descending minor fall with a low thud.
func fxResultMiss(e *Engine, at float64) []error {
	return []error{
		e.tone(329.63, WaveSquare, 0.20, 0.3, at, BusEffects),      // E4
		e.tone(261.63, WaveSquare, 0.20, 0.3, at+0.16, BusEffects), // C4
		e.tone(220.00, WaveSquare, 0.30, 0.3, at+0.32, BusEffects), // A3
		e.tone(82.41, WaveSine, 0.25, 0.5, at+0.32, BusEffects),    // E2 thud
	}
}
