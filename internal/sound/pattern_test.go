package sound

import (
	"reflect"
	"testing"
)

func TestResolveBeatDeterministic(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := ResolveBeat(i)
		b := ResolveBeat(i)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("ResolveBeat(%d) not deterministic", i)
		}
	}
}

func TestResolveBeatPeriodic16(t *testing.T) {
	// 16 is a multiple of the 8-beat melody cycle, so the full event list
	// repeats every 16 beats.
	for i := 0; i < 48; i++ {
		a := ResolveBeat(i)
		b := ResolveBeat(i + 16)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("ResolveBeat(%d) != ResolveBeat(%d)", i, i+16)
		}
	}
}

func melodyOf(events []SoundEvent) []SoundEvent {
	var out []SoundEvent
	for _, ev := range events {
		if ev.Kind == EventTone && ev.Wave == WaveSquare {
			out = append(out, ev)
		}
	}
	return out
}

func TestMelodyLoopsEvery8(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := melodyOf(ResolveBeat(i))
		b := melodyOf(ResolveBeat(i + 8))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("melody at beat %d differs from beat %d", i, i+8)
		}
	}
}

func countKicks(events []SoundEvent) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == EventTone && ev.Freq == kickFreq {
			n++
		}
	}
	return n
}

func TestDrumGrid(t *testing.T) {
	for beat := 0; beat < 16; beat++ {
		events := ResolveBeat(beat)
		beatInBar := beat % 4

		wantKick := 0
		if beatInBar == 0 || beatInBar == 2 {
			wantKick = 1
		}
		if got := countKicks(events); got != wantKick {
			t.Errorf("beat %d: kicks = %d, want %d", beat, got, wantKick)
		}

		var onbeatHats, offbeatClosed, offbeatOpen int
		for _, ev := range events {
			if ev.Kind != EventNoise {
				continue
			}
			switch {
			case ev.OffsetBeats == 0:
				onbeatHats++
			case ev.Dur == openHatDur:
				offbeatOpen++
			default:
				offbeatClosed++
			}
		}
		if onbeatHats != 1 {
			t.Errorf("beat %d: on-beat hats = %d, want 1", beat, onbeatHats)
		}
		if beatInBar == 3 {
			if offbeatOpen != 1 || offbeatClosed != 0 {
				t.Errorf("beat %d: want one open offbeat hat, got open=%d closed=%d",
					beat, offbeatOpen, offbeatClosed)
			}
		} else {
			if offbeatClosed != 1 || offbeatOpen != 0 {
				t.Errorf("beat %d: want one closed offbeat hat, got open=%d closed=%d",
					beat, offbeatOpen, offbeatClosed)
			}
		}
	}
}

func TestHarmonyOnDownbeatsOnly(t *testing.T) {
	for beat := 0; beat < 16; beat++ {
		bar := beat / 4
		var chords, basses int
		for _, ev := range ResolveBeat(beat) {
			switch ev.Kind {
			case EventChord:
				chords++
				want := chordProgression[bar][:]
				if !reflect.DeepEqual(ev.Freqs, want) {
					t.Errorf("beat %d: chord %v, want %v", beat, ev.Freqs, want)
				}
			case EventTone:
				if ev.Freq == bassNotes[bar] && ev.Wave == WaveTriangle {
					basses++
				}
			}
		}
		if beat%4 == 0 {
			if chords != 1 || basses != 1 {
				t.Errorf("downbeat %d: chords=%d basses=%d, want 1 each", beat, chords, basses)
			}
		} else if chords != 0 {
			t.Errorf("beat %d: unexpected chord stab", beat)
		}
	}
}

func TestEventsRouteToMusicBus(t *testing.T) {
	for beat := 0; beat < 16; beat++ {
		for _, ev := range ResolveBeat(beat) {
			if ev.Bus != BusMusic {
				t.Errorf("beat %d: event on bus %d, want music", beat, ev.Bus)
			}
		}
	}
}

func TestResolveBeatReturnsFreshSlices(t *testing.T) {
	a := ResolveBeat(0)
	for _, ev := range a {
		if ev.Kind == EventChord {
			ev.Freqs[0] = -1
		}
	}
	for _, ev := range ResolveBeat(0) {
		if ev.Kind == EventChord && ev.Freqs[0] < 0 {
			t.Fatal("chord frequencies are shared between calls")
		}
	}
}
