package sound

// The pattern engine is pure data plus one pure function. ResolveBeat
// never schedules anything; it returns descriptions and the scheduler
// turns them into voices. Replaying the same beat index always yields the
// same musical content.

// EventKind selects which synthesis primitive realizes a SoundEvent.
type EventKind int

const (
	EventTone EventKind = iota
	EventChord
	EventNoise
)

// SoundEvent is an immutable description of one synthesis call, with its
// timing expressed as a beat-relative offset. The scheduler anchors it to
// an absolute audio-clock time.
type SoundEvent struct {
	Kind        EventKind
	Wave        Waveform
	Freq        float64   // tone
	Freqs       []float64 // chord
	Dur         float64   // seconds
	Peak        float64
	OffsetBeats float64 // relative to the beat start (0.5 = offbeat)
	HighPassHz  float64 // noise only, 0 = unfiltered
	Bus         Bus
}

// Harmonic cycle: four bars of four beats, one chord per bar (Am F C G),
// with the bass playing each bar's root.
var chordProgression = [4][3]float64{
	{220.00, 261.63, 329.63}, // A3 C4 E4  (Am)
	{174.61, 220.00, 261.63}, // F3 A3 C4  (F)
	{261.63, 329.63, 392.00}, // C4 E4 G4  (C)
	{196.00, 246.94, 293.66}, // G3 B3 D4  (G)
}

var bassNotes = [4]float64{110.00, 87.31, 130.81, 98.00} // A2 F2 C3 G2

// Eight-beat melodic ostinato over A minor pentatonic, looping
// independently of the 16-beat harmonic cycle. 0 = rest.
var melodyNotes = [8]float64{440.00, 0, 523.25, 659.25, 0, 392.00, 440.00, 0}

const (
	patternBeats  = 16
	beatsPerBar   = 4
	melodyBeats   = 8
	kickFreq      = 60.0
	kickDur       = 0.22
	hatDur        = 0.05
	openHatDur    = 0.25
	hatCutoff     = 7000.0
	openHatCutoff = 6000.0
	stabDur       = 0.30
	bassDur       = 0.45
	melodyDur     = 0.22
)

// ResolveBeat maps an absolute beat index to the events that beat
// triggers. Pure and side-effect free; all events route to the music bus.
func ResolveBeat(beatIndex int) []SoundEvent {
	barBeat := beatIndex % patternBeats
	bar := barBeat / beatsPerBar
	beatInBar := barBeat % beatsPerBar
	melodyIndex := barBeat % melodyBeats

	var events []SoundEvent

	// Kick on beats 0 and 2 of every bar.
	if beatInBar == 0 || beatInBar == 2 {
		events = append(events, SoundEvent{
			Kind: EventTone, Wave: WaveSine,
			Freq: kickFreq, Dur: kickDur, Peak: 0.9,
			Bus: BusMusic,
		})
	}

	// Closed hi-hat on every beat.
	events = append(events, SoundEvent{
		Kind: EventNoise,
		Dur:  hatDur, Peak: 0.25, HighPassHz: hatCutoff,
		Bus: BusMusic,
	})

	// Offbeat hi-hat at the half-beat; the offbeat of beat 3 opens up.
	if beatInBar == 3 {
		events = append(events, SoundEvent{
			Kind: EventNoise,
			Dur:  openHatDur, Peak: 0.22, HighPassHz: openHatCutoff,
			OffsetBeats: 0.5,
			Bus:         BusMusic,
		})
	} else {
		events = append(events, SoundEvent{
			Kind: EventNoise,
			Dur:  hatDur, Peak: 0.18, HighPassHz: hatCutoff,
			OffsetBeats: 0.5,
			Bus:         BusMusic,
		})
	}

	// Chord stab and bass root on the downbeat of each bar.
	if beatInBar == 0 {
		freqs := make([]float64, len(chordProgression[bar]))
		copy(freqs, chordProgression[bar][:])
		events = append(events, SoundEvent{
			Kind: EventChord, Wave: WaveTriangle,
			Freqs: freqs, Dur: stabDur, Peak: 0.5,
			Bus: BusMusic,
		})
		events = append(events, SoundEvent{
			Kind: EventTone, Wave: WaveTriangle,
			Freq: bassNotes[bar], Dur: bassDur, Peak: 0.5,
			Bus: BusMusic,
		})
	}

	// Melody ostinato, 0 = rest.
	if note := melodyNotes[melodyIndex]; note > 0 {
		events = append(events, SoundEvent{
			Kind: EventTone, Wave: WaveSquare,
			Freq: note, Dur: melodyDur, Peak: 0.22,
			Bus: BusMusic,
		})
	}

	return events
}
