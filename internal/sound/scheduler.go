package sound

import (
	"log"
	"sync"
	"time"
)

// scheduler is the look-ahead transport driving the background music.
// A coarse wall-clock ticker advances a logical beat cursor; every tick
// materializes all beats whose start time falls inside the look-ahead
// window, so the audible timing depends only on the audio-clock start
// times handed to the graph. The cursor and transport state are guarded
// by a mutex because ticks and public calls arrive on different
// goroutines.
type scheduler struct {
	eng *Engine

	// emitBeat realizes one beat at an absolute audio-clock time. It is a
	// field so tests can observe the emitted beat sequence.
	emitBeat func(beatIndex int, at float64)

	mu           sync.Mutex
	running      bool
	beatIndex    int
	nextBeatTime float64
	stop         chan struct{}
}

func newScheduler(e *Engine) *scheduler {
	s := &scheduler{eng: e}
	s.emitBeat = s.scheduleBeat
	return s
}

// Start transitions Stopped -> Running: resets the cursor, fades the
// music bus in, and spawns the driver. A second Start is a no-op.
func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	now := s.eng.g.Now()
	s.running = true
	s.beatIndex = 0
	s.nextBeatTime = now + startEpsilon
	s.stop = make(chan struct{})

	g := s.eng.g
	g.mu.Lock()
	g.music.cancelScheduledValues(now)
	g.music.setValueAtTime(0, now)
	g.music.linearRampToValueAtTime(musicLevel, now+fadeInTime)
	g.mu.Unlock()

	go s.run(s.stop)
}

// Stop transitions Running -> Stopped: cancels the driver and pending
// gain automation and fades the music bus out. Beats already scheduled
// keep playing through the fade. A second Stop is a no-op.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)

	g := s.eng.g
	now := g.Now()
	g.mu.Lock()
	cur := g.music.valueAt(now)
	g.music.cancelScheduledValues(now)
	g.music.setValueAtTime(cur, now)
	g.music.linearRampToValueAtTime(0, now+fadeOutTime)
	g.mu.Unlock()
}

func (s *scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *scheduler) run(stop chan struct{}) {
	t := time.NewTicker(driverInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.tick()
		}
	}
}

// tick schedules every beat falling inside the look-ahead window. Safe to
// call at arbitrary, irregular intervals: each beat index is emitted
// exactly once because the cursor only ever advances.
func (s *scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	horizon := s.eng.g.Now() + lookaheadWindow
	for s.nextBeatTime < horizon {
		s.emitBeat(s.beatIndex, s.nextBeatTime)
		s.nextBeatTime += s.eng.beatDur
		s.beatIndex++
	}
}

// scheduleBeat resolves one beat and hands every event to the synthesis
// layer. A failing event is logged and dropped; its siblings still play.
func (s *scheduler) scheduleBeat(beatIndex int, at float64) {
	for _, ev := range ResolveBeat(beatIndex) {
		if err := s.eng.scheduleEvent(ev, at); err != nil {
			log.Printf("sound: beat %d voice dropped: %v", beatIndex, err)
		}
	}
}
