package sound

import (
	"os"
	"strconv"
	"time"
)

// Output stream format (matches the oto context below).
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Music transport.
const (
	DefaultBPM = 112

	// The driver ticks coarsely; every tick schedules all beats falling
	// inside the look-ahead window, so audio timing is governed by the
	// sample-accurate start times, not by tick jitter. The window must
	// exceed the worst expected gap between ticks.
	driverInterval  = 25 * time.Millisecond
	lookaheadWindow = 0.12 // seconds

	// First beat lands slightly after "now" so it is never in the past.
	startEpsilon = 0.05

	fadeInTime  = 1.5
	fadeOutTime = 0.6
)

// Bus levels.
const (
	musicLevel   = 0.55
	effectsLevel = 0.80
)

// Voice envelope. Every voice decays exponentially from its peak down to
// envFloor over its duration, then lives one short release tail so the
// cutoff never clicks.
const (
	envFloor    = 0.001
	releaseTail = 0.02
)

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string) bool {
	v := os.Getenv(key)
	return v == "1" || v == "true"
}
