package sound

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGainParamBaseValue(t *testing.T) {
	p := newGainParam(0.7)
	for _, at := range []float64{0, 1, 100} {
		if got := p.valueAt(at); got != 0.7 {
			t.Errorf("valueAt(%v) = %v, want 0.7", at, got)
		}
	}
}

func TestGainParamSetValueAtTime(t *testing.T) {
	p := newGainParam(1)
	p.setValueAtTime(0.5, 1.0)
	tests := []struct {
		at   float64
		want float64
	}{
		{0.5, 1},
		{1.0, 0.5},
		{2.0, 0.5},
	}
	for _, tt := range tests {
		if got := p.valueAt(tt.at); !almostEqual(got, tt.want) {
			t.Errorf("valueAt(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestGainParamLinearRamp(t *testing.T) {
	p := newGainParam(0)
	p.setValueAtTime(0, 1.0)
	p.linearRampToValueAtTime(1, 3.0)
	tests := []struct {
		at   float64
		want float64
	}{
		{1.0, 0},
		{2.0, 0.5},
		{3.0, 1},
		{4.0, 1},
	}
	for _, tt := range tests {
		if got := p.valueAt(tt.at); !almostEqual(got, tt.want) {
			t.Errorf("valueAt(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestGainParamCancelHoldsCapturedValue(t *testing.T) {
	p := newGainParam(0)
	p.setValueAtTime(0, 0)
	p.linearRampToValueAtTime(1, 2.0)

	// The stop() dance: capture, cancel, re-set, ramp down.
	cur := p.valueAt(1.0)
	if !almostEqual(cur, 0.5) {
		t.Fatalf("mid-ramp value = %v, want 0.5", cur)
	}
	p.cancelScheduledValues(1.0)
	p.setValueAtTime(cur, 1.0)
	p.linearRampToValueAtTime(0, 1.6)

	if got := p.valueAt(1.3); !almostEqual(got, 0.25) {
		t.Errorf("valueAt(1.3) = %v, want 0.25", got)
	}
	if got := p.valueAt(2.0); !almostEqual(got, 0) {
		t.Errorf("valueAt(2.0) = %v, want 0", got)
	}
}

func TestGainParamPruneKeepsAnchor(t *testing.T) {
	p := newGainParam(0)
	p.setValueAtTime(0.3, 1.0)
	p.setValueAtTime(0.6, 2.0)
	p.linearRampToValueAtTime(1, 4.0)

	p.prune(3.0)
	if got := p.valueAt(3.0); !almostEqual(got, 0.8) {
		t.Errorf("after prune, valueAt(3.0) = %v, want 0.8", got)
	}
	if got := p.valueAt(5.0); !almostEqual(got, 1) {
		t.Errorf("after prune, valueAt(5.0) = %v, want 1", got)
	}
}
