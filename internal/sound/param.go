package sound

import "sort"

type rampKind int

const (
	rampSet rampKind = iota
	rampLinear
)

type automationEvent struct {
	time  float64 // seconds on the audio clock
	value float64
	kind  rampKind
}

// gainParam is a gain value with sample-accurate automation: immediate
// sets and linear ramps anchored to audio-clock timestamps. All methods
// must be called with the owning graph locked; the render loop reads it
// under the same lock.
type gainParam struct {
	base   float64
	events []automationEvent
}

func newGainParam(v float64) *gainParam {
	return &gainParam{base: v}
}

func (p *gainParam) insert(ev automationEvent) {
	p.events = append(p.events, ev)
	sort.SliceStable(p.events, func(i, j int) bool {
		return p.events[i].time < p.events[j].time
	})
}

func (p *gainParam) setValueAtTime(v, t float64) {
	p.insert(automationEvent{time: t, value: v, kind: rampSet})
}

func (p *gainParam) linearRampToValueAtTime(v, t float64) {
	p.insert(automationEvent{time: t, value: v, kind: rampLinear})
}

// cancelScheduledValues drops every event at or after t. The value the
// param reports afterwards is whatever the remaining events dictate, so
// callers that want to hold the current level must capture valueAt first
// and re-set it.
func (p *gainParam) cancelScheduledValues(t float64) {
	kept := p.events[:0]
	for _, ev := range p.events {
		if ev.time < t {
			kept = append(kept, ev)
		}
	}
	p.events = kept
}

func (p *gainParam) valueAt(t float64) float64 {
	v := p.base
	pt := 0.0
	for _, ev := range p.events {
		if ev.time <= t {
			v = ev.value
			pt = ev.time
			continue
		}
		// First future event. Only a ramp shapes the present value.
		if ev.kind == rampLinear {
			if ev.time <= pt {
				return ev.value
			}
			f := (t - pt) / (ev.time - pt)
			return v + (ev.value-v)*f
		}
		return v
	}
	return v
}

// prune discards events that can no longer influence the value at or
// after t, keeping the most recent past event as the ramp anchor.
func (p *gainParam) prune(t float64) {
	last := -1
	for i, ev := range p.events {
		if ev.time <= t {
			last = i
		}
	}
	if last > 0 {
		p.events = append(p.events[:0], p.events[last:]...)
	}
}
