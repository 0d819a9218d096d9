package loop

import (
	"context"
	"fmt"
	"time"
)

// Pacing selects how the loop waits between ticks.
type Pacing string

const (
	// PacingSleep sleeps a constant interval after every tick. The real tick
	// rate drifts with input and render cost.
	PacingSleep Pacing = "sleep"
	// PacingStep measures the time since the previous tick and sleeps only
	// for what is left of the interval.
	PacingStep Pacing = "step"
)

// ParsePacing converts a pacing name into a Pacing.
func ParsePacing(name string) (Pacing, error) {
	switch Pacing(name) {
	case PacingSleep, PacingStep:
		return Pacing(name), nil
	case "":
		return PacingSleep, nil
	}
	return "", fmt.Errorf("loop: unknown pacing %q", name)
}

// Pacer blocks between ticks.
type Pacer interface {
	Wait()
}

// Interval returns the duration of one tick at the given rate.
func Interval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// NewPacer creates the pacer for a pacing mode and tick rate.
func NewPacer(p Pacing, tickRate int) Pacer {
	if p == PacingStep {
		return NewStepPacer(Interval(tickRate))
	}
	return NewSleepPacer(Interval(tickRate))
}

// SleepPacer sleeps a fixed interval on every Wait.
type SleepPacer struct {
	interval time.Duration
	sleep    func(time.Duration)
}

// NewSleepPacer creates a fixed-sleep pacer.
func NewSleepPacer(interval time.Duration) *SleepPacer {
	return &SleepPacer{interval: interval, sleep: time.Sleep}
}

// Wait sleeps for the configured interval.
func (p *SleepPacer) Wait() {
	p.sleep(p.interval)
}

// StepPacer keeps ticks on an interval grid measured from the previous tick.
// When a tick overruns its slot the grid is re-anchored instead of running
// catch-up ticks back to back.
type StepPacer struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewStepPacer creates a measured pacer.
func NewStepPacer(interval time.Duration) *StepPacer {
	return &StepPacer{interval: interval, now: time.Now, sleep: time.Sleep}
}

// Wait sleeps until one interval has passed since the previous tick.
func (p *StepPacer) Wait() {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}

	target := p.last.Add(p.interval)
	if remaining := target.Sub(now); remaining > 0 {
		p.sleep(remaining)
		p.last = target
		return
	}
	p.last = now
}

// FinalFrameHold is how long a crash frame stays on screen before the
// frontend tears the terminal down.
const FinalFrameHold = 2 * time.Second

// Hold blocks for d or until ctx is done.
func Hold(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
