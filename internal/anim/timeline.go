// Package anim is a deterministic animation engine: values that interpolate
// toward targets over time, plus one-shot timers, all driven by explicit
// Advance calls from a single goroutine. Nothing here touches the wall
// clock, so the render loop can feed it real frame times and tests can feed
// it whatever times they like.
package anim

import (
	"sort"
	"time"
)

// Timeline owns a set of animated values and pending timers and advances
// them all to a given instant. It is not safe for concurrent use; the
// program's update loop is its only caller.
type Timeline struct {
	now     time.Time
	started bool
	values  []*Value
	timers  []*timer
	seq     uint64
}

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// NewTimeline returns an empty timeline. Its clock is unset until the first
// Advance.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the instant of the most recent Advance.
func (tl *Timeline) Now() time.Time { return tl.now }

// NewValue registers and returns a value starting at initial.
func (tl *Timeline) NewValue(initial float64) *Value {
	v := &Value{tl: tl, current: initial}
	tl.values = append(tl.values, v)
	return v
}

// Schedule queues fn to run on the first Advance at or after delay from the
// timeline's current clock. Timers are never removed individually; callers
// that may become stale guard fn with a generation check instead.
func (tl *Timeline) Schedule(delay time.Duration, fn func()) {
	tl.seq++
	tl.timers = append(tl.timers, &timer{due: tl.now.Add(delay), seq: tl.seq, fn: fn})
}

// Advance moves the clock to now, updating every value and firing every due
// timer. Values update first so timer callbacks observe settled values; due
// timers fire in (due time, schedule order). Work scheduled by a callback
// during this pass runs no earlier than the next Advance, which keeps each
// frame a single deterministic pass. Calls with a clock earlier than the
// current one are ignored.
func (tl *Timeline) Advance(now time.Time) {
	if tl.started && now.Before(tl.now) {
		return
	}
	tl.now = now
	tl.started = true

	// Only timers pending before this pass are eligible to fire in it.
	eligible := tl.timers
	tl.timers = nil

	for _, v := range tl.values {
		v.advance(now)
	}

	var due []*timer
	for _, t := range eligible {
		if t.due.After(now) {
			tl.timers = append(tl.timers, t)
		} else {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
}

// Active reports whether anything is in flight: an animating value or a
// pending timer. The render loop keeps frame ticks running only while this
// is true.
func (tl *Timeline) Active() bool {
	if len(tl.timers) > 0 {
		return true
	}
	for _, v := range tl.values {
		if v.seg != nil {
			return true
		}
	}
	return false
}
