// Package anim is a small property-tween engine. Tweens animate named
// float64 properties on a Target over a duration, shaped by an easing
// function. The engine advances all active tweens from a single frame loop
// (or from explicit Step calls in tests) and fires completion callbacks in
// the order the tweens were scheduled.
package anim

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Target is anything with named animatable float properties.
type Target interface {
	AnimGet(name string) float64
	AnimSet(name string, value float64)
}

// Values maps property names to values.
type Values map[string]float64

// Set applies values to the target immediately, without a tween.
func Set(target Target, values Values) {
	for name, v := range values {
		target.AnimSet(name, v)
	}
}

// Engine owns and advances tweens. The tween slice stays in schedule order;
// completion ordering falls out of that.
type Engine struct {
	mu     sync.Mutex
	tweens []*Tween
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// FromTo schedules a tween from explicit start values to end values. The
// start values are applied to the target immediately.
func (e *Engine) FromTo(target Target, from, to Values, duration float64, ease EaseFunc) *Tween {
	t := e.newTween(target, from, to, duration, ease)
	t.applyAt(0)
	return t
}

// To schedules a tween from the target's current values to end values.
func (e *Engine) To(target Target, to Values, duration float64, ease EaseFunc) *Tween {
	from := make(Values, len(to))
	for name := range to {
		from[name] = target.AnimGet(name)
	}
	return e.newTween(target, from, to, duration, ease)
}

func (e *Engine) newTween(target Target, from, to Values, duration float64, ease EaseFunc) *Tween {
	if ease == nil {
		ease = Linear
	}
	keys := make([]string, 0, len(to))
	for name := range to {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	e.mu.Lock()
	defer e.mu.Unlock()
	t := &Tween{
		engine:   e,
		target:   target,
		from:     from,
		to:       to,
		keys:     keys,
		duration: duration,
		ease:     ease,
	}
	e.tweens = append(e.tweens, t)
	return t
}

// Step advances all active tweens by dt seconds. Completion callbacks for
// tweens that finish during this step fire after all property writes, in
// schedule order, outside the engine lock.
func (e *Engine) Step(dt float64) {
	e.mu.Lock()
	var running, finished []*Tween
	active := e.tweens[:0]
	for _, t := range e.tweens {
		if t.killed {
			continue
		}
		t.elapsed += dt
		if t.duration <= 0 || t.elapsed >= t.duration {
			finished = append(finished, t)
			continue
		}
		running = append(running, t)
		active = append(active, t)
	}
	e.tweens = active
	e.mu.Unlock()

	// Property writes happen outside the lock: in-flight tweens at their
	// eased position, finished tweens pinned at the end values. Completion
	// callbacks fire last, in schedule order.
	for _, t := range running {
		t.applyAt(t.elapsed / t.duration)
	}
	for _, t := range finished {
		t.applyAt(1)
	}
	for _, t := range finished {
		t.fireComplete()
	}
}

// Run drives the engine from a ticker until ctx is cancelled. interval is
// the frame period, typically time.Second/60.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			e.Step(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Active returns the number of tweens currently scheduled.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tweens)
}

// Tween is one scheduled animation. A tween ends either by completing (its
// completion callback fires once) or by being killed (the callback never
// fires).
type Tween struct {
	engine   *Engine
	target   Target
	from, to Values
	keys     []string
	duration float64
	ease     EaseFunc

	elapsed    float64
	fired      bool
	killed     bool
	onComplete func()
}

// Kill cancels the tween. A killed tween stops updating its target and its
// completion callback will not fire.
func (t *Tween) Kill() {
	t.engine.mu.Lock()
	t.killed = true
	for i, other := range t.engine.tweens {
		if other == t {
			t.engine.tweens = append(t.engine.tweens[:i], t.engine.tweens[i+1:]...)
			break
		}
	}
	t.engine.mu.Unlock()
}

// Killed reports whether Kill was called.
func (t *Tween) Killed() bool {
	t.engine.mu.Lock()
	defer t.engine.mu.Unlock()
	return t.killed
}

// SetOnComplete sets or replaces the completion callback. If the tween has
// already completed, fn runs immediately; late subscribers still get
// notified exactly once.
func (t *Tween) SetOnComplete(fn func()) {
	t.engine.mu.Lock()
	if t.fired && !t.killed {
		t.engine.mu.Unlock()
		if fn != nil {
			fn()
		}
		return
	}
	t.onComplete = fn
	t.engine.mu.Unlock()
}

func (t *Tween) fireComplete() {
	t.engine.mu.Lock()
	if t.killed || t.fired {
		t.engine.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.onComplete
	t.engine.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// applyAt writes the eased values for progress p in [0, 1].
func (t *Tween) applyAt(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	ep := t.ease(p)
	for _, name := range t.keys {
		start := t.from[name]
		end := t.to[name]
		t.target.AnimSet(name, start+(end-start)*ep)
	}
}
