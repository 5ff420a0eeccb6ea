package curtain

import (
	"fmt"
	"sync"

	"github.com/chrisuehlinger/curtain/anim"
	"github.com/chrisuehlinger/curtain/dom"
)

// Controller attaches the curtain behavior to host elements. It owns the
// handle side-table: at most one in-flight tween per overlay element, with
// the entry removed on completion, replacement or teardown.
type Controller struct {
	engine *anim.Engine

	mu      sync.Mutex
	handles map[*dom.Element]*anim.Tween
}

// New creates a controller driving animations on engine.
func New(engine *anim.Engine) *Controller {
	return &Controller{
		engine:  engine,
		handles: make(map[*dom.Element]*anim.Tween),
	}
}

// overlayProxy applies the tweened x/y percentages to the overlay's inline
// transform. It is the anim.Target the controller animates; the engine
// goroutine writes it while event handlers read the current values, so the
// fields carry their own lock.
type overlayProxy struct {
	el *dom.Element

	mu sync.Mutex
	x  float64
	y  float64
}

func (p *overlayProxy) AnimGet(name string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name == "y" {
		return p.y
	}
	return p.x
}

func (p *overlayProxy) AnimSet(name string, value float64) {
	p.mu.Lock()
	if name == "y" {
		p.y = value
	} else {
		p.x = value
	}
	x, y := p.x, p.y
	p.mu.Unlock()
	p.el.Style().SetProperty("transform", fmt.Sprintf("translate(%g%%, %g%%)", x, y))
}

// Attach wires the behavior onto host and returns a teardown function. The
// teardown removes the listeners, drops any in-flight tween, removes the
// injected nodes and restores the host's original inner markup; it is safe
// to call more than once. A nil host, or a host with no owner document,
// makes Attach a complete no-op returning a no-op teardown.
func (c *Controller) Attach(host *dom.Element, opts *Options) func() {
	if host == nil || host.OwnerDocument() == nil {
		return func() {}
	}
	cfg := mergeOptions(opts)
	doc := host.OwnerDocument()

	// Parent role: the overlay positions against the host and must clip to
	// its bounds.
	host.Style().SetProperty("position", "relative")
	host.Style().SetProperty("overflow", "hidden")
	host.AddClass(cfg.parentClass)
	for name, value := range cfg.parentAttrs {
		host.SetAttribute(name, value)
	}

	snapshot := host.InnerHTML()

	// Child wrapper re-hosts the original markup. position:relative puts it
	// in the same stacking layer as the overlay, so document order keeps it
	// on top.
	child := doc.CreateElement("div")
	_ = child.SetInnerHTML(snapshot)
	child.Style().SetProperty("position", "relative")
	child.AddClass(cfg.childClass)
	for name, value := range cfg.childAttrs {
		child.SetAttribute(name, value)
	}

	overlay := doc.CreateElement("div")
	overlayStyle := overlay.Style()
	overlayStyle.SetProperty("position", "absolute")
	overlayStyle.SetProperty("top", "0")
	overlayStyle.SetProperty("left", "0")
	overlayStyle.SetProperty("width", "100%")
	overlayStyle.SetProperty("height", "100%")
	overlayStyle.SetProperty("background", fmt.Sprintf("var(--curtain-background, %s)", cfg.background))
	overlayStyle.SetProperty("opacity", fmt.Sprintf("%g", cfg.opacity))
	overlayStyle.SetProperty("mix-blend-mode", cfg.mixBlendMode)
	overlayStyle.SetProperty("pointer-events", "none")
	overlay.AddClass(cfg.curtainClass)
	for name, value := range cfg.curtainAttrs {
		overlay.SetAttribute(name, value)
	}

	// Rest off-screen at the touch start edge until the first enter.
	proxy := &overlayProxy{el: overlay}
	startX, startY := positionFor(cfg.touchStart)
	anim.Set(proxy, anim.Values{"x": startX, "y": startY})

	// Overlay first, then child, so the child stacks above it.
	hostNode := host.AsNode()
	for hostNode.FirstChild() != nil {
		hostNode.RemoveChild(hostNode.FirstChild())
	}
	hostNode.AppendChild(overlay.AsNode())
	hostNode.AppendChild(child.AsNode())

	enterID := host.AddEventListener("pointerenter", func(ev *dom.Event) {
		c.enter(overlay, proxy, &cfg, pointerEdge(ev, host))
	})
	leaveID := host.AddEventListener("pointerleave", func(ev *dom.Event) {
		c.leave(overlay, proxy, &cfg, pointerEdge(ev, host))
	})
	touchStartID := host.AddEventListener("touchstart", func(ev *dom.Event) {
		c.enter(overlay, proxy, &cfg, cfg.touchStart)
	})
	touchEndID := host.AddEventListener("touchend", func(ev *dom.Event) {
		c.leave(overlay, proxy, &cfg, cfg.touchEnd)
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			host.RemoveEventListener("pointerenter", enterID)
			host.RemoveEventListener("pointerleave", leaveID)
			host.RemoveEventListener("touchstart", touchStartID)
			host.RemoveEventListener("touchend", touchEndID)

			c.mu.Lock()
			if handle := c.handles[overlay]; handle != nil {
				handle.Kill()
				delete(c.handles, overlay)
			}
			c.mu.Unlock()

			if overlay.AsNode().ParentNode() == hostNode {
				hostNode.RemoveChild(overlay.AsNode())
			}
			if child.AsNode().ParentNode() == hostNode {
				hostNode.RemoveChild(child.AsNode())
			}
			_ = host.SetInnerHTML(snapshot)
		})
	}
}

// pointerEdge maps a pointer event to the host edge it is closest to.
func pointerEdge(ev *dom.Event, host *dom.Element) Edge {
	rect := host.GetBoundingClientRect()
	return DetectSide(ev.ClientX-rect.Left(), ev.ClientY-rect.Top(), rect.Width, rect.Height)
}

// enter slides the overlay in from edge. Entry always takes priority: any
// in-flight tween is killed before the new one starts.
func (c *Controller) enter(overlay *dom.Element, proxy *overlayProxy, cfg *settings, edge Edge) {
	if cfg.onEnter != nil {
		cfg.onEnter()
	}
	x, y := positionFor(edge)

	c.mu.Lock()
	if handle := c.handles[overlay]; handle != nil {
		handle.Kill()
		delete(c.handles, overlay)
	}
	tween := c.engine.FromTo(proxy,
		anim.Values{"x": x, "y": y},
		anim.Values{"x": 0, "y": 0},
		cfg.duration, anim.EaseByName(cfg.ease))
	c.handles[overlay] = tween
	c.mu.Unlock()

	tween.SetOnComplete(func() { c.clearHandle(overlay, tween) })
}

// leave slides the overlay out through edge. If a tween is in flight it is
// not killed; the out tween is chained onto its completion so an in-progress
// entrance finishes before reversing.
func (c *Controller) leave(overlay *dom.Element, proxy *overlayProxy, cfg *settings, edge Edge) {
	if cfg.onLeave != nil {
		cfg.onLeave()
	}
	x, y := positionFor(edge)

	start := func() {
		c.mu.Lock()
		tween := c.engine.To(proxy,
			anim.Values{"x": x, "y": y},
			cfg.duration, anim.EaseByName(cfg.ease))
		c.handles[overlay] = tween
		c.mu.Unlock()
		tween.SetOnComplete(func() { c.clearHandle(overlay, tween) })
	}

	c.mu.Lock()
	handle := c.handles[overlay]
	c.mu.Unlock()
	if handle != nil {
		handle.SetOnComplete(start)
		return
	}
	start()
}

// clearHandle removes the side-table entry if tween still owns it.
func (c *Controller) clearHandle(overlay *dom.Element, tween *anim.Tween) {
	c.mu.Lock()
	if c.handles[overlay] == tween {
		delete(c.handles, overlay)
	}
	c.mu.Unlock()
}

// handleCount returns the number of tracked animation handles.
func (c *Controller) handleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}
