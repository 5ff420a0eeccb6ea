package curtain

// AnimationOptions controls tween timing.
type AnimationOptions struct {
	// Duration in seconds. A pointer so an explicit 0 (instant) is
	// distinguishable from "not set".
	Duration *float64
	// Ease is a GSAP-style easing name, e.g. "power2.out".
	Ease string
}

// OverlayOptions controls the overlay's visual style.
type OverlayOptions struct {
	// Background is any CSS color. It is written through the
	// --curtain-background custom property so a stylesheet can override it.
	Background string
	// Opacity in [0, 1]. A pointer so an explicit 0 is distinguishable
	// from "not set".
	Opacity *float64
	// MixBlendMode is a CSS blend-mode keyword.
	MixBlendMode string
}

// TouchPositionOptions fixes the edges used for touch input, which has no
// meaningful entry direction.
type TouchPositionOptions struct {
	Start Edge
	End   Edge
}

// Options configures an attachment. Every field is optional; each sub-object
// is shallow-merged over the defaults.
type Options struct {
	Animation     *AnimationOptions
	Overlay       *OverlayOptions
	TouchPosition *TouchPositionOptions

	ParentClass  string
	ChildClass   string
	CurtainClass string

	// Attribute bags applied verbatim to the three roles, for ARIA
	// attributes, tabindex and the like.
	ParentAttrs  map[string]string
	ChildAttrs   map[string]string
	CurtainAttrs map[string]string

	// OnEnter and OnLeave fire synchronously with the triggering event,
	// independent of animation completion.
	OnEnter func()
	OnLeave func()
}

// settings is a fully-resolved Options: defaults applied, no pointers.
type settings struct {
	duration     float64
	ease         string
	background   string
	opacity      float64
	mixBlendMode string
	touchStart   Edge
	touchEnd     Edge

	parentClass  string
	childClass   string
	curtainClass string
	parentAttrs  map[string]string
	childAttrs   map[string]string
	curtainAttrs map[string]string

	onEnter func()
	onLeave func()
}

const (
	defaultDuration     = 0.125
	defaultEase         = "power2.out"
	defaultBackground   = "rgba(0, 0, 0, 0.35)"
	defaultOpacity      = 1.0
	defaultMixBlendMode = "normal"
	defaultTouchStart   = EdgeBottom
	defaultTouchEnd     = EdgeTop
)

// mergeOptions resolves opts over the defaults, one sub-object at a time.
func mergeOptions(opts *Options) settings {
	s := settings{
		duration:     defaultDuration,
		ease:         defaultEase,
		background:   defaultBackground,
		opacity:      defaultOpacity,
		mixBlendMode: defaultMixBlendMode,
		touchStart:   defaultTouchStart,
		touchEnd:     defaultTouchEnd,
	}
	if opts == nil {
		return s
	}
	if a := opts.Animation; a != nil {
		if a.Duration != nil {
			s.duration = *a.Duration
		}
		if a.Ease != "" {
			s.ease = a.Ease
		}
	}
	if o := opts.Overlay; o != nil {
		if o.Background != "" {
			s.background = o.Background
		}
		if o.Opacity != nil {
			s.opacity = *o.Opacity
		}
		if o.MixBlendMode != "" {
			s.mixBlendMode = o.MixBlendMode
		}
	}
	if tp := opts.TouchPosition; tp != nil {
		if tp.Start != "" {
			s.touchStart = tp.Start
		}
		if tp.End != "" {
			s.touchEnd = tp.End
		}
	}
	s.parentClass = opts.ParentClass
	s.childClass = opts.ChildClass
	s.curtainClass = opts.CurtainClass
	s.parentAttrs = opts.ParentAttrs
	s.childAttrs = opts.ChildAttrs
	s.curtainAttrs = opts.CurtainAttrs
	s.onEnter = opts.OnEnter
	s.onLeave = opts.OnLeave
	return s
}
