package curtain

import "testing"

func TestMergeOptions_Defaults(t *testing.T) {
	for _, opts := range []*Options{nil, {}} {
		s := mergeOptions(opts)
		if s.duration != 0.125 {
			t.Errorf("Expected default duration 0.125, got %v", s.duration)
		}
		if s.ease != "power2.out" {
			t.Errorf("Expected default ease 'power2.out', got '%s'", s.ease)
		}
		if s.background != "rgba(0, 0, 0, 0.35)" {
			t.Errorf("Unexpected default background '%s'", s.background)
		}
		if s.opacity != 1 {
			t.Errorf("Expected default opacity 1, got %v", s.opacity)
		}
		if s.mixBlendMode != "normal" {
			t.Errorf("Expected default blend mode 'normal', got '%s'", s.mixBlendMode)
		}
		if s.touchStart != EdgeBottom || s.touchEnd != EdgeTop {
			t.Errorf("Expected touch edges bottom/top, got %s/%s", s.touchStart, s.touchEnd)
		}
	}
}

func TestMergeOptions_ShallowPerSubObject(t *testing.T) {
	// Setting one field of a sub-object keeps the other fields' defaults.
	duration := 0.5
	s := mergeOptions(&Options{
		Animation: &AnimationOptions{Duration: &duration},
		Overlay:   &OverlayOptions{Background: "teal"},
	})
	if s.duration != 0.5 {
		t.Errorf("Expected duration 0.5, got %v", s.duration)
	}
	if s.ease != "power2.out" {
		t.Errorf("Expected ease default to survive, got '%s'", s.ease)
	}
	if s.background != "teal" {
		t.Errorf("Expected background 'teal', got '%s'", s.background)
	}
	if s.opacity != 1 || s.mixBlendMode != "normal" {
		t.Error("Expected untouched overlay fields to keep defaults")
	}
}

func TestMergeOptions_ZeroDuration(t *testing.T) {
	zero := 0.0
	s := mergeOptions(&Options{Animation: &AnimationOptions{Duration: &zero}})
	if s.duration != 0 {
		t.Errorf("Expected explicit zero duration to win, got %v", s.duration)
	}
}

func TestMergeOptions_ZeroOpacity(t *testing.T) {
	zero := 0.0
	s := mergeOptions(&Options{Overlay: &OverlayOptions{Opacity: &zero}})
	if s.opacity != 0 {
		t.Errorf("Expected explicit zero opacity to win, got %v", s.opacity)
	}
}

func TestMergeOptions_TouchEdges(t *testing.T) {
	s := mergeOptions(&Options{TouchPosition: &TouchPositionOptions{Start: EdgeLeft}})
	if s.touchStart != EdgeLeft {
		t.Errorf("Expected touch start left, got %s", s.touchStart)
	}
	if s.touchEnd != EdgeTop {
		t.Errorf("Expected touch end default top, got %s", s.touchEnd)
	}
}

func TestMergeOptions_ClassesAttrsCallbacks(t *testing.T) {
	called := false
	s := mergeOptions(&Options{
		ParentClass:  "p",
		ChildClass:   "c",
		CurtainClass: "k",
		CurtainAttrs: map[string]string{"aria-hidden": "true"},
		OnEnter:      func() { called = true },
	})
	if s.parentClass != "p" || s.childClass != "c" || s.curtainClass != "k" {
		t.Error("Expected classes to pass through")
	}
	if s.curtainAttrs["aria-hidden"] != "true" {
		t.Error("Expected attribute bags to pass through")
	}
	if s.onEnter == nil {
		t.Fatal("Expected OnEnter to pass through")
	}
	s.onEnter()
	if !called {
		t.Error("Expected OnEnter to be callable")
	}
}
