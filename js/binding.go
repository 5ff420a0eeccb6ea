package js

import (
	"github.com/dop251/goja"

	"github.com/chrisuehlinger/curtain/curtain"
	"github.com/chrisuehlinger/curtain/dom"
)

// nativeKey is the hidden property carrying the *dom.Element inside a
// wrapped element object.
const nativeKey = "__native"

// wrapElement exposes a dom element to scripts.
func (r *Runtime) wrapElement(el *dom.Element) *goja.Object {
	obj := r.vm.NewObject()
	obj.Set(nativeKey, el)
	obj.Set("tagName", el.TagName())

	obj.DefineAccessorProperty("id",
		r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return r.vm.ToValue(el.Id())
		}),
		r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			el.SetId(call.Argument(0).String())
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("innerHTML",
		r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return r.vm.ToValue(el.InnerHTML())
		}),
		r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if err := el.SetInnerHTML(call.Argument(0).String()); err != nil {
				panic(r.vm.ToValue(err.Error()))
			}
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("getAttribute", func(name string) goja.Value {
		if !el.HasAttribute(name) {
			return goja.Null()
		}
		return r.vm.ToValue(el.GetAttribute(name))
	})
	obj.Set("setAttribute", func(name, value string) {
		el.SetAttribute(name, value)
	})
	obj.Set("getBoundingClientRect", func(call goja.FunctionCall) goja.Value {
		rect := el.GetBoundingClientRect()
		out := r.vm.NewObject()
		out.Set("x", rect.X)
		out.Set("y", rect.Y)
		out.Set("width", rect.Width)
		out.Set("height", rect.Height)
		out.Set("top", rect.Top())
		out.Set("right", rect.Right())
		out.Set("bottom", rect.Bottom())
		out.Set("left", rect.Left())
		return out
	})
	obj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
		arg := call.Argument(0)
		if desc, ok := arg.(*goja.Object); ok {
			el.DispatchEvent(&dom.Event{
				Type:    toString(desc.Get("type")),
				ClientX: toFloat(desc.Get("clientX")),
				ClientY: toFloat(desc.Get("clientY")),
			})
		}
		return goja.Undefined()
	})
	return obj
}

// unwrapElement recovers the native element from a wrapped object, or nil.
func unwrapElement(value goja.Value) *dom.Element {
	obj, ok := value.(*goja.Object)
	if !ok {
		return nil
	}
	native := obj.Get(nativeKey)
	if native == nil {
		return nil
	}
	el, _ := native.Export().(*dom.Element)
	return el
}

// setupCurtain installs the global curtain(element, options) function.
// It attaches the behavior and returns the teardown as a JS function. A
// missing or non-element argument yields a working no-op teardown, matching
// the behavior's inert no-DOM path.
func (r *Runtime) setupCurtain() {
	r.vm.Set("curtain", func(call goja.FunctionCall) goja.Value {
		el := unwrapElement(call.Argument(0))
		opts := r.optionsFromValue(call.Argument(1))
		detach := r.controller.Attach(el, opts)
		return r.vm.ToValue(func(goja.FunctionCall) goja.Value {
			detach()
			return goja.Undefined()
		})
	})
}

// optionsFromValue converts a script options object to curtain.Options.
// Missing members keep their defaults.
func (r *Runtime) optionsFromValue(value goja.Value) *curtain.Options {
	obj, ok := value.(*goja.Object)
	if !ok {
		return nil
	}
	opts := &curtain.Options{}

	if sub := asObject(obj.Get("animation")); sub != nil {
		animation := &curtain.AnimationOptions{Ease: toString(sub.Get("ease"))}
		if v := sub.Get("duration"); isSet(v) {
			duration := v.ToFloat()
			animation.Duration = &duration
		}
		opts.Animation = animation
	}
	if sub := asObject(obj.Get("overlay")); sub != nil {
		overlay := &curtain.OverlayOptions{
			Background:   toString(sub.Get("background")),
			MixBlendMode: toString(sub.Get("mixBlendMode")),
		}
		if v := sub.Get("opacity"); isSet(v) {
			opacity := v.ToFloat()
			overlay.Opacity = &opacity
		}
		opts.Overlay = overlay
	}
	if sub := asObject(obj.Get("touchPosition")); sub != nil {
		opts.TouchPosition = &curtain.TouchPositionOptions{
			Start: curtain.Edge(toString(sub.Get("start"))),
			End:   curtain.Edge(toString(sub.Get("end"))),
		}
	}

	opts.ParentClass = toString(obj.Get("parentClass"))
	opts.ChildClass = toString(obj.Get("childClass"))
	opts.CurtainClass = toString(obj.Get("curtainClass"))
	opts.ParentAttrs = toStringMap(obj.Get("parentAttrs"))
	opts.ChildAttrs = toStringMap(obj.Get("childAttrs"))
	opts.CurtainAttrs = toStringMap(obj.Get("curtainAttrs"))
	opts.OnEnter = r.toCallback(obj.Get("onEnter"))
	opts.OnLeave = r.toCallback(obj.Get("onLeave"))
	return opts
}

// toCallback wraps a script function into a zero-argument Go callback.
// Script errors inside the callback are collected, not propagated.
func (r *Runtime) toCallback(value goja.Value) func() {
	if !isSet(value) {
		return nil
	}
	fn, ok := goja.AssertFunction(value)
	if !ok {
		return nil
	}
	return func() {
		if _, err := fn(goja.Undefined()); err != nil {
			r.recordError(err)
		}
	}
}

func isSet(value goja.Value) bool {
	return value != nil && !goja.IsUndefined(value) && !goja.IsNull(value)
}

func asObject(value goja.Value) *goja.Object {
	if !isSet(value) {
		return nil
	}
	obj, _ := value.(*goja.Object)
	return obj
}

func toString(value goja.Value) string {
	if !isSet(value) {
		return ""
	}
	return value.String()
}

func toFloat(value goja.Value) float64 {
	if !isSet(value) {
		return 0
	}
	return value.ToFloat()
}

func toStringMap(value goja.Value) map[string]string {
	obj := asObject(value)
	if obj == nil {
		return nil
	}
	out := make(map[string]string)
	for _, key := range obj.Keys() {
		out[key] = toString(obj.Get(key))
	}
	return out
}
