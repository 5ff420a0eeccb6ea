package anim

import (
	"math"
	"strings"
)

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// powerIn returns a polynomial ease-in of the given degree.
func powerIn(degree float64) EaseFunc {
	return func(t float64) float64 {
		return math.Pow(t, degree)
	}
}

// powerOut returns a polynomial ease-out of the given degree.
func powerOut(degree float64) EaseFunc {
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, degree)
	}
}

// powerInOut returns a polynomial ease that accelerates then decelerates.
func powerInOut(degree float64) EaseFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, degree) / 2
		}
		return 1 - math.Pow(2*(1-t), degree)/2
	}
}

// EaseByName resolves a GSAP-style easing name: "none", "linear", or
// "powerN" with an optional ".in", ".out" or ".inOut" suffix (N in 1..4).
// A bare "powerN" means "powerN.out". Unknown names resolve to Linear.
func EaseByName(name string) EaseFunc {
	name = strings.TrimSpace(name)
	switch name {
	case "", "none", "linear":
		return Linear
	}

	base := name
	variant := "out"
	if dot := strings.Index(name, "."); dot >= 0 {
		base = name[:dot]
		variant = name[dot+1:]
	}

	var degree float64
	switch base {
	case "power1":
		degree = 2
	case "power2":
		degree = 3
	case "power3":
		degree = 4
	case "power4":
		degree = 5
	default:
		return Linear
	}

	switch variant {
	case "in":
		return powerIn(degree)
	case "out":
		return powerOut(degree)
	case "inOut":
		return powerInOut(degree)
	}
	return Linear
}
