// Package motion describes element animations as plain data and compiles
// them into CSS. Nothing here animates anything: the browser does
package motion

import (
	"math"
	"strconv"
	"strings"
)

type value struct {
	v   float64
	set bool
}

// Target is a set of animatable properties. Unset properties are left
// alone by the compiled CSS
type Target struct {
	opacity value
	x       value
	y       value
	scale   value
}

// To starts an empty Target
func To() Target {
	return Target{}
}

// Opacity sets the opacity, 0 to 1
func (t Target) Opacity(v float64) Target {
	t.opacity = value{v: v, set: true}
	return t
}

// X sets the horizontal offset in pixels
func (t Target) X(px float64) Target {
	t.x = value{v: px, set: true}
	return t
}

// Y sets the vertical offset in pixels
func (t Target) Y(px float64) Target {
	t.y = value{v: px, set: true}
	return t
}

// Scale sets the uniform scale factor
func (t Target) Scale(v float64) Target {
	t.scale = value{v: v, set: true}
	return t
}

// IsZero reports whether no property is set
func (t Target) IsZero() bool {
	return !t.opacity.set && !t.x.set && !t.y.set && !t.scale.set
}

// declarations renders the target as CSS declarations in a fixed order
func (t Target) declarations() []string {
	var decls []string
	if t.opacity.set {
		decls = append(decls, "opacity: "+num(t.opacity.v))
	}
	if tf := t.transform(); tf != "" {
		decls = append(decls, "transform: "+tf)
	}
	return decls
}

func (t Target) transform() string {
	var parts []string
	if t.x.set || t.y.set {
		parts = append(parts, "translate("+num(t.x.v)+"px, "+num(t.y.v)+"px)")
	}
	if t.scale.set {
		parts = append(parts, "scale("+num(t.scale.v)+")")
	}
	return strings.Join(parts, " ")
}

func (t Target) properties() []string {
	var props []string
	if t.opacity.set {
		props = append(props, "opacity")
	}
	if t.x.set || t.y.set || t.scale.set {
		props = append(props, "transform")
	}
	return props
}

// num formats v with at most three decimals and no trailing zeros
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func seconds(v float64) string {
	return num(v) + "s"
}
