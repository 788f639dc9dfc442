package motion

import (
	"fmt"
	"math"
)

// Infinite repeats an animation forever
const Infinite = -1

// DefaultDuration applies when a Transition leaves Duration unset
const DefaultDuration = 0.3

const defaultEase = "ease-out"

// Transition holds timing for an animation. Times are in seconds
type Transition struct {
	Duration float64
	Delay    float64
	// DelayChildren and StaggerChildren only affect Variants children
	DelayChildren   float64
	StaggerChildren float64
	// Repeat is the number of extra iterations, or Infinite
	Repeat int
	Ease   string
}

func (t Transition) duration() float64 {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

func (t Transition) ease() string {
	if t.Ease == "" {
		return defaultEase
	}
	return t.Ease
}

func (t Transition) iterations() string {
	if t.Repeat == Infinite {
		return "infinite"
	}
	return fmt.Sprint(t.Repeat + 1)
}

// Motion is the full description of how one element moves: how it enters,
// how it loops, how it leaves and how it reacts to pointer and focus
type Motion struct {
	Initial Target
	Animate Target
	// Keyframes, when present, replace the Initial/Animate pair with a
	// sequence of evenly spaced stops
	Keyframes  []Target
	Exit       Target
	Transition Transition
	Hover      Target
	Tap        Target
	Focus      Target
}

func (m Motion) entrance() bool {
	return len(m.Keyframes) > 0 || !m.Initial.IsZero() || !m.Animate.IsZero()
}

func (m Motion) gestures() bool {
	return !m.Hover.IsZero() || !m.Tap.IsZero() || !m.Focus.IsZero()
}

// Variants is a named pair of states shared by a container and its
// children. The container's transition staggers the children
type Variants struct {
	Hidden     Target
	Visible    Target
	Transition Transition
}

// Motion returns the container's own entrance
func (v Variants) Motion() Motion {
	return Motion{
		Initial:    v.Hidden,
		Animate:    v.Visible,
		Transition: v.Transition,
	}
}

// ChildDelay is the start delay of the i-th child (0-based)
func (v Variants) ChildDelay(i int) float64 {
	return v.Transition.DelayChildren + float64(i)*v.Transition.StaggerChildren
}

// Child returns the entrance of the i-th child using the child's variants
func (v Variants) Child(i int, child Variants) Motion {
	m := child.Motion()
	m.Transition.Delay += v.ChildDelay(i)
	return m
}

// DelayStyle is an inline style that shifts an element's animation start
func DelayStyle(delay float64) string {
	return "animation-delay: " + seconds(delay)
}

// Mode controls how an outgoing and an incoming tree overlap
type Mode int

const (
	// Sync swaps immediately
	Sync Mode = iota
	// Wait removes the outgoing tree after its exit finishes and only then
	// inserts the incoming one
	Wait
)

// Presence describes the swap of keyed content
type Presence struct {
	Mode Mode
	Exit Transition
}

// SwapValue returns an hx-swap value for the given swap style
func (p Presence) SwapValue(style string) string {
	if p.Mode != Wait {
		return style
	}
	ms := int(math.Round(p.Exit.duration() * 1000))
	return fmt.Sprintf("%s swap:%dms", style, ms)
}
