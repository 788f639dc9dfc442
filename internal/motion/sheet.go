package motion

import (
	"fmt"
	"io"
	"strings"
)

const (
	classPrefix     = "m-"
	gestureDuration = 0.2
)

// Sheet collects motions under class names and compiles them into one
// stylesheet. Register everything before serving; a Sheet is not safe for
// concurrent registration
type Sheet struct {
	exitScope string
	entries   []entry
	seen      map[string]bool
}

type entry struct {
	class  string
	motion Motion
}

// NewSheet creates a Sheet. Exit states are applied to elements inside an
// ancestor carrying exitScope
func NewSheet(exitScope string) *Sheet {
	return &Sheet{
		exitScope: exitScope,
		seen:      make(map[string]bool),
	}
}

// Class registers m and returns the class name to put on the element
// Registering the same name twice panics
func (s *Sheet) Class(name string, m Motion) string {
	class := classPrefix + name
	if s.seen[class] {
		panic(fmt.Sprintf("motion: class %q registered twice", class))
	}
	s.seen[class] = true
	s.entries = append(s.entries, entry{class: class, motion: m})
	return class
}

// Classes returns the registered class names in registration order
func (s *Sheet) Classes() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.class
	}
	return out
}

// CSS compiles the sheet
func (s *Sheet) CSS() string {
	var b strings.Builder
	for _, e := range s.entries {
		s.writeEntry(&b, e)
	}
	return b.String()
}

// WriteTo writes the compiled sheet to w
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.CSS())
	return int64(n), err
}

func (s *Sheet) writeEntry(b *strings.Builder, e entry) {
	m := e.motion
	sel := "." + e.class

	var base []string
	if m.entrance() {
		name := e.class + "-in"
		writeKeyframes(b, name, m)
		t := m.Transition
		base = append(base, fmt.Sprintf("animation: %s %s %s %s %s backwards",
			name, seconds(t.duration()), t.ease(), seconds(t.Delay), t.iterations()))
	}
	if m.gestures() {
		base = append(base, fmt.Sprintf("transition: transform %s %s", seconds(gestureDuration), defaultEase))
	}
	writeRule(b, sel, base)

	writeRule(b, sel+":hover", m.Hover.declarations())
	writeRule(b, sel+":active", m.Tap.declarations())
	writeRule(b, sel+":focus", m.Focus.declarations())

	if !m.Exit.IsZero() && s.exitScope != "" {
		decls := m.Exit.declarations()
		decls = append(decls, fmt.Sprintf("transition-property: %s", strings.Join(m.Exit.properties(), ", ")))
		decls = append(decls, "transition-duration: "+seconds(m.Transition.duration()))
		decls = append(decls, "transition-timing-function: "+m.Transition.ease())
		writeRule(b, "."+s.exitScope+" "+sel, decls)
	}
}

func writeKeyframes(b *strings.Builder, name string, m Motion) {
	fmt.Fprintf(b, "@keyframes %s {\n", name)
	if len(m.Keyframes) > 0 {
		last := len(m.Keyframes) - 1
		for i, frame := range m.Keyframes {
			stop := "100%"
			if last > 0 {
				stop = num(float64(i)*100/float64(last)) + "%"
			}
			writeStop(b, stop, frame.declarations())
		}
	} else {
		writeStop(b, "from", m.Initial.declarations())
		writeStop(b, "to", m.Animate.declarations())
	}
	b.WriteString("}\n")
}

func writeStop(b *strings.Builder, stop string, decls []string) {
	if len(decls) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s { %s; }\n", stop, strings.Join(decls, "; "))
}

func writeRule(b *strings.Builder, sel string, decls []string) {
	if len(decls) == 0 {
		return
	}
	fmt.Fprintf(b, "%s {\n", sel)
	for _, d := range decls {
		fmt.Fprintf(b, "  %s;\n", d)
	}
	b.WriteString("}\n")
}
