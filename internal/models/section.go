package models

import (
	"unicode"
	"unicode/utf8"
)

// Section identifies which layout is displayed in the content area
type Section string

const (
	SectionHome     Section = "home"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

// DefaultSection is the section shown before any navigation
const DefaultSection = SectionHome

var knownSections = []Section{SectionHome, SectionProjects, SectionContact}

// KnownSections returns the navigable sections in display order
func KnownSections() []Section {
	out := make([]Section, len(knownSections))
	copy(out, knownSections)
	return out
}

// Known reports whether s is one of the navigable sections
func (s Section) Known() bool {
	for _, k := range knownSections {
		if s == k {
			return true
		}
	}
	return false
}

// Label returns the capitalized name used on navigation controls
func (s Section) Label() string {
	r, size := utf8.DecodeRuneInString(string(s))
	if r == utf8.RuneError {
		return string(s)
	}
	return string(unicode.ToUpper(r)) + string(s[size:])
}

func (s Section) String() string {
	return string(s)
}
