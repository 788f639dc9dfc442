package services

import (
	"sync"

	"dconn.dev/portfolio/internal/models"
)

// ViewState holds what one visitor's page is showing: the active section
// and the project list it was seeded with
type ViewState struct {
	mu       sync.RWMutex
	active   models.Section
	projects []models.Project
}

// NewViewState starts on the default section with a copy of projects
func NewViewState(projects []models.Project) *ViewState {
	seed := make([]models.Project, len(projects))
	copy(seed, projects)
	return &ViewState{
		active:   models.DefaultSection,
		projects: seed,
	}
}

// ActiveSection returns the section currently shown
func (v *ViewState) ActiveSection() models.Section {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.active
}

// SetActiveSection replaces the active section and reports whether it
// changed. Any value is accepted; unknown sections render an empty
// content area
func (v *ViewState) SetActiveSection(name models.Section) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.active != name
	v.active = name
	return changed
}

// Projects returns a copy of the seeded project list
func (v *ViewState) Projects() []models.Project {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]models.Project, len(v.projects))
	copy(out, v.projects)
	return out
}
