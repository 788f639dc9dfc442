package services

import (
	"fmt"

	"dconn.dev/portfolio/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects models.ProjectList
}

// NewProjectService creates a new ProjectService over a private copy of projects
func NewProjectService(projects []models.Project) *ProjectService {
	list := models.ProjectList{Projects: make([]models.Project, len(projects))}
	copy(list.Projects, projects)
	return &ProjectService{projects: list}
}

// GetAll returns all projects in seed order. The slice is a copy
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects.Projects))
	copy(out, s.projects.Projects)
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (models.Project, error) {
	for _, p := range s.projects.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project not found: %d", id)
}
