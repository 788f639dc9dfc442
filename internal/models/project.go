package models

// PlaceholderImage is the image path shared by the seed projects
const PlaceholderImage = "/api/placeholder/400/300"

// Project represents a portfolio project
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// SeedProjects returns a fresh copy of the three portfolio projects
func SeedProjects() []Project {
	return []Project{
		{
			ID:          1,
			Title:       "Creative Design",
			Description: "Innovative UI/UX design project",
			Image:       PlaceholderImage,
		},
		{
			ID:          2,
			Title:       "Web Development",
			Description: "Full-stack application with modern technologies",
			Image:       PlaceholderImage,
		},
		{
			ID:          3,
			Title:       "Mobile App",
			Description: "Cross-platform mobile application",
			Image:       PlaceholderImage,
		},
	}
}
