package model

import "math"

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectUpcoming  ProjectStatus = "Upcoming"
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
)

// Milestone is a single deliverable within a project.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Project tracks client work with milestone-derived progress.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Client      string        `json:"client"`
	Status      ProjectStatus `json:"status"`
	Description string        `json:"description"`
	Milestones  []Milestone   `json:"milestones"`
	Documents   []string      `json:"documents"`
	Progress    int           `json:"progress"` // 0-100, derived from milestones
}

// ProgressFor computes completion percentage from milestones.
// Returns 0 when there are no milestones.
func ProgressFor(milestones []Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range milestones {
		if m.IsCompleted {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(milestones))))
}
