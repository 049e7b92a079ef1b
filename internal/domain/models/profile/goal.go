package profile

import (
	"time"
)

// Goal is a persisted career goal on the student's profile page.
type Goal struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Deadline  string    `json:"deadline" db:"deadline"`
	Progress  int       `json:"progress" db:"progress"` // 0-100
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Stats is the single-row exploration summary shown on the profile page.
// Last write wins; there is no per-user scoping.
type Stats struct {
	PathsExplored    int `json:"pathsExplored" db:"paths_explored"`
	AlumniConnected  int `json:"alumniConnected" db:"alumni_connected"`
	GoalsCompleted   int `json:"goalsCompleted" db:"goals_completed"`
	ExplorationScore int `json:"explorationScore" db:"exploration_score"`
}
