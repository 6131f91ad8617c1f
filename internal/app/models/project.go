package models

import "time"

// Project defines the project model based on the 'projects' table
type Project struct {
	ID          int64      `json:"project_id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	StartDate   *time.Time `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	MentorID    int64      `json:"mentor_id" db:"mentor_id"`
}

// StudentProject is a project row annotated with the student's role in
// the team, for the membership listing.
type StudentProject struct {
	Project
	RoleInTeam string `json:"role_in_team" db:"role_in_team"`
}

// TeamMember defines a team membership row linking a student to a project
type TeamMember struct {
	ID         int64  `json:"team_id" db:"id"`
	ProjectID  int64  `json:"project_id" db:"project_id"`
	StudentID  int64  `json:"student_id" db:"student_id"`
	RoleInTeam string `json:"role_in_team" db:"role_in_team"`
}

// TeamMemberDetail is a team row joined with the member's user record
type TeamMemberDetail struct {
	TeamID     int64  `json:"team_id" db:"team_id"`
	RoleInTeam string `json:"role_in_team" db:"role_in_team"`
	UserID     int64  `json:"user_id" db:"user_id"`
	Name       string `json:"name" db:"name"`
	Email      string `json:"email" db:"email"`
}
