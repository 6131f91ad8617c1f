package models

// RoleType represents a user role
type RoleType string

// User roles
const (
	RoleStudent RoleType = "student"
	RoleMentor  RoleType = "mentor"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// Application status values. These are defaults and display conventions only;
// the API writes caller-provided status strings verbatim.
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Task status values (convention, not enforced server-side)
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)
