package domain

// UserRole is the role attached to an authenticated user.
type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
)

// User is an operator of the dashboard. Authentication is a placeholder
// credential check against a seeded admin user.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
}
