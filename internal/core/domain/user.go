package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User identity is immutable after creation except for the password.
// Depending on the role, either Email (role=user) or Username+Hospital
// (role=admin) carries the login identity.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	BloodGroup string    `json:"blood_group"`
	Mobile     string    `json:"mobile"`
	Email      string    `json:"email,omitempty"`
	Username   string    `json:"username,omitempty"`
	Hospital   string    `json:"hospital,omitempty"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
