package models

import (
	"time"
)

// User defines the account model based on the 'users' table.
// Students are identified by Roll, faculty by Email; exactly one of the
// two is populated depending on Role.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"John Doe"`
	Roll      *string   `json:"roll,omitempty" db:"roll" example:"21CS045"`
	Email     *string   `json:"email,omitempty" db:"email" example:"reviewer@college.edu"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// Identifier returns the role-scoped login identifier: roll for students,
// email for faculty.
func (u *User) Identifier() string {
	switch u.Role {
	case RoleStudent:
		if u.Roll != nil {
			return *u.Roll
		}
	case RoleFaculty:
		if u.Email != nil {
			return *u.Email
		}
	}
	return ""
}
