package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "superAdmin"
)

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

type User struct {
	Id             uuid.UUID
	Email          string
	PasswordHash   string
	Role           UserRole
	FirstName      string
	LastName       string
	Company        string
	Phone          string
	Title          string
	CompanyAddress string
	City           string
	State          string
	Zipcode        string
	Trade          string
	TermsAccepted  bool
	Signature      string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Username is the display name attached to chat sessions and token claims.
func (u *User) Username() string {
	return u.FirstName + " " + u.LastName
}
