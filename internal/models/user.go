package models

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleNormal = "normal"
)

// ValidRole reports whether role is one of the recognized role names.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleNormal
}

type User struct {
	ID       uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Username string    `json:"username" gorm:"unique;not null"`
	Email    string    `json:"email" gorm:"unique;not null"`
	Password string    `json:"-" gorm:"not null"`
	Role     string    `json:"role" gorm:"not null;default:'normal'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedProjects []Project `json:"created_projects,omitempty" gorm:"foreignKey:CreatedByID"`
	AssignedTasks   []Task    `json:"assigned_tasks,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
