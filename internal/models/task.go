package models

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

const (
	PriorityMin = 1
	PriorityMax = 5
)

// ValidStatus reports whether status is one of the enumerated task states.
func ValidStatus(status string) bool {
	return status == StatusTodo || status == StatusDoing || status == StatusDone
}

type Task struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null"`
	TaskName  string    `json:"task_name" gorm:"not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	DueDate   time.Time `json:"due_date" gorm:"not null"`
	Priority  int       `json:"priority" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:'todo'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedByID uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID"`
}
