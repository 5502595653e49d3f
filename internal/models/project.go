package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectName string    `json:"project_name" gorm:"unique;not null"`
	DueDate     time.Time `json:"due_date" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedByID uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}
