package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// MaxCommentLength caps the free-text body of a comment.
const MaxCommentLength = 500

type Comment struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	TaskID     uuid.UUID `json:"task_id" gorm:"type:uuid;not null"`
	Body       string    `json:"comment" gorm:"column:comment;size:500"`
	FromUserID uuid.UUID `json:"from_user" gorm:"type:uuid;not null"`
	ToUserID   uuid.UUID `json:"to_user" gorm:"type:uuid;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
