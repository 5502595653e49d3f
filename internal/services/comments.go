package services

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

type CreateCommentInput struct {
	TaskID     uuid.UUID `json:"task"`
	FromUserID uuid.UUID `json:"from_user"`
	ToUserID   uuid.UUID `json:"to_user"`
	Body       string    `json:"comment"`
}

type UpdateCommentInput struct {
	FromUserID uuid.UUID `json:"from_user"`
	ToUserID   uuid.UUID `json:"to_user"`
	Body       string    `json:"comment"`
}

type CommentService interface {
	CreateComment(db *gorm.DB, actor models.Actor, input CreateCommentInput) (*models.Comment, error)
	UpdateComment(db *gorm.DB, actor models.Actor, commentID uuid.UUID, input UpdateCommentInput) (*models.Comment, error)
	DeleteComment(db *gorm.DB, actor models.Actor, commentID uuid.UUID) error
}

type CommentServiceImpl struct{}

func NewCommentService() *CommentServiceImpl {
	return &CommentServiceImpl{}
}

func (s *CommentServiceImpl) CreateComment(db *gorm.DB, actor models.Actor, input CreateCommentInput) (*models.Comment, error) {
	if !IsAuthenticated(actor) {
		return nil, PermissionError("User not authenticated")
	}

	if input.TaskID == uuid.Nil || input.FromUserID == uuid.Nil || input.ToUserID == uuid.Nil {
		return nil, ValidationError("Please fill in all fields")
	}

	if len(input.Body) > models.MaxCommentLength {
		return nil, ValidationError("Comment must be at most 500 characters")
	}

	comment := models.Comment{
		ID:         uuid.Must(uuid.NewV4()),
		TaskID:     input.TaskID,
		Body:       input.Body,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := db.Create(&comment).Error; err != nil {
		return nil, InternalError(err)
	}

	return &comment, nil
}

// UpdateComment overwrites the supplied fields of an existing comment.
// No ownership check is applied on update.
func (s *CommentServiceImpl) UpdateComment(db *gorm.DB, actor models.Actor, commentID uuid.UUID, input UpdateCommentInput) (*models.Comment, error) {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("Comment not found")
		}
		return nil, InternalError(err)
	}

	if input.FromUserID != uuid.Nil {
		comment.FromUserID = input.FromUserID
	}
	if input.ToUserID != uuid.Nil {
		comment.ToUserID = input.ToUserID
	}
	if input.Body != "" {
		if len(input.Body) > models.MaxCommentLength {
			return nil, ValidationError("Comment must be at most 500 characters")
		}
		comment.Body = input.Body
	}

	comment.UpdatedAt = time.Now()
	if err := db.Save(&comment).Error; err != nil {
		return nil, InternalError(err)
	}

	return &comment, nil
}

// DeleteComment removes a comment. Only the sender may delete it.
func (s *CommentServiceImpl) DeleteComment(db *gorm.DB, actor models.Actor, commentID uuid.UUID) error {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFoundError("Comment not found")
		}
		return InternalError(err)
	}

	if !IsCommentOwner(actor, &comment) {
		return PermissionError("You can only delete your own comments")
	}

	if err := db.Delete(&models.Comment{}, "id = ?", commentID).Error; err != nil {
		return InternalError(err)
	}

	return nil
}
