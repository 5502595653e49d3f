package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/services"
)

type CommentHandler struct {
	db             *gorm.DB
	commentService services.CommentService
}

func NewCommentHandler(db *gorm.DB, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{db: db, commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input services.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	comment, err := h.commentService.CreateComment(h.db, actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id": comment.ID,
	})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid comment ID"))
		return
	}

	var input services.UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	if _, err := h.commentService.UpdateComment(h.db, actor, commentID, input); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid comment ID"))
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.commentService.DeleteComment(h.db, actor, commentID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}
