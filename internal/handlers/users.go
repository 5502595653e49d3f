package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/services"
)

type UserHandler struct {
	db          *gorm.DB
	userService services.UserService
	queries     *services.CachedQueryService
}

func NewUserHandler(db *gorm.DB, userService services.UserService, queries *services.CachedQueryService) *UserHandler {
	return &UserHandler{db: db, userService: userService, queries: queries}
}

// CreateUser handles public registration.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input services.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(h.db, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid user ID"))
		return
	}

	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	user, err := h.userService.UpdateUser(h.db, actor, userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid user ID"))
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.userService.DeleteUser(h.db, actor, userID); err != nil {
		respondError(c, err)
		return
	}

	// Cascade may have removed projects and tasks of any user.
	if h.queries != nil {
		h.queries.InvalidateStats(uuid.Nil)
		h.queries.InvalidateProjects()
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}
