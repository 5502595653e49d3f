package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/services"
)

type QueryHandler struct {
	db      *gorm.DB
	queries services.QueryService
}

func NewQueryHandler(db *gorm.DB, queries services.QueryService) *QueryHandler {
	return &QueryHandler{db: db, queries: queries}
}

func (h *QueryHandler) GetUsers(c *gin.Context) {
	id, ok := optionalUUIDQuery(c, "id")
	if !ok {
		return
	}

	users, err := h.queries.ListUsers(h.db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *QueryHandler) GetProjects(c *gin.Context) {
	projects, err := h.queries.ListProjects(h.db)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetTasks lists the actor's assigned tasks, or the tasks they created
// when ?created=true. Anonymous callers always get an empty list.
func (h *QueryHandler) GetTasks(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	createdOnly := c.Query("created") == "true"

	tasks, err := h.queries.ListTasks(h.db, actor, createdOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *QueryHandler) GetComments(c *gin.Context) {
	taskID, ok := optionalUUIDQuery(c, "task_id")
	if !ok {
		return
	}
	id, ok := optionalUUIDQuery(c, "id")
	if !ok {
		return
	}

	comments, err := h.queries.ListComments(h.db, taskID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *QueryHandler) GetStats(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	stats, err := h.queries.Stats(h.db, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// optionalUUIDQuery parses a uuid query parameter. It writes a validation
// response and returns ok=false when the value is present but malformed.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	id, err := uuid.FromString(value)
	if err != nil {
		respondError(c, services.ValidationError("Invalid "+name+" parameter"))
		return nil, false
	}
	return &id, true
}
