package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/services"
)

type ProjectHandler struct {
	db             *gorm.DB
	projectService services.ProjectService
	queries        *services.CachedQueryService
}

func NewProjectHandler(db *gorm.DB, projectService services.ProjectService, queries *services.CachedQueryService) *ProjectHandler {
	return &ProjectHandler{db: db, projectService: projectService, queries: queries}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input services.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	project, err := h.projectService.CreateProject(h.db, actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.queries != nil {
		h.queries.InvalidateProjects()
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":           project.ID,
		"project_name": project.ProjectName,
		"due_date":     project.DueDate,
	})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid project ID"))
		return
	}

	var input services.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	project, err := h.projectService.UpdateProject(h.db, actor, projectID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.queries != nil {
		h.queries.InvalidateProjects()
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"project_name": project.ProjectName,
		"due_date":     project.DueDate,
	})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid project ID"))
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.projectService.DeleteProject(h.db, actor, projectID); err != nil {
		respondError(c, err)
		return
	}

	if h.queries != nil {
		h.queries.InvalidateProjects()
		// Cascaded task deletes change per-user stats.
		h.queries.InvalidateStats(uuid.Nil)
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}
