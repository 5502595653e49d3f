package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/services"
	"taskboard/backend/internal/worker"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
	queries     *services.CachedQueryService
	jobQueue    *worker.JobQueue
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService, queries *services.CachedQueryService, jobQueue *worker.JobQueue) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService, queries: queries, jobQueue: jobQueue}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input services.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	task, err := h.taskService.CreateTask(h.db, actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := worker.EnqueueTaskReminder(h.jobQueue, task); err != nil {
		log.Printf("failed to enqueue reminder for task %s: %v", task.ID, err)
	}
	if h.queries != nil {
		h.queries.InvalidateStats(task.UserID)
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":        task.ID,
		"task_name": task.TaskName,
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid task ID"))
		return
	}

	var input services.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	task, err := h.taskService.UpdateTask(h.db, actor, taskID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	// The assignee may have changed, so drop every cached stats entry.
	if h.queries != nil {
		h.queries.InvalidateStats(uuid.Nil)
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"task_name": task.TaskName,
		"status":    task.Status,
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		respondError(c, services.ValidationError("Invalid task ID"))
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.taskService.DeleteTask(h.db, actor, taskID); err != nil {
		respondError(c, err)
		return
	}

	if h.queries != nil {
		h.queries.InvalidateStats(uuid.Nil)
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}
