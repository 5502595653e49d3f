package services

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

type CreateTaskInput struct {
	ProjectID uuid.UUID  `json:"project"`
	UserID    uuid.UUID  `json:"user"`
	TaskName  string     `json:"task_name"`
	DueDate   *time.Time `json:"due_date"`
	Priority  int        `json:"priority"`
}

type UpdateTaskInput struct {
	ProjectID uuid.UUID  `json:"project"`
	UserID    uuid.UUID  `json:"user"`
	TaskName  string     `json:"task_name"`
	DueDate   *time.Time `json:"due_date"`
	Priority  int        `json:"priority"`
	Status    string     `json:"status"`
}

type TaskService interface {
	CreateTask(db *gorm.DB, actor models.Actor, input CreateTaskInput) (*models.Task, error)
	UpdateTask(db *gorm.DB, actor models.Actor, taskID uuid.UUID, input UpdateTaskInput) (*models.Task, error)
	DeleteTask(db *gorm.DB, actor models.Actor, taskID uuid.UUID) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, actor models.Actor, input CreateTaskInput) (*models.Task, error) {
	if !IsAuthenticated(actor) {
		return nil, PermissionError("User not authenticated")
	}

	if input.ProjectID == uuid.Nil || input.UserID == uuid.Nil ||
		input.TaskName == "" || input.DueDate == nil || input.Priority == 0 {
		return nil, ValidationError("Please fill in all fields")
	}

	if input.Priority < models.PriorityMin || input.Priority > models.PriorityMax {
		return nil, ValidationError("Priority must be between 1 and 5")
	}

	task := models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		ProjectID:   input.ProjectID,
		TaskName:    input.TaskName,
		UserID:      input.UserID,
		DueDate:     *input.DueDate,
		Priority:    input.Priority,
		Status:      models.StatusTodo,
		CreatedByID: actor.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(&task).Error; err != nil {
		return nil, InternalError(err)
	}

	return &task, nil
}

// UpdateTask overwrites the supplied fields of an existing task. Any
// authenticated or anonymous actor may update any task. When the status
// field is omitted the task status is reset to "todo" regardless of its
// previous value.
func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, actor models.Actor, taskID uuid.UUID, input UpdateTaskInput) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("Task not found")
		}
		return nil, InternalError(err)
	}

	if input.ProjectID != uuid.Nil {
		task.ProjectID = input.ProjectID
	}
	if input.UserID != uuid.Nil {
		task.UserID = input.UserID
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.TaskName != "" {
		taken, err := taskNameTaken(db, input.TaskName, taskID)
		if err != nil {
			return nil, InternalError(err)
		}
		if taken {
			return nil, ConflictError("Another task with the same name already exists")
		}
		task.TaskName = input.TaskName
	}
	if input.Priority != 0 {
		if input.Priority < models.PriorityMin || input.Priority > models.PriorityMax {
			return nil, ValidationError("Priority must be between 1 and 5")
		}
		task.Priority = input.Priority
	}
	if input.Status != "" {
		if !models.ValidStatus(input.Status) {
			return nil, ValidationError("Invalid task status")
		}
		task.Status = input.Status
	} else {
		task.Status = models.StatusTodo
	}

	task.UpdatedAt = time.Now()
	if err := db.Save(&task).Error; err != nil {
		return nil, InternalError(err)
	}

	return &task, nil
}

// DeleteTask removes a task and its comments. No ownership check is
// applied.
func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, actor models.Actor, taskID uuid.UUID) error {
	var task models.Task
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFoundError("Task not found")
		}
		return InternalError(err)
	}

	if err := repositories.DeleteTaskCascade(db, taskID); err != nil {
		return InternalError(err)
	}

	return nil
}

func taskNameTaken(db *gorm.DB, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Task{}).
		Where("task_name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
