package services

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

// TaskStats summarizes the tasks assigned to one actor. Tasks in the
// "doing" state are counted in neither bucket.
type TaskStats struct {
	Completed         int64         `json:"completed"`
	Incompleted       int64         `json:"incompleted"`
	TopImportantTasks []models.Task `json:"topImportantTasks"`
}

// QueryService is the read-only facade over the record store.
type QueryService interface {
	ListUsers(db *gorm.DB, id *uuid.UUID) ([]models.User, error)
	ListProjects(db *gorm.DB) ([]models.Project, error)
	ListTasks(db *gorm.DB, actor models.Actor, createdOnly bool) ([]models.Task, error)
	ListComments(db *gorm.DB, taskID, id *uuid.UUID) ([]models.Comment, error)
	Stats(db *gorm.DB, actor models.Actor) (*TaskStats, error)
}

type QueryServiceImpl struct{}

func NewQueryService() *QueryServiceImpl {
	return &QueryServiceImpl{}
}

func (s *QueryServiceImpl) ListUsers(db *gorm.DB, id *uuid.UUID) ([]models.User, error) {
	users := []models.User{}
	query := db.Order("created_at ASC")
	if id != nil {
		query = query.Where("id = ?", *id)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, InternalError(err)
	}
	return users, nil
}

func (s *QueryServiceImpl) ListProjects(db *gorm.DB) ([]models.Project, error) {
	projects := []models.Project{}
	if err := db.Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, InternalError(err)
	}
	return projects, nil
}

// ListTasks returns the tasks assigned to the actor, or the tasks the
// actor created when createdOnly is set. Anonymous actors always get an
// empty result regardless of the flag.
func (s *QueryServiceImpl) ListTasks(db *gorm.DB, actor models.Actor, createdOnly bool) ([]models.Task, error) {
	tasks := []models.Task{}
	if !IsAuthenticated(actor) {
		return tasks, nil
	}

	query := db.Order("created_at ASC")
	if createdOnly {
		query = query.Where("created_by_id = ?", actor.ID)
	} else {
		query = query.Where("user_id = ?", actor.ID)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, InternalError(err)
	}
	return tasks, nil
}

func (s *QueryServiceImpl) ListComments(db *gorm.DB, taskID, id *uuid.UUID) ([]models.Comment, error) {
	comments := []models.Comment{}
	query := db.Order("created_at ASC")
	if taskID != nil {
		query = query.Where("task_id = ?", *taskID)
	} else if id != nil {
		query = query.Where("id = ?", *id)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, InternalError(err)
	}
	return comments, nil
}

// Stats counts the actor's done and todo tasks and lists all of the
// actor's tasks ordered by descending priority. The ordering is stable:
// ties keep insertion order.
func (s *QueryServiceImpl) Stats(db *gorm.DB, actor models.Actor) (*TaskStats, error) {
	stats := &TaskStats{TopImportantTasks: []models.Task{}}

	err := db.Model(&models.Task{}).
		Where("user_id = ? AND status = ?", actor.ID, models.StatusDone).
		Count(&stats.Completed).Error
	if err != nil {
		return nil, InternalError(err)
	}

	err = db.Model(&models.Task{}).
		Where("user_id = ? AND status = ?", actor.ID, models.StatusTodo).
		Count(&stats.Incompleted).Error
	if err != nil {
		return nil, InternalError(err)
	}

	err = db.Where("user_id = ?", actor.ID).
		Order("priority DESC, created_at ASC").
		Find(&stats.TopImportantTasks).Error
	if err != nil {
		return nil, InternalError(err)
	}

	return stats, nil
}
