package services

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

type CreateProjectInput struct {
	ProjectName string     `json:"project_name"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateProjectInput struct {
	ProjectName string     `json:"project_name"`
	DueDate     *time.Time `json:"due_date"`
}

type ProjectService interface {
	CreateProject(db *gorm.DB, actor models.Actor, input CreateProjectInput) (*models.Project, error)
	UpdateProject(db *gorm.DB, actor models.Actor, projectID uuid.UUID, input UpdateProjectInput) (*models.Project, error)
	DeleteProject(db *gorm.DB, actor models.Actor, projectID uuid.UUID) error
}

type ProjectServiceImpl struct{}

func NewProjectService() *ProjectServiceImpl {
	return &ProjectServiceImpl{}
}

func (s *ProjectServiceImpl) CreateProject(db *gorm.DB, actor models.Actor, input CreateProjectInput) (*models.Project, error) {
	if !IsAdmin(actor) {
		return nil, PermissionError("Only admin can create a project")
	}

	if input.ProjectName == "" || input.DueDate == nil {
		return nil, ValidationError("Please fill in all fields")
	}

	taken, err := projectNameTaken(db, input.ProjectName, uuid.Nil)
	if err != nil {
		return nil, InternalError(err)
	}
	if taken {
		return nil, ConflictError("Project already exists")
	}

	project := models.Project{
		ID:          uuid.Must(uuid.NewV4()),
		ProjectName: input.ProjectName,
		DueDate:     *input.DueDate,
		CreatedByID: actor.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(&project).Error; err != nil {
		return nil, InternalError(err)
	}

	return &project, nil
}

func (s *ProjectServiceImpl) UpdateProject(db *gorm.DB, actor models.Actor, projectID uuid.UUID, input UpdateProjectInput) (*models.Project, error) {
	if !IsAdmin(actor) {
		return nil, PermissionError("Only admin can update a project")
	}

	var project models.Project
	if err := db.First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("Project not found")
		}
		return nil, InternalError(err)
	}

	if input.ProjectName != "" {
		taken, err := projectNameTaken(db, input.ProjectName, projectID)
		if err != nil {
			return nil, InternalError(err)
		}
		if taken {
			return nil, ConflictError("Another project with the same name already exists")
		}
		project.ProjectName = input.ProjectName
	}

	if input.DueDate != nil {
		project.DueDate = *input.DueDate
	}

	project.UpdatedAt = time.Now()
	if err := db.Save(&project).Error; err != nil {
		return nil, InternalError(err)
	}

	return &project, nil
}

// DeleteProject removes a project, its tasks and their comments.
func (s *ProjectServiceImpl) DeleteProject(db *gorm.DB, actor models.Actor, projectID uuid.UUID) error {
	if !IsAdmin(actor) {
		return PermissionError("Only admin can delete a project")
	}

	var project models.Project
	if err := db.First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFoundError("Project not found")
		}
		return InternalError(err)
	}

	if err := repositories.DeleteProjectCascade(db, projectID); err != nil {
		return InternalError(err)
	}

	return nil
}

func projectNameTaken(db *gorm.DB, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Project{}).
		Where("project_name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
