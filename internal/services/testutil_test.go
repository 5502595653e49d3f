package services_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedProject(t *testing.T, db *gorm.DB, name string, createdBy uuid.UUID) *models.Project {
	t.Helper()

	project := &models.Project{
		ID:          uuid.Must(uuid.NewV4()),
		ProjectName: name,
		DueDate:     time.Now().Add(30 * 24 * time.Hour),
		CreatedByID: createdBy,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project %s: %v", name, err)
	}
	return project
}

func seedTask(t *testing.T, db *gorm.DB, name string, projectID, assigneeID, createdBy uuid.UUID, priority int, status string) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		ProjectID:   projectID,
		TaskName:    name,
		UserID:      assigneeID,
		DueDate:     time.Now().Add(7 * 24 * time.Hour),
		Priority:    priority,
		Status:      status,
		CreatedByID: createdBy,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task %s: %v", name, err)
	}
	return task
}

func seedComment(t *testing.T, db *gorm.DB, taskID, from, to uuid.UUID, body string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:         uuid.Must(uuid.NewV4()),
		TaskID:     taskID,
		Body:       body,
		FromUserID: from,
		ToUserID:   to,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	return comment
}

func actorFor(user *models.User) models.Actor {
	return models.Actor{ID: user.ID, Role: user.Role, Authenticated: true}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
