package repositories

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

// Cascade deletes are explicit rather than delegated to foreign-key
// constraints: dependents are removed child-first (Comment, then Task,
// then Project) inside a single transaction so a delete is all-or-nothing.

// DeleteTaskCascade removes a task and its comments.
func DeleteTaskCascade(db *gorm.DB, taskID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteTaskInTx(tx, taskID)
	})
}

// DeleteProjectCascade removes a project, its tasks and their comments.
func DeleteProjectCascade(db *gorm.DB, projectID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProjectInTx(tx, projectID); err != nil {
			return err
		}
		return nil
	})
}

// DeleteUserCascade removes a user together with every record that
// references them: projects they created (and those projects' tasks and
// comments), tasks they are assigned to or created, and comments they
// sent or received.
func DeleteUserCascade(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var projectIDs []uuid.UUID
		if err := tx.Model(&models.Project{}).
			Where("created_by_id = ?", userID).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if err := deleteProjectInTx(tx, projectID); err != nil {
				return err
			}
		}

		var taskIDs []uuid.UUID
		if err := tx.Model(&models.Task{}).
			Where("user_id = ? OR created_by_id = ?", userID, userID).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		for _, taskID := range taskIDs {
			if err := deleteTaskInTx(tx, taskID); err != nil {
				return err
			}
		}

		if err := tx.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&models.Token{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}

func deleteProjectInTx(tx *gorm.DB, projectID uuid.UUID) error {
	var taskIDs []uuid.UUID
	if err := tx.Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Pluck("id", &taskIDs).Error; err != nil {
		return err
	}
	for _, taskID := range taskIDs {
		if err := deleteTaskInTx(tx, taskID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Project{}, "id = ?", projectID).Error
}

func deleteTaskInTx(tx *gorm.DB, taskID uuid.UUID) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Task{}, "id = ?", taskID).Error
}
