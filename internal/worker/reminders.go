package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

// RemindersQueue is the redis list holding due-date reminder jobs.
const RemindersQueue = "reminders"

// EnqueueTaskReminder schedules a reminder for a task at its due date.
func EnqueueTaskReminder(queue *JobQueue, task *models.Task) error {
	if queue == nil {
		return nil
	}
	return queue.EnqueueAt(RemindersQueue, JobTypeTaskReminder, map[string]interface{}{
		"task_id": task.ID.String(),
		"user_id": task.UserID.String(),
	}, task.DueDate)
}

// TaskReminderHandler looks up the task at processing time and logs the
// reminder. Tasks deleted or completed in the meantime are skipped.
func TaskReminderHandler(db *gorm.DB) JobHandler {
	return func(ctx context.Context, job *Job) error {
		taskID, ok := job.Payload["task_id"].(string)
		if !ok {
			return fmt.Errorf("task reminder job %s missing task_id", job.ID)
		}

		var task models.Task
		err := db.WithContext(ctx).First(&task, "id = ?", taskID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		if task.Status == models.StatusDone {
			return nil
		}

		log.Printf("Reminder: task %q assigned to %s is due %s",
			task.TaskName, task.UserID, task.DueDate.Format(time.RFC3339))
		return nil
	}
}
