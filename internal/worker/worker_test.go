package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
	"taskboard/backend/internal/worker"
)

func setupTestQueue(t *testing.T) (*worker.JobQueue, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return worker.NewJobQueue(client), client
}

func setupTaskDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestJobQueue_Enqueue(t *testing.T) {
	queue, _ := setupTestQueue(t)

	err := queue.Enqueue("reminders", worker.JobTypeTaskReminder, map[string]interface{}{
		"task_id": "abc",
	})
	if err != nil {
		t.Fatalf("Failed to enqueue job: %v", err)
	}

	size, err := queue.GetQueueSize("reminders")
	if err != nil {
		t.Fatalf("Failed to get queue size: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected queue size 1, got %d", size)
	}
}

func TestJobQueue_EnqueueAt(t *testing.T) {
	queue, client := setupTestQueue(t)

	processAt := time.Now().Add(time.Hour)
	err := queue.EnqueueAt("reminders", worker.JobTypeTaskReminder, map[string]interface{}{
		"task_id": "abc",
	}, processAt)
	if err != nil {
		t.Fatalf("Failed to enqueue scheduled job: %v", err)
	}

	ctx := context.Background()
	size, err := client.LLen(ctx, "reminders").Result()
	if err != nil {
		t.Fatalf("Failed to read queue length: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected queue size 1, got %d", size)
	}
}

func TestJobQueue_GetQueueSizeEmpty(t *testing.T) {
	queue, _ := setupTestQueue(t)

	size, err := queue.GetQueueSize("empty-queue")
	if err != nil {
		t.Fatalf("Failed to get queue size: %v", err)
	}
	if size != 0 {
		t.Errorf("Expected queue size 0, got %d", size)
	}
}

func TestEnqueueTaskReminder(t *testing.T) {
	queue, _ := setupTestQueue(t)

	task := &models.Task{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  uuid.Must(uuid.NewV4()),
		DueDate: time.Now().Add(24 * time.Hour),
	}

	if err := worker.EnqueueTaskReminder(queue, task); err != nil {
		t.Fatalf("Failed to enqueue task reminder: %v", err)
	}

	size, err := queue.GetQueueSize(worker.RemindersQueue)
	if err != nil {
		t.Fatalf("Failed to get queue size: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected queue size 1, got %d", size)
	}
}

func TestEnqueueTaskReminder_NilQueue(t *testing.T) {
	task := &models.Task{ID: uuid.Must(uuid.NewV4())}

	if err := worker.EnqueueTaskReminder(nil, task); err != nil {
		t.Errorf("Expected nil queue to be a no-op, got: %v", err)
	}
}

func TestTaskReminderHandler(t *testing.T) {
	db := setupTaskDB(t)
	handler := worker.TaskReminderHandler(db)

	task := &models.Task{
		ID:        uuid.Must(uuid.NewV4()),
		ProjectID: uuid.Must(uuid.NewV4()),
		TaskName:  "write docs",
		UserID:    uuid.Must(uuid.NewV4()),
		DueDate:   time.Now().Add(time.Hour),
		Priority:  3,
		Status:    models.StatusTodo,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}

	job := &worker.Job{
		ID:      "job-1",
		Type:    worker.JobTypeTaskReminder,
		Payload: map[string]interface{}{"task_id": task.ID.String()},
	}

	if err := handler(context.Background(), job); err != nil {
		t.Errorf("Expected handler to succeed, got: %v", err)
	}
}

func TestTaskReminderHandler_MissingTask(t *testing.T) {
	db := setupTaskDB(t)
	handler := worker.TaskReminderHandler(db)

	job := &worker.Job{
		ID:      "job-2",
		Type:    worker.JobTypeTaskReminder,
		Payload: map[string]interface{}{"task_id": uuid.Must(uuid.NewV4()).String()},
	}

	// A deleted task is not an error; the reminder is silently dropped.
	if err := handler(context.Background(), job); err != nil {
		t.Errorf("Expected nil error for missing task, got: %v", err)
	}
}

func TestTaskReminderHandler_MissingPayload(t *testing.T) {
	db := setupTaskDB(t)
	handler := worker.TaskReminderHandler(db)

	job := &worker.Job{
		ID:      "job-3",
		Type:    worker.JobTypeTaskReminder,
		Payload: map[string]interface{}{},
	}

	if err := handler(context.Background(), job); err == nil {
		t.Error("Expected error for job without task_id")
	}
}

func TestTaskReminderHandler_DoneTaskSkipped(t *testing.T) {
	db := setupTaskDB(t)
	handler := worker.TaskReminderHandler(db)

	task := &models.Task{
		ID:        uuid.Must(uuid.NewV4()),
		ProjectID: uuid.Must(uuid.NewV4()),
		TaskName:  "finished",
		UserID:    uuid.Must(uuid.NewV4()),
		DueDate:   time.Now(),
		Priority:  3,
		Status:    models.StatusDone,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}

	job := &worker.Job{
		ID:      "job-4",
		Type:    worker.JobTypeTaskReminder,
		Payload: map[string]interface{}{"task_id": task.ID.String()},
	}

	if err := handler(context.Background(), job); err != nil {
		t.Errorf("Expected done task to be skipped without error, got: %v", err)
	}
}

func TestWorker_ProcessesJob(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	queue := worker.NewJobQueue(client)

	processed := make(chan string, 1)
	w := worker.NewWorker(worker.WorkerConfig{
		RedisClient: client,
		Queues:      []string{"test-queue"},
	})
	w.RegisterHandler(worker.JobTypeCleanup, func(ctx context.Context, job *worker.Job) error {
		processed <- job.ID
		return nil
	})

	if err := queue.Enqueue("test-queue", worker.JobTypeCleanup, nil); err != nil {
		t.Fatalf("Failed to enqueue job: %v", err)
	}

	w.Start(1)
	defer w.Stop()

	select {
	case <-processed:
	case <-time.After(10 * time.Second):
		t.Fatal("Timed out waiting for job to be processed")
	}
}
