package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/domain/models"
	"taskboard/infrastructure/postgres"
	"taskboard/pkg/config"
)

func TestReminderService_Run(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	alice := &models.User{ID: uuid.New(), Name: "alice", Email: "alice@example.com", Password: "hash"}
	bob := &models.User{ID: uuid.New(), Name: "bob", Email: "bob@example.com", Password: "hash"}
	for _, user := range []*models.User{alice, bob} {
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	dueSoon := time.Now().UTC().Add(6 * time.Hour)
	dueLater := time.Now().UTC().Add(72 * time.Hour)

	seed := []*models.Task{
		{ID: uuid.New(), Title: "remind me", Status: models.TaskStatusPending, DueDate: &dueSoon, CreatorID: alice.ID, AssignedToID: &bob.ID},
		{ID: uuid.New(), Title: "not yet", Status: models.TaskStatusPending, DueDate: &dueLater, CreatorID: alice.ID, AssignedToID: &bob.ID},
		{ID: uuid.New(), Title: "nobody assigned", Status: models.TaskStatusPending, DueDate: &dueSoon, CreatorID: alice.ID},
	}
	for _, task := range seed {
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("failed to create task %q: %v", task.Title, err)
		}
	}

	notifier := newFakeNotifier(true)
	service := NewReminderService(postgres.NewTaskRepository(db), notifier, config.ReminderConfig{Enabled: true, Cron: "0 8 * * *"})

	if err := service.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := len(notifier.sent); got != 1 {
		t.Errorf("expected 1 reminder, got %d", got)
	}
}

func TestReminderService_Run_SendFailureDoesNotAbort(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	alice := &models.User{ID: uuid.New(), Name: "alice", Email: "alice@example.com", Password: "hash"}
	bob := &models.User{ID: uuid.New(), Name: "bob", Email: "bob@example.com", Password: "hash"}
	for _, user := range []*models.User{alice, bob} {
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	dueSoon := time.Now().UTC().Add(6 * time.Hour)
	for i := 0; i < 2; i++ {
		task := &models.Task{ID: uuid.New(), Title: "remind me", Status: models.TaskStatusPending, DueDate: &dueSoon, CreatorID: alice.ID, AssignedToID: &bob.ID}
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
	}

	notifier := newFakeNotifier(true)
	notifier.fail = true
	service := NewReminderService(postgres.NewTaskRepository(db), notifier, config.ReminderConfig{Enabled: true, Cron: "0 8 * * *"})

	if err := service.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Both sends were attempted even though each one failed.
	if got := len(notifier.sent); got != 2 {
		t.Errorf("expected 2 attempted sends, got %d", got)
	}
}
