package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/domain/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     name + "@example.com",
		Password:  "hash",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestTaskRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "alice")
	assignee := createTestUser(t, db, "bob")

	due := time.Now().Add(48 * time.Hour).UTC()
	task := &models.Task{
		ID:           uuid.New(),
		Title:        "Write report",
		Description:  "Quarterly numbers",
		Priority:     models.TaskPriorityHigh,
		Status:       models.TaskStatusPending,
		DueDate:      &due,
		CreatorID:    creator.ID,
		AssignedToID: &assignee.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if found.Title != task.Title {
		t.Errorf("expected title %q, got %q", task.Title, found.Title)
	}
	if found.Creator.ID != creator.ID {
		t.Errorf("expected creator %s to be preloaded, got %s", creator.ID, found.Creator.ID)
	}
	if found.AssignedTo == nil || found.AssignedTo.ID != assignee.ID {
		t.Error("expected assignee to be preloaded")
	}
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestTaskRepository_ListForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	base := time.Now().UTC().Truncate(time.Second)
	soon := base.Add(1 * time.Hour)
	later := base.Add(24 * time.Hour)

	seed := []*models.Task{
		{ID: uuid.New(), Title: "later", DueDate: &later, CreatorID: alice.ID, CreatedAt: base},
		{ID: uuid.New(), Title: "undated", CreatorID: alice.ID, CreatedAt: base.Add(time.Second)},
		{ID: uuid.New(), Title: "soon", DueDate: &soon, CreatorID: bob.ID, AssignedToID: &alice.ID, CreatedAt: base.Add(2 * time.Second)},
		{ID: uuid.New(), Title: "invisible", CreatorID: carol.ID, AssignedToID: &bob.ID, CreatedAt: base.Add(3 * time.Second)},
	}
	for _, task := range seed {
		task.Priority = models.TaskPriorityMedium
		task.Status = models.TaskStatusPending
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create(%q) error = %v", task.Title, err)
		}
	}

	tasks, err := repo.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}

	// Alice sees tasks she created or is assigned to, due date ascending
	// with undated tasks last.
	want := []string{"soon", "later", "undated"}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, tasks[i].Title)
		}
	}
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	task := &models.Task{
		ID:        uuid.New(),
		Title:     "flip me",
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityLow,
		CreatorID: alice.ID,
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateStatus(ctx, task.ID, models.TaskStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	found, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Status != models.TaskStatusCompleted {
		t.Errorf("expected status COMPLETED, got %q", found.Status)
	}
	// The status update must not touch any other column.
	if found.Title != task.Title || found.Priority != task.Priority || found.CreatorID != alice.ID {
		t.Error("UpdateStatus changed columns other than status")
	}
}

func TestTaskRepository_UpdateAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	task := &models.Task{
		ID:        uuid.New(),
		Title:     "reassign me",
		Status:    models.TaskStatusPending,
		CreatorID: alice.ID,
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateAssignee(ctx, task.ID, bob.ID); err != nil {
		t.Fatalf("UpdateAssignee() error = %v", err)
	}

	found, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.AssignedToID == nil || *found.AssignedToID != bob.ID {
		t.Errorf("expected assignee %s, got %v", bob.ID, found.AssignedToID)
	}
	if found.CreatorID != alice.ID {
		t.Error("UpdateAssignee must not change the creator")
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	task := &models.Task{
		ID:        uuid.New(),
		Title:     "short lived",
		Status:    models.TaskStatusPending,
		CreatorID: alice.ID,
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(ctx, task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected task to be gone, got %v", err)
	}

	// Deleting an id that no longer exists is not an error at this layer.
	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Errorf("Delete() of missing task error = %v", err)
	}
}

func TestTaskRepository_ListDueBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	now := time.Now().UTC().Truncate(time.Second)
	inWindow := now.Add(6 * time.Hour)
	outsideWindow := now.Add(48 * time.Hour)

	seed := []*models.Task{
		{ID: uuid.New(), Title: "due soon assigned", Status: models.TaskStatusPending, DueDate: &inWindow, CreatorID: alice.ID, AssignedToID: &bob.ID},
		{ID: uuid.New(), Title: "due soon unassigned", Status: models.TaskStatusPending, DueDate: &inWindow, CreatorID: alice.ID},
		{ID: uuid.New(), Title: "due soon completed", Status: models.TaskStatusCompleted, DueDate: &inWindow, CreatorID: alice.ID, AssignedToID: &bob.ID},
		{ID: uuid.New(), Title: "due later", Status: models.TaskStatusPending, DueDate: &outsideWindow, CreatorID: alice.ID, AssignedToID: &bob.ID},
		{ID: uuid.New(), Title: "undated", Status: models.TaskStatusPending, CreatorID: alice.ID, AssignedToID: &bob.ID},
	}
	for _, task := range seed {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create(%q) error = %v", task.Title, err)
		}
	}

	tasks, err := repo.ListDueBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ListDueBetween() error = %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "due soon assigned" {
		t.Errorf("expected %q, got %q", "due soon assigned", tasks[0].Title)
	}
	if tasks[0].AssignedTo == nil || tasks[0].AssignedTo.ID != bob.ID {
		t.Error("expected assignee to be preloaded for the reminder job")
	}
}
