package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(context.Background(), config.BackendSettings{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "planner.db"),
	})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(context.Background(), config.BackendSettings{Driver: "oracle"})
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestRepositoryScopesByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[task.Task](openTestDB(t), "task_id")

	mine := task.Task{UserID: 1, TaskNumber: 1, TaskDescription: "Buy milk"}
	theirs := task.Task{UserID: 2, TaskNumber: 1, TaskDescription: "Walk the dog"}
	for _, tk := range []*task.Task{&mine, &theirs} {
		if err := repo.Create(ctx, tk); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if mine.TaskID == 0 || theirs.TaskID == 0 {
		t.Fatalf("ids not assigned: %d %d", mine.TaskID, theirs.TaskID)
	}

	t.Run("List", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0].TaskID != mine.TaskID {
			t.Errorf("user 1 sees %+v", list)
		}
	})

	t.Run("FindOtherUsersRecord", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, 1, theirs.TaskID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteOtherUsersRecord", func(t *testing.T) {
		if err := repo.Delete(ctx, 1, theirs.TaskID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.FindByID(ctx, 2, theirs.TaskID); err != nil {
			t.Errorf("record of user 2 should survive, got %v", err)
		}
	})

	t.Run("UpdateThenDelete", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 1, mine.TaskID)
		if err != nil {
			t.Fatal(err)
		}
		found.IsCompleted = true
		if err := repo.Update(ctx, found); err != nil {
			t.Fatal(err)
		}
		again, err := repo.FindByID(ctx, 1, mine.TaskID)
		if err != nil || !again.IsCompleted || again.TaskDescription != "Buy milk" {
			t.Fatalf("update not persisted: %v %+v", err, again)
		}

		if err := repo.Delete(ctx, 1, mine.TaskID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := repo.Delete(ctx, 1, mine.TaskID); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	})
}

func TestInactiveHabitStaysInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[habit.Habit](openTestDB(t), "habit_id")

	start := util.NewDate(2024, time.May, 1)
	h := habit.Habit{UserID: 1, HabitNumber: 1, HabitDescription: "Read", StartDate: &start}
	if err := repo.Create(ctx, &h); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(ctx, 1, h.HabitID)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsActive || got.StartDate == nil || got.StartDate.String() != "2024-05-01" {
		t.Errorf("unexpected habit %+v", got)
	}
}

func TestUserRepositoryFindOrCreate(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(openTestDB(t))

	first, err := users.FindOrCreate(ctx, 500)
	if err != nil {
		t.Fatal(err)
	}
	again, err := users.FindOrCreate(ctx, 500)
	if err != nil {
		t.Fatal(err)
	}
	if first.UserID == 0 || again.UserID != first.UserID {
		t.Errorf("same telegram id should map to one user: %d vs %d", first.UserID, again.UserID)
	}

	other, err := users.FindOrCreate(ctx, 501)
	if err != nil {
		t.Fatal(err)
	}
	if other.UserID == first.UserID {
		t.Error("different telegram ids should map to different users")
	}

	city := "Kazan"
	first.City = &city
	if err := users.Update(ctx, first); err != nil {
		t.Fatal(err)
	}
	reloaded, err := users.FindOrCreate(ctx, 500)
	if err != nil || reloaded.City == nil || *reloaded.City != "Kazan" {
		t.Errorf("update not persisted: %v %+v", err, reloaded)
	}
}

func TestStatisticsSnapshotUpsertsDay(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	tasks := NewRepository[task.Task](db, "task_id")
	stats := NewStatisticsRepository(db)
	day := util.NewDate(2024, time.May, 1)

	a := task.Task{UserID: 1, TaskNumber: 1, TaskDescription: "a"}
	b := task.Task{UserID: 1, TaskNumber: 2, TaskDescription: "b"}
	noise := task.Task{UserID: 2, TaskNumber: 1, TaskDescription: "other user", IsCompleted: true}
	for _, tk := range []*task.Task{&a, &b, &noise} {
		if err := tasks.Create(ctx, tk); err != nil {
			t.Fatal(err)
		}
	}

	if err := stats.Snapshot(ctx, 1, day); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}

	a.IsCompleted = true
	if err := tasks.Update(ctx, &a); err != nil {
		t.Fatal(err)
	}
	if err := stats.Snapshot(ctx, 1, day); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	list, err := stats.ListByUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("one row per day expected, got %d: %+v", len(list), list)
	}
	got := list[0]
	if got.Date.String() != "2024-05-01" || got.TasksCompleted != 1 || got.TasksPending != 1 || got.ProductivityScore != 50 {
		t.Errorf("unexpected statistic %+v", got)
	}

	if err := stats.Snapshot(ctx, 1, util.NewDate(2024, time.May, 2)); err != nil {
		t.Fatal(err)
	}
	list, err = stats.ListByUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Date.String() != "2024-05-01" || list[1].Date.String() != "2024-05-02" {
		t.Errorf("expected two days in order, got %+v", list)
	}

	other, err := stats.ListByUser(ctx, 2)
	if err != nil || len(other) != 0 {
		t.Errorf("user 2 has no snapshots yet: %v %+v", err, other)
	}
}
