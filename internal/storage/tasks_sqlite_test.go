package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	store, err := OpenTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestAddAndList(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Add("write report")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected assigned id")
	}

	if _, err := store.Add("review patches"); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Done || task.Active {
			t.Errorf("new task %q should be pending and inactive", task.Title)
		}
	}
}

func TestToggleStampsCompletion(t *testing.T) {
	store := newTestStore(t)
	task, err := store.Add("write report")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Toggle(task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	tasks, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if !tasks[0].Done {
		t.Error("task should be done after toggle")
	}
	if tasks[0].CompletedAt == nil {
		t.Error("completed_at should be stamped")
	}

	if err := store.Toggle(task.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	tasks, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if tasks[0].Done {
		t.Error("task should be pending after second toggle")
	}
	if tasks[0].CompletedAt != nil {
		t.Error("completed_at should be cleared")
	}
}

func TestCountCompleted(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Add("one")
	second, _ := store.Add("two")
	store.Add("three")

	if err := store.Toggle(first.ID); err != nil {
		t.Fatal(err)
	}
	if err := store.Toggle(second.ID); err != nil {
		t.Fatal(err)
	}

	count, err := store.CountCompleted()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 completed, got %d", count)
	}
}

func TestSetActiveIsExclusive(t *testing.T) {
	store := newTestStore(t)
	first, _ := store.Add("one")
	second, _ := store.Add("two")

	if err := store.SetActive(first.ID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if err := store.SetActive(second.ID); err != nil {
		t.Fatalf("set active: %v", err)
	}

	tasks, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	activeCount := 0
	for _, task := range tasks {
		if task.Active {
			activeCount++
			if task.ID != second.ID {
				t.Errorf("wrong active task: %d", task.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("expected exactly one active task, got %d", activeCount)
	}

	// Zero clears the active task.
	if err := store.SetActive(0); err != nil {
		t.Fatalf("clear active: %v", err)
	}
	tasks, _ = store.List()
	for _, task := range tasks {
		if task.Active {
			t.Errorf("task %d still active after clear", task.ID)
		}
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	task, _ := store.Add("one")

	if err := store.Delete(task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tasks, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(tasks))
	}

	// Deleting a missing task is not an error.
	if err := store.Delete(999); err != nil {
		t.Errorf("delete missing task: %v", err)
	}
}

func TestTodayCountsFromLocalMidnight(t *testing.T) {
	store := newTestStore(t)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	justAfter := midnight.Add(time.Minute)
	if err := store.RecordSession("pomodoro", justAfter, justAfter.Add(25*time.Minute)); err != nil {
		t.Fatal(err)
	}
	justBefore := midnight.Add(-time.Minute)
	if err := store.RecordSession("pomodoro", justBefore, justBefore.Add(25*time.Minute)); err != nil {
		t.Fatal(err)
	}

	count, err := store.CountTodayPomodoros()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 pomodoro after local midnight, got %d", count)
	}

	stats, err := store.SessionStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TodaySessions != 1 {
		t.Errorf("expected 1 session today, got %d", stats.TodaySessions)
	}
	if stats.TotalSessions != 2 {
		t.Errorf("expected 2 sessions overall, got %d", stats.TotalSessions)
	}
}

func TestRecordSessionAndStats(t *testing.T) {
	store := newTestStore(t)

	start := time.Now().Add(-25 * time.Minute)
	if err := store.RecordSession("pomodoro", start, start.Add(25*time.Minute)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.RecordSession("short_break", time.Now().Add(-5*time.Minute), time.Now()); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := store.SessionStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 2 {
		t.Errorf("expected 2 sessions, got %d", stats.TotalSessions)
	}
	if stats.TotalDuration != 30*time.Minute {
		t.Errorf("expected 30m total, got %v", stats.TotalDuration)
	}
}
