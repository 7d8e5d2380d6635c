package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/core/model"

	_ "github.com/mattn/go-sqlite3"
)

// TaskStore persists tasks and completed countdown sessions in SQLite.
type TaskStore struct {
	db *sql.DB
}

// OpenTaskStore opens (or creates) the task database at path.
func OpenTaskStore(path string) (*TaskStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open task db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping task db: %w", err)
	}

	store := &TaskStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init task db: %w", err)
	}
	return store, nil
}

// Close releases the underlying database handle.
func (store *TaskStore) Close() error {
	return store.db.Close()
}

func (store *TaskStore) initTables() error {
	_, err := store.db.Exec(`
        CREATE TABLE IF NOT EXISTS tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            done INTEGER NOT NULL DEFAULT 0,
            active INTEGER NOT NULL DEFAULT 0,
            created_at DATETIME NOT NULL,
            completed_at DATETIME
        )
    `)
	if err != nil {
		return err
	}

	_, err = store.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            mode TEXT NOT NULL,
            started_at DATETIME NOT NULL,
            ended_at DATETIME NOT NULL,
            duration_seconds INTEGER NOT NULL
        )
    `)
	return err
}

// Add inserts a new pending task.
func (store *TaskStore) Add(title string) (model.Task, error) {
	task := model.Task{
		Title:     title,
		CreatedAt: time.Now(),
	}

	result, err := store.db.Exec(
		"INSERT INTO tasks (title, done, active, created_at) VALUES (?, 0, 0, ?)",
		task.Title, task.CreatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("add task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("add task: %w", err)
	}
	task.ID = id
	return task, nil
}

// Toggle flips a task between done and pending, stamping or clearing its
// completion time.
func (store *TaskStore) Toggle(id int64) error {
	var done bool
	err := store.db.QueryRow("SELECT done FROM tasks WHERE id = ?", id).Scan(&done)
	if err != nil {
		return fmt.Errorf("toggle task %d: %w", id, err)
	}

	if done {
		_, err = store.db.Exec(
			"UPDATE tasks SET done = 0, completed_at = NULL WHERE id = ?", id)
	} else {
		_, err = store.db.Exec(
			"UPDATE tasks SET done = 1, completed_at = ? WHERE id = ?", time.Now(), id)
	}
	if err != nil {
		return fmt.Errorf("toggle task %d: %w", id, err)
	}
	return nil
}

// Delete removes a task.
func (store *TaskStore) Delete(id int64) error {
	if _, err := store.db.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// SetActive marks exactly one task as the one being worked on. Passing 0
// clears the active task.
func (store *TaskStore) SetActive(id int64) error {
	tx, err := store.db.Begin()
	if err != nil {
		return fmt.Errorf("set active task: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE tasks SET active = 0 WHERE active = 1"); err != nil {
		return fmt.Errorf("set active task: %w", err)
	}
	if id != 0 {
		if _, err := tx.Exec("UPDATE tasks SET active = 1 WHERE id = ?", id); err != nil {
			return fmt.Errorf("set active task %d: %w", id, err)
		}
	}
	return tx.Commit()
}

// CountCompleted returns how many tasks are done.
func (store *TaskStore) CountCompleted() (int, error) {
	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM tasks WHERE done = 1").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return count, nil
}

// List returns all tasks, active first, then newest first. Rows that fail to
// scan are skipped rather than failing the whole list.
func (store *TaskStore) List() ([]model.Task, error) {
	rows, err := store.db.Query(`
        SELECT id, title, done, active, created_at, completed_at
        FROM tasks
        ORDER BY active DESC, created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Done,
			&task.Active,
			&task.CreatedAt,
			&task.CompletedAt,
		); err != nil {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// RecordSession logs one finished countdown.
func (store *TaskStore) RecordSession(mode string, startedAt, endedAt time.Time) error {
	duration := int64(endedAt.Sub(startedAt).Seconds())
	_, err := store.db.Exec(
		"INSERT INTO sessions (mode, started_at, ended_at, duration_seconds) VALUES (?, ?, ?, ?)",
		mode, startedAt, endedAt, duration,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// startOfToday returns local midnight. Truncating to 24h would roll the day
// over at the UTC boundary instead.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CountTodayPomodoros returns how many pomodoro intervals finished today.
func (store *TaskStore) CountTodayPomodoros() (int, error) {
	today := startOfToday()
	var count int
	err := store.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE mode = ? AND started_at >= ?",
		"pomodoro", today,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count today pomodoros: %w", err)
	}
	return count, nil
}

// SessionStats aggregates all recorded sessions plus today's.
func (store *TaskStore) SessionStats() (model.SessionStats, error) {
	stats := model.SessionStats{}

	var totalSeconds int64
	err := store.db.QueryRow(`
        SELECT COUNT(*), COALESCE(SUM(duration_seconds), 0) FROM sessions
    `).Scan(&stats.TotalSessions, &totalSeconds)
	if err != nil {
		return stats, fmt.Errorf("session stats: %w", err)
	}
	stats.TotalDuration = time.Duration(totalSeconds) * time.Second

	today := startOfToday()
	var todaySeconds int64
	err = store.db.QueryRow(`
        SELECT COUNT(*), COALESCE(SUM(duration_seconds), 0) FROM sessions
        WHERE started_at >= ?
    `, today).Scan(&stats.TodaySessions, &todaySeconds)
	if err != nil {
		return stats, fmt.Errorf("session stats: %w", err)
	}
	stats.TodayDuration = time.Duration(todaySeconds) * time.Second

	return stats, nil
}
