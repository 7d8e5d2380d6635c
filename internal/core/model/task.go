package model

import "time"

// Task is a single todo entry.
type Task struct {
	ID          int64
	Title       string
	Done        bool
	Active      bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Session records one finished countdown interval.
type Session struct {
	ID        int64
	Mode      string
	StartedAt time.Time
	EndedAt   time.Time
	Duration  time.Duration
}

// SessionStats aggregates recorded sessions.
type SessionStats struct {
	TotalSessions int
	TotalDuration time.Duration
	TodaySessions int
	TodayDuration time.Duration
}
