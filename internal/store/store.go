// Package store provides SQLite-backed persistence for sked.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fentz26/sked/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates no task matches the given ID or prefix.
var ErrNotFound = fmt.Errorf("task not found")

// ErrAmbiguousID indicates an ID prefix matches more than one task.
var ErrAmbiguousID = fmt.Errorf("task id prefix is ambiguous")

// Store provides access to the sked SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Open with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		done INTEGER NOT NULL DEFAULT 0,
		due_at DATETIME,
		all_day INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done);
	CREATE INDEX IF NOT EXISTS idx_tasks_due_at ON tasks(due_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// CreateTask inserts a new task.
func (s *Store) CreateTask(title, description string, due *models.Deadline) (*models.Task, error) {
	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Due:         due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, description, done, due_at, all_day, created_at, updated_at) VALUES (?, ?, ?, 0, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, dueArg(due), allDayArg(due), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by exact ID.
func (s *Store) GetTask(id string) (*models.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, done, due_at, all_day, created_at, updated_at FROM tasks WHERE id = ?`,
		id,
	)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

// GetTaskByPrefix retrieves a task whose ID starts with prefix. The
// prefix must match exactly one task.
func (s *Store) GetTaskByPrefix(prefix string) (*models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, done, due_at, all_day, created_at, updated_at FROM tasks WHERE id LIKE ? LIMIT 2`,
		prefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("query task by prefix: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(tasks) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return tasks[0], nil
	default:
		return nil, ErrAmbiguousID
	}
}

// ListTasks returns all tasks ordered by creation time, oldest first.
// Display ordering is derived from this snapshot by the view package.
func (s *Store) ListTasks() ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, done, due_at, all_day, created_at, updated_at FROM tasks ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// SetDone updates a task's completion flag.
func (s *Store) SetDone(id string, done bool) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET done = ?, updated_at = ? WHERE id = ?`,
		boolArg(done), time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return checkAffected(res)
}

// UpdateTask persists a task's title, description, deadline and flag.
func (s *Store) UpdateTask(task *models.Task) error {
	task.UpdatedAt = time.Now()
	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, done = ?, due_at = ?, all_day = ?, updated_at = ? WHERE id = ?`,
		task.Title, task.Description, boolArg(task.Done), dueArg(task.Due), allDayArg(task.Due), task.UpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return checkAffected(res)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return checkAffected(res)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row scanner) (*models.Task, error) {
	task := &models.Task{}
	var description sql.NullString
	var dueAt sql.NullTime
	var done, allDay int

	err := row.Scan(&task.ID, &task.Title, &description, &done, &dueAt, &allDay, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = description.String
	}
	task.Done = done != 0
	if dueAt.Valid {
		task.Due = &models.Deadline{At: dueAt.Time.Local(), AllDay: allDay != 0}
	}
	return task, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func dueArg(due *models.Deadline) interface{} {
	if due == nil {
		return nil
	}
	return due.At
}

func allDayArg(due *models.Deadline) int {
	if due != nil && due.AllDay {
		return 1
	}
	return 0
}

func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}
