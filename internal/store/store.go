package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite database and hands out user-scoped repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// pragmas are attached to the DSN so every pooled connection gets them.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}

func withPragmas(dsn string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) History() HistoryRepo          { return &historyRepo{s: s} }
func (s *Store) Progress() ProgressRepo        { return &progressRepo{s: s} }
func (s *Store) QuizAttempts() QuizAttemptRepo { return &quizAttemptRepo{s: s} }
func (s *Store) Bookmarks() BookmarkRepo       { return &bookmarkRepo{s: s} }
func (s *Store) Notes() NoteRepo               { return &noteRepo{s: s} }
func (s *Store) EventRepo() EventRepo          { return &eventRepo{s: s} }

// Reset deletes every row owned by userID.
func (s *Store) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUser
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, t := range userTables {
		query, args := builder().Delete(t).Where(entsql.EQ(colUserID, userID)).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("reset %s: %w", t, err)
		}
	}
	return tx.Commit()
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (s *Store) exec(ctx context.Context, q entsql.Querier) (sql.Result, error) {
	query, args := q.Query()
	return s.db.ExecContext(ctx, query, args...)
}

func (s *Store) query(ctx context.Context, q entsql.Querier) (*sql.Rows, error) {
	query, args := q.Query()
	return s.db.QueryContext(ctx, query, args...)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SPARKLEARN_DB environment variable
// 2. $XDG_DATA_HOME/sparklearn/sparklearn.db
// 3. ~/.local/share/sparklearn/sparklearn.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SPARKLEARN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "sparklearn", "sparklearn.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
