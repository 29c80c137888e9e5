package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS expenses (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					amount REAL NOT NULL,
					currency TEXT NOT NULL DEFAULT 'INR',
					category TEXT NOT NULL DEFAULT 'Other',
					description TEXT,
					expense_date DATETIME NOT NULL,
					people_ids TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_expenses_user_date ON expenses(user_id, expense_date)`,
				`CREATE INDEX idx_expenses_category ON expenses(category)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					category TEXT NOT NULL,
					limit_amount REAL NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(user_id, category)
				)`,

				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL DEFAULT '',
					name TEXT NOT NULL,
					icon TEXT,
					UNIQUE(user_id, name)
				)`,

				`CREATE TABLE IF NOT EXISTS people (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL DEFAULT '',
					name TEXT NOT NULL,
					relationship TEXT,
					UNIQUE(user_id, name)
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}

			// Seed the shared category vocabulary. Rows with an empty
			// user_id are visible to everyone.
			seed := []struct{ id, name, icon string }{
				{"cat-food", "Food & Dining", "🍽️"},
				{"cat-transport", "Transportation", "🚌"},
				{"cat-shopping", "Shopping", "🛍️"},
				{"cat-entertainment", "Entertainment", "🎬"},
				{"cat-bills", "Bills & Utilities", "💡"},
				{"cat-health", "Healthcare", "🏥"},
				{"cat-education", "Education", "📚"},
				{"cat-travel", "Travel", "✈️"},
				{"cat-other", "Other", "📦"},
			}
			for _, c := range seed {
				if _, err := tx.Exec(
					`INSERT INTO categories (id, user_id, name, icon) VALUES (?, '', ?, ?)`,
					c.id, c.name, c.icon); err != nil {
					return fmt.Errorf("failed to seed category %s: %w", c.name, err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add conversation history",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS conversation_turns (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id TEXT NOT NULL,
					role TEXT NOT NULL,
					content TEXT NOT NULL,
					executed_actions TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_turns_user ON conversation_turns(user_id, id)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add templates and preferences",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS templates (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					name TEXT NOT NULL,
					amount REAL NOT NULL,
					category TEXT NOT NULL,
					description TEXT,
					UNIQUE(user_id, name)
				)`,

				`CREATE TABLE IF NOT EXISTS preferences (
					user_id TEXT PRIMARY KEY,
					currency TEXT NOT NULL DEFAULT 'INR',
					date_format TEXT NOT NULL DEFAULT '2006-01-02',
					language_style TEXT,
					common_categories TEXT,
					frequent_amounts TEXT,
					usual_people TEXT
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
