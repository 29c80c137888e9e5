package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arthasage/arthasage/internal/model"
)

// ListCategories returns the shared category vocabulary plus the user's
// custom categories. Rows with an empty user_id are shared.
func (s *SQLiteStorage) ListCategories(ctx context.Context, userID string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, icon FROM categories
		WHERE user_id = '' OR user_id = ?
		ORDER BY user_id DESC, name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var (
			c     model.Category
			owner string
			icon  sql.NullString
		)
		if err := rows.Scan(&c.ID, &owner, &c.Name, &icon); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Icon = icon.String
		c.Custom = owner != ""
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a custom category for the user.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, userID string, category model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(category.Name, "category name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, icon) VALUES (?, ?, ?, ?)`,
		category.ID, userID, category.Name, category.Icon)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// ListPeople returns the shared people list plus the user's custom people.
func (s *SQLiteStorage) ListPeople(ctx context.Context, userID string) ([]model.Person, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, relationship FROM people
		WHERE user_id = '' OR user_id = ?
		ORDER BY user_id DESC, name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var people []model.Person
	for rows.Next() {
		var (
			p            model.Person
			owner        string
			relationship sql.NullString
		)
		if err := rows.Scan(&p.ID, &owner, &p.Name, &relationship); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Relationship = relationship.String
		p.Custom = owner != ""
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

// CreatePerson adds a custom person for the user.
func (s *SQLiteStorage) CreatePerson(ctx context.Context, userID string, person model.Person) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(person.Name, "person name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO people (id, user_id, name, relationship) VALUES (?, ?, ?, ?)`,
		person.ID, userID, person.Name, person.Relationship)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// ListTemplates returns the user's saved expense templates.
func (s *SQLiteStorage) ListTemplates(ctx context.Context, userID string) ([]model.Template, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount, category, description FROM templates
		WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var templates []model.Template
	for rows.Next() {
		var (
			t           model.Template
			description sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Amount, &t.Category, &description); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		t.Description = description.String
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	return templates, nil
}

// SaveTemplate creates or replaces a named expense template.
func (s *SQLiteStorage) SaveTemplate(ctx context.Context, userID string, template model.Template) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(template.Name, "template name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (id, user_id, name, amount, category, description)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, name) DO UPDATE SET
			amount = excluded.amount,
			category = excluded.category,
			description = excluded.description`,
		template.ID, userID, template.Name, template.Amount, template.Category, template.Description)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}
