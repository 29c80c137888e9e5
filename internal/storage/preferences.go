package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arthasage/arthasage/internal/model"
)

// GetPreferences returns the user's stored preferences, or sensible
// defaults when none have been saved yet.
func (s *SQLiteStorage) GetPreferences(ctx context.Context, userID string) (model.Preferences, error) {
	if err := validateContext(ctx); err != nil {
		return model.Preferences{}, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return model.Preferences{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT currency, date_format, language_style, common_categories, frequent_amounts, usual_people
		FROM preferences WHERE user_id = ?`, userID)

	var (
		prefs         model.Preferences
		languageStyle sql.NullString
		categories    sql.NullString
		amounts       sql.NullString
		people        sql.NullString
	)
	err := row.Scan(&prefs.Currency, &prefs.DateFormat, &languageStyle, &categories, &amounts, &people)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Preferences{Currency: "INR", DateFormat: "2006-01-02"}, nil
	}
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs.LanguageStyle = languageStyle.String
	if err := decodeJSONList(categories, &prefs.CommonCategories); err != nil {
		return model.Preferences{}, err
	}
	if err := decodeJSONList(amounts, &prefs.FrequentAmounts); err != nil {
		return model.Preferences{}, err
	}
	if err := decodeJSONList(people, &prefs.UsualPeople); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// SavePreferences creates or replaces the user's preferences.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, userID string, prefs model.Preferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	categories, err := json.Marshal(prefs.CommonCategories)
	if err != nil {
		return fmt.Errorf("failed to encode common categories: %w", err)
	}
	amounts, err := json.Marshal(prefs.FrequentAmounts)
	if err != nil {
		return fmt.Errorf("failed to encode frequent amounts: %w", err)
	}
	people, err := json.Marshal(prefs.UsualPeople)
	if err != nil {
		return fmt.Errorf("failed to encode usual people: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO preferences (user_id, currency, date_format, language_style, common_categories, frequent_amounts, usual_people)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			currency = excluded.currency,
			date_format = excluded.date_format,
			language_style = excluded.language_style,
			common_categories = excluded.common_categories,
			frequent_amounts = excluded.frequent_amounts,
			usual_people = excluded.usual_people`,
		userID, orDefault(prefs.Currency, "INR"), orDefault(prefs.DateFormat, "2006-01-02"),
		prefs.LanguageStyle, string(categories), string(amounts), string(people))
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func decodeJSONList[T any](raw sql.NullString, out *T) error {
	if !raw.Valid || raw.String == "" || raw.String == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw.String), out); err != nil {
		return fmt.Errorf("failed to decode preference list: %w", err)
	}
	return nil
}
