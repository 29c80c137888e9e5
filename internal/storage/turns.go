package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/arthasage/arthasage/internal/model"
)

// SaveTurn appends one conversation turn to the user's history.
func (s *SQLiteStorage) SaveTurn(ctx context.Context, userID string, turn model.Turn) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(string(turn.Role), "turn role"); err != nil {
		return err
	}

	var actionsJSON string
	if len(turn.ExecutedActions) > 0 {
		data, err := json.Marshal(turn.ExecutedActions)
		if err != nil {
			return fmt.Errorf("failed to encode executed actions: %w", err)
		}
		actionsJSON = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversation_turns (user_id, role, content, executed_actions)
		VALUES (?, ?, ?, ?)`,
		userID, string(turn.Role), turn.Content, actionsJSON)
	if err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}
	return nil
}

// RecentTurns returns the user's last limit turns in chronological order.
func (s *SQLiteStorage) RecentTurns(ctx context.Context, userID string, limit int) ([]model.Turn, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT role, content, executed_actions
		FROM conversation_turns
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var turns []model.Turn
	for rows.Next() {
		var (
			turn    model.Turn
			role    string
			actions sql.NullString
		)
		if err := rows.Scan(&role, &turn.Content, &actions); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Role = model.Role(role)
		if actions.Valid && actions.String != "" {
			if err := json.Unmarshal([]byte(actions.String), &turn.ExecutedActions); err != nil {
				return nil, fmt.Errorf("failed to decode executed actions: %w", err)
			}
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
