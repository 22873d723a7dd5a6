package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"ukmprhub/internal/models"
)

type brainstormRepository struct {
	db *sqlx.DB
}

func NewBrainstormRepository(db *sqlx.DB) BrainstormRepository {
	return &brainstormRepository{db: db}
}

func (r *brainstormRepository) History(ctx context.Context, userID int64) ([]models.BrainstormChat, error) {
	chats := []models.BrainstormChat{}

	query := `
		SELECT id, user_id, role, content, created_at
		FROM brainstorm_chats
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	if err := r.db.SelectContext(ctx, &chats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load brainstorm history: %w", err)
	}

	return chats, nil
}

// Append stores messages in one batched insert, keeping their order.
func (r *brainstormRepository) Append(ctx context.Context, messages []models.BrainstormChat) error {
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO brainstorm_chats (user_id, role, content, created_at)
		VALUES (:user_id, :role, :content, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, messages); err != nil {
		return fmt.Errorf("failed to save brainstorm messages: %w", err)
	}

	return nil
}
