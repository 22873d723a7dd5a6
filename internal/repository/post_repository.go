package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"ukmprhub/internal/models"
)

const postSelect = `
	SELECT p.id, p.user_id, p.content, p.image, p.poll_json, p.note, p.activity_label, p.created_at,
		COALESCE(m.name, '') AS author_name,
		COALESCE(m.username, '') AS author_username,
		COALESCE(m.photo, '') AS author_photo,
		COALESCE(m.role, '') AS author_role
	FROM posts p
	LEFT JOIN members m ON m.id = p.user_id
`

// postCleanup lists the rows that reference a post, removed before the post itself.
var postCleanup = []string{
	`DELETE FROM post_likes WHERE post_id = $1`,
	`DELETE FROM post_comments WHERE post_id = $1`,
	`DELETE FROM post_votes WHERE post_id = $1`,
	`DELETE FROM notifications WHERE post_id = $1`,
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, content, image, poll_json, note, activity_label, created_at)
		VALUES (:user_id, :content, :image, :poll_json, :note, :activity_label, :created_at)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, post)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	post.ID = id
	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post

	err := r.db.GetContext(ctx, &post, postSelect+` WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}

	err := r.db.SelectContext(ctx, &posts, postSelect+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	posts := []models.Post{}

	err := r.db.SelectContext(ctx, &posts, postSelect+` WHERE p.user_id = $1 ORDER BY p.created_at DESC, p.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts of member %d: %w", userID, err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			content = :content,
			image = :image,
			poll_json = :poll_json,
			note = :note,
			activity_label = :activity_label
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("post %d: %w", post.ID, err)
	}

	return nil
}

// Delete removes the post's likes, comments, votes and notifications, then
// the post row. The statements run one after another without a transaction.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	for _, stmt := range postCleanup {
		if _, err := r.db.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to clean up post %d: %w", id, err)
		}
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("post %d: %w", id, err)
	}

	return nil
}
