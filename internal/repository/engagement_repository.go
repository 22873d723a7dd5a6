package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"ukmprhub/internal/models"
)

type engagementRepository struct {
	db *sqlx.DB
}

func NewEngagementRepository(db *sqlx.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) LikesFor(ctx context.Context, postIDs []int64) ([]models.PostLike, error) {
	likes := []models.PostLike{}
	if len(postIDs) == 0 {
		return likes, nil
	}

	query := `SELECT post_id, user_id, emoji FROM post_likes WHERE post_id = ANY($1) ORDER BY post_id, user_id`

	if err := r.db.SelectContext(ctx, &likes, query, pq.Array(postIDs)); err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}

	return likes, nil
}

func (r *engagementRepository) CommentsFor(ctx context.Context, postIDs []int64) ([]models.PostComment, error) {
	comments := []models.PostComment{}
	if len(postIDs) == 0 {
		return comments, nil
	}

	query := `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
			COALESCE(m.name, '') AS author_name,
			COALESCE(m.username, '') AS author_username,
			COALESCE(m.photo, '') AS author_photo
		FROM post_comments c
		LEFT JOIN members m ON m.id = c.user_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at ASC, c.id ASC
	`

	if err := r.db.SelectContext(ctx, &comments, query, pq.Array(postIDs)); err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return comments, nil
}

func (r *engagementRepository) VoteCountsFor(ctx context.Context, postIDs []int64) ([]models.VoteCount, error) {
	counts := []models.VoteCount{}
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT post_id, option_index, COUNT(*) AS votes
		FROM post_votes
		WHERE post_id = ANY($1)
		GROUP BY post_id, option_index
	`

	if err := r.db.SelectContext(ctx, &counts, query, pq.Array(postIDs)); err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	return counts, nil
}

// ToggleLike removes the member's like if one exists, otherwise adds one.
// It reports whether this call added the like.
func (r *engagementRepository) ToggleLike(ctx context.Context, postID, userID int64, emoji string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check removed like: %w", err)
	}
	if removed > 0 {
		return false, nil
	}

	query := `
		INSERT INTO post_likes (post_id, user_id, emoji)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err = r.db.ExecContext(ctx, query, postID, userID, emoji)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	// A concurrent request may have inserted the row first.
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check added like: %w", err)
	}
	return inserted > 0, nil
}

func (r *engagementRepository) AddComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	query := `
		INSERT INTO post_comments (post_id, user_id, content, created_at)
		VALUES (:post_id, :user_id, :content, :created_at)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, comment)
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}

	comment.ID = id
	return id, nil
}

// AddVote records a vote unless the member already voted on the post.
// It reports whether a row was inserted.
func (r *engagementRepository) AddVote(ctx context.Context, vote models.PostVote) (bool, error) {
	query := `
		INSERT INTO post_votes (post_id, user_id, option_index)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, vote.PostID, vote.UserID, vote.OptionIndex)
	if err != nil {
		return false, fmt.Errorf("failed to add vote: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}

	return inserted > 0, nil
}

// DropVotesFrom deletes votes pointing past the last option of a rewritten poll.
func (r *engagementRepository) DropVotesFrom(ctx context.Context, postID int64, optionCount int) error {
	query := `DELETE FROM post_votes WHERE post_id = $1 AND option_index >= $2`

	if _, err := r.db.ExecContext(ctx, query, postID, optionCount); err != nil {
		return fmt.Errorf("failed to drop stale votes: %w", err)
	}

	return nil
}
