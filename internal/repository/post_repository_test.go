package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ukmprhub/internal/models"
)

var postRowColumns = []string{
	"id", "user_id", "content", "image", "poll_json", "note", "activity_label", "created_at",
	"author_name", "author_username", "author_photo", "author_role",
}

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	rows := sqlmock.NewRows(postRowColumns).
		AddRow(2, 1, "second", nil, nil, nil, nil, 2000, "Alice", "alice", "", "Anggota").
		AddRow(1, 1, "first", nil, `{"question":"q","options":[]}`, nil, nil, 1000, "Alice", "alice", "", "Anggota")

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.created_at DESC, p.id DESC`)).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, "second", *posts[0].Content)
	assert.Nil(t, posts[0].PollJSON)
	assert.NotNil(t, posts[1].PollJSON)
	assert.Equal(t, "alice", posts[1].AuthorUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO posts`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	post := &models.Post{UserID: 1, Content: strPtr("hello"), CreatedAt: 1000}
	id, err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, int64(11), post.ID)
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cleans up dependants before the post", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes WHERE post_id = $1`)).
			WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_comments WHERE post_id = $1`)).
			WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_votes WHERE post_id = $1`)).
			WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notifications WHERE post_id = $1`)).
			WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1`)).
			WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at the first failing statement", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes WHERE post_id = $1`)).
			WithArgs(int64(5)).WillReturnError(errors.New("boom"))

		err := repo.Delete(ctx, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clean up post 5")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown post", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		for range postCleanup {
			mock.ExpectExec(`DELETE FROM`).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 404), ErrNotFound)
	})
}

func TestEngagementRepository_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("existing like is removed", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewEngagementRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		liked, err := repo.ToggleLike(ctx, 1, 2, "🔥")
		require.NoError(t, err)
		assert.False(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing like is inserted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewEngagementRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes`)).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO post_likes`)).
			WithArgs(int64(1), int64(2), "🔥").
			WillReturnResult(sqlmock.NewResult(0, 1))

		liked, err := repo.ToggleLike(ctx, 1, 2, "🔥")
		require.NoError(t, err)
		assert.True(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert lost to a concurrent like", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewEngagementRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes`)).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO post_likes`)).
			WithArgs(int64(1), int64(2), "🔥").
			WillReturnResult(sqlmock.NewResult(0, 0))

		liked, err := repo.ToggleLike(ctx, 1, 2, "🔥")
		require.NoError(t, err)
		assert.False(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEngagementRepository_AddVote(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()
	vote := models.PostVote{PostID: 1, UserID: 2, OptionIndex: 0}

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (post_id, user_id) DO NOTHING`)).
		WithArgs(int64(1), int64(2), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (post_id, user_id) DO NOTHING`)).
		WithArgs(int64(1), int64(2), 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.AddVote(ctx, vote)
	require.NoError(t, err)
	assert.True(t, inserted)

	vote.OptionIndex = 1
	inserted, err = repo.AddVote(ctx, vote)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementRepository_BatchedLoads(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	t.Run("no posts means no query", func(t *testing.T) {
		likes, err := repo.LikesFor(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, likes)
		assert.NotNil(t, likes)
	})

	t.Run("likes across posts", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM post_likes WHERE post_id = ANY($1)`)).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"post_id", "user_id", "emoji"}).
				AddRow(1, 2, "❤️").
				AddRow(3, 2, "🔥"))

		likes, err := repo.LikesFor(ctx, []int64{1, 3})
		require.NoError(t, err)
		require.Len(t, likes, 2)
		assert.Equal(t, "🔥", likes[1].Emoji)
	})

	t.Run("vote tallies", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY post_id, option_index`)).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"post_id", "option_index", "votes"}).
				AddRow(1, 0, 4).
				AddRow(1, 1, 2))

		counts, err := repo.VoteCountsFor(ctx, []int64{1})
		require.NoError(t, err)
		assert.Equal(t, []models.VoteCount{
			{PostID: 1, OptionIndex: 0, Votes: 4},
			{PostID: 1, OptionIndex: 1, Votes: 2},
		}, counts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
