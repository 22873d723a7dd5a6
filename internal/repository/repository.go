package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"ukmprhub/internal/models"
)

// ErrNotFound is returned (wrapped) when a lookup by key matches no row.
var ErrNotFound = errors.New("record not found")

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByUsername(ctx context.Context, username string) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id int64) error
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, nowMillis int64) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

type EngagementRepository interface {
	LikesFor(ctx context.Context, postIDs []int64) ([]models.PostLike, error)
	CommentsFor(ctx context.Context, postIDs []int64) ([]models.PostComment, error)
	VoteCountsFor(ctx context.Context, postIDs []int64) ([]models.VoteCount, error)
	ToggleLike(ctx context.Context, postID, userID int64, emoji string) (bool, error)
	AddComment(ctx context.Context, comment *models.PostComment) (int64, error)
	AddVote(ctx context.Context, vote models.PostVote) (bool, error)
	DropVotesFrom(ctx context.Context, postID int64, optionCount int) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type ResearchRepository interface {
	List(ctx context.Context) ([]models.Research, error)
	Create(ctx context.Context, research *models.Research) (int64, error)
	Update(ctx context.Context, research *models.Research) error
	Delete(ctx context.Context, id int64) error
	IncrementDownloads(ctx context.Context, id int64) (int, error)
}

type AnnouncementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) (int64, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

type MentorRepository interface {
	List(ctx context.Context) ([]models.Mentor, error)
	Create(ctx context.Context, mentor *models.Mentor) (int64, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id int64) error
}

type BannerRepository interface {
	List(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) (int64, error)
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id int64) error
}

type StatRepository interface {
	List(ctx context.Context) ([]models.Stat, error)
	GetByID(ctx context.Context, id int64) (*models.Stat, error)
	Create(ctx context.Context, stat *models.Stat) (int64, error)
	Update(ctx context.Context, stat *models.Stat) error
	Delete(ctx context.Context, id int64) error
}

type BrainstormRepository interface {
	History(ctx context.Context, userID int64) ([]models.BrainstormChat, error)
	Append(ctx context.Context, messages []models.BrainstormChat) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	Member       MemberRepository
	Session      SessionRepository
	Post         PostRepository
	Engagement   EngagementRepository
	Notification NotificationRepository
	Research     ResearchRepository
	Announcement AnnouncementRepository
	Mentor       MentorRepository
	Banner       BannerRepository
	Stat         StatRepository
	Brainstorm   BrainstormRepository
	Tables       TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Member:       NewMemberRepository(db),
		Session:      NewSessionRepository(db),
		Post:         NewPostRepository(db),
		Engagement:   NewEngagementRepository(db),
		Notification: NewNotificationRepository(db),
		Research:     NewResearchRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Mentor:       NewMentorRepository(db),
		Banner:       NewBannerRepository(db),
		Stat:         NewStatRepository(db),
		Brainstorm:   NewBrainstormRepository(db),
		Tables:       NewTablesRepository(db),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// checkAffected turns a zero-row write into ErrNotFound.
func checkAffected(rowsAffected int64, err error) error {
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// insertReturningID runs a named INSERT ... RETURNING id and scans the id.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg any) (int64, error) {
	rows, err := db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
	}
	return id, rows.Err()
}
