package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"ukmprhub/internal/ai"
	"ukmprhub/internal/models"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *models.Member) (int64, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *models.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, nowMillis int64) (int64, error) {
	args := m.Called(ctx, nowMillis)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) LikesFor(ctx context.Context, postIDs []int64) ([]models.PostLike, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostLike), args.Error(1)
}

func (m *MockEngagementRepository) CommentsFor(ctx context.Context, postIDs []int64) ([]models.PostComment, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostComment), args.Error(1)
}

func (m *MockEngagementRepository) VoteCountsFor(ctx context.Context, postIDs []int64) ([]models.VoteCount, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VoteCount), args.Error(1)
}

func (m *MockEngagementRepository) ToggleLike(ctx context.Context, postID, userID int64, emoji string) (bool, error) {
	args := m.Called(ctx, postID, userID, emoji)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) AddComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) AddVote(ctx context.Context, vote models.PostVote) (bool, error) {
	args := m.Called(ctx, vote)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) DropVotesFrom(ctx context.Context, postID int64, optionCount int) error {
	return m.Called(ctx, postID, optionCount).Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockStatRepository struct {
	mock.Mock
}

func (m *MockStatRepository) List(ctx context.Context) ([]models.Stat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stat), args.Error(1)
}

func (m *MockStatRepository) GetByID(ctx context.Context, id int64) (*models.Stat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stat), args.Error(1)
}

func (m *MockStatRepository) Create(ctx context.Context, stat *models.Stat) (int64, error) {
	args := m.Called(ctx, stat)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatRepository) Update(ctx context.Context, stat *models.Stat) error {
	return m.Called(ctx, stat).Error(0)
}

func (m *MockStatRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) List(ctx context.Context) ([]models.Mentor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	args := m.Called(ctx, mentor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	return m.Called(ctx, mentor).Error(0)
}

func (m *MockMentorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) List(ctx context.Context) ([]models.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Banner), args.Error(1)
}

func (m *MockBannerRepository) Create(ctx context.Context, banner *models.Banner) (int64, error) {
	args := m.Called(ctx, banner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return m.Called(ctx, banner).Error(0)
}

func (m *MockBannerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBrainstormRepository struct {
	mock.Mock
}

func (m *MockBrainstormRepository) History(ctx context.Context, userID int64) ([]models.BrainstormChat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BrainstormChat), args.Error(1)
}

func (m *MockBrainstormRepository) Append(ctx context.Context, messages []models.BrainstormChat) error {
	return m.Called(ctx, messages).Error(0)
}

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) HealthCheck() error {
	return m.Called().Error(0)
}

type MockContent struct {
	mock.Mock
}

func (m *MockContent) Greeting(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockContent) Tips(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockContent) News(ctx context.Context) []ai.NewsItem {
	return m.Called(ctx).Get(0).([]ai.NewsItem)
}

func (m *MockContent) Status(ctx context.Context) ai.Status {
	return m.Called(ctx).Get(0).(ai.Status)
}

func (m *MockContent) BrainstormInitiate(ctx context.Context, nickname, topic, problem, location string) (string, error) {
	args := m.Called(ctx, nickname, topic, problem, location)
	return args.String(0), args.Error(1)
}

func (m *MockContent) BrainstormContinue(ctx context.Context, message string, history []ai.Turn) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}
