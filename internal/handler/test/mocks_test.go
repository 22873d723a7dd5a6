package test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"ukmprhub/internal/ai"
	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput, byAdmin bool) (*models.Member, error) {
	args := m.Called(ctx, in, byAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.Member, *models.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Member), args.Get(1).(*models.Session), args.Error(2)
}

func (m *MockAuthService) StartSession(ctx context.Context, memberID int64) (*models.Session, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockAuthService) SessionToken(session *models.Session) (string, error) {
	args := m.Called(session)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.Member, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) List(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id int64) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberService) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id int64, patch service.MemberPatch) (*models.Member, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberService) UpdateProfile(ctx context.Context, id int64, patch service.MemberPatch) (*models.Member, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockFeedService) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockFeedService) Create(ctx context.Context, author *models.Member, in service.PostInput) (int64, error) {
	args := m.Called(ctx, author, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedService) Edit(ctx context.Context, actor *models.Member, postID int64, in service.PostInput) error {
	args := m.Called(ctx, actor, postID, in)
	return args.Error(0)
}

func (m *MockFeedService) Delete(ctx context.Context, actor *models.Member, postID int64) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockFeedService) ToggleLike(ctx context.Context, actor *models.Member, postID int64, emoji string) (bool, error) {
	args := m.Called(ctx, actor, postID, emoji)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedService) Vote(ctx context.Context, actor *models.Member, postID int64, optionIndex int) error {
	args := m.Called(ctx, actor, postID, optionIndex)
	return args.Error(0)
}

func (m *MockFeedService) Comment(ctx context.Context, actor *models.Member, postID int64, content string) (int64, error) {
	args := m.Called(ctx, actor, postID, content)
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalogService embeds the interface so tests only stub what they call.
type MockCatalogService struct {
	service.CatalogService
	mock.Mock
}

func (m *MockCatalogService) ListResearch(ctx context.Context) ([]models.Research, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Research), args.Error(1)
}

func (m *MockCatalogService) CreateResearch(ctx context.Context, in service.ResearchInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) DeleteResearch(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) DownloadResearch(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) CreateMentor(ctx context.Context, in service.MentorInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) UpdateMentor(ctx context.Context, id int64, in service.MentorInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockCatalogService) ListStats(ctx context.Context) ([]models.Stat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stat), args.Error(1)
}

func (m *MockCatalogService) CreateStat(ctx context.Context, in service.StatInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) StatDetails(ctx context.Context, id int64) ([]models.StatDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatDetail), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Notify(ctx context.Context, notification models.Notification) {
	m.Called(ctx, notification)
}

type MockBrainstormService struct {
	mock.Mock
}

func (m *MockBrainstormService) History(ctx context.Context, userID int64) ([]models.BrainstormChat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BrainstormChat), args.Error(1)
}

func (m *MockBrainstormService) Save(ctx context.Context, userID int64, messages []service.ChatMessage) error {
	args := m.Called(ctx, userID, messages)
	return args.Error(0)
}

func (m *MockBrainstormService) Initiate(ctx context.Context, userID int64, in service.InitiateInput) (string, error) {
	args := m.Called(ctx, userID, in)
	return args.String(0), args.Error(1)
}

func (m *MockBrainstormService) Message(ctx context.Context, userID int64, message string) (string, error) {
	args := m.Called(ctx, userID, message)
	return args.String(0), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) service.HealthReport {
	args := m.Called(ctx)
	return args.Get(0).(service.HealthReport)
}

type MockAI struct {
	mock.Mock
}

func (m *MockAI) Greeting(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockAI) Tips(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockAI) News(ctx context.Context) []ai.NewsItem {
	return m.Called(ctx).Get(0).([]ai.NewsItem)
}

func (m *MockAI) Status(ctx context.Context) ai.Status {
	return m.Called(ctx).Get(0).(ai.Status)
}

func (m *MockAI) BrainstormInitiate(ctx context.Context, nickname, topic, problem, location string) (string, error) {
	args := m.Called(ctx, nickname, topic, problem, location)
	return args.String(0), args.Error(1)
}

func (m *MockAI) BrainstormContinue(ctx context.Context, message string, history []ai.Turn) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}
