package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"ukmprhub/internal/apperr"
	"ukmprhub/internal/config"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

var (
	ErrNotAuthenticated = apperr.Auth("authentication required")
	ErrSessionExpired   = apperr.Auth("session expired")
	errBadCredentials   = apperr.Auth("username or password incorrect")
)

type RegisterInput struct {
	Name      string          `json:"name" validate:"required,max=120"`
	Username  string          `json:"username" validate:"required,min=3,max=50"`
	Password  string          `json:"password" validate:"required,min=6"`
	Major     string          `json:"major" validate:"max=120"`
	Program   string          `json:"program" validate:"max=120"`
	EntryYear models.FlexInt  `json:"entryYear" validate:"omitempty,gte=1950,lte=2100"`
	GradYear  *models.FlexInt `json:"gradYear" validate:"omitempty,eq=0|gte=1950,lte=2100"`
	Role      string          `json:"role" validate:"omitempty,oneof=Anggota Pengurus Alumni Admin"`
	Wa        *string         `json:"wa"`
	Nim       *string         `json:"nim"`
	Photo     *string         `json:"photo"`
	Email     *string         `json:"email" validate:"omitempty,len=0|email"`
	Bio       *string         `json:"bio"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput, byAdmin bool) (*models.Member, error)
	Login(ctx context.Context, username, password string) (*models.Member, *models.Session, error)
	StartSession(ctx context.Context, memberID int64) (*models.Session, error)
	SessionToken(session *models.Session) (string, error)
	Authenticate(ctx context.Context, token string) (*models.Member, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	members  repository.MemberRepository
	sessions repository.SessionRepository
	media    *storage.Media
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(members repository.MemberRepository, sessions repository.SessionRepository, media *storage.Media, cfg config.Session) AuthService {
	secret := cfg.Secret
	if secret == "" {
		log.Println("Warning: SESSION_SECRET is not set, sessions will not survive a restart")
		secret = uuid.NewString()
	}

	return &authService{
		members:  members,
		sessions: sessions,
		media:    media,
		secret:   []byte(secret),
		ttl:      cfg.TTL,
	}
}

// Register creates a member. Unless byAdmin is set the role is forced to
// Anggota.
func (s *authService) Register(ctx context.Context, in RegisterInput, byAdmin bool) (*models.Member, error) {
	taken, err := s.members.UsernameTaken(ctx, in.Username, 0)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if taken {
		return nil, apperr.Validation("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(fmt.Errorf("failed to hash password: %w", err))
	}

	photo, err := s.media.Normalize(ctx, "members", trimmed(in.Photo))
	if err != nil {
		return nil, err
	}

	role := models.RoleAnggota
	if byAdmin && in.Role != "" {
		role = in.Role
	}

	username := in.Username
	member := &models.Member{
		Name:      in.Name,
		Username:  &username,
		Password:  string(hashedPassword),
		Major:     in.Major,
		Program:   in.Program,
		EntryYear: int(in.EntryYear),
		GradYear:  in.GradYear.IntPtr(),
		Role:      role,
		Wa:        trimmed(in.Wa),
		Nim:       trimmed(in.Nim),
		Photo:     photo,
		Email:     trimmed(in.Email),
		Bio:       trimmed(in.Bio),
	}

	if _, err := s.members.Create(ctx, member); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Validation("username already taken")
		}
		return nil, apperr.Store(err)
	}

	return member, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.Member, *models.Session, error) {
	member, err := s.members.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, errBadCredentials
		}
		return nil, nil, apperr.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, nil, errBadCredentials
	}

	session, err := s.StartSession(ctx, member.ID)
	if err != nil {
		return nil, nil, err
	}

	return member, session, nil
}

func (s *authService) StartSession(ctx context.Context, memberID int64) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    memberID,
		ExpiresAt: time.Now().Add(s.ttl).UnixMilli(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, apperr.Store(err)
	}

	return session, nil
}

// SessionToken signs the session id into the cookie value. Expiry lives in
// the session row, so the token itself carries no exp claim.
func (s *authService) SessionToken(session *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperr.Store(fmt.Errorf("failed to sign session token: %w", err))
	}

	return tokenString, nil
}

func (s *authService) sessionID(tokenString string) (string, bool) {
	if tokenString == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}

// Authenticate resolves a cookie value to its member. It fails with
// ErrNotAuthenticated when the token, the session or the member is missing,
// and with ErrSessionExpired after deleting an expired session row.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.Member, error) {
	sid, ok := s.sessionID(token)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, apperr.Store(err)
	}

	if session.Expired(time.Now()) {
		if err := s.sessions.Delete(ctx, sid); err != nil {
			log.Printf("Failed to delete expired session: %v", err)
		}
		return nil, ErrSessionExpired
	}

	member, err := s.members.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, apperr.Store(err)
	}

	return member, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	sid, ok := s.sessionID(token)
	if !ok {
		return nil
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		return apperr.Store(err)
	}

	return nil
}
