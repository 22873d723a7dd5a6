package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

// MemberPatch carries the fields of a member update. Nil or blank values
// keep the stored value.
type MemberPatch struct {
	Name      *string         `json:"name" validate:"omitempty,max=120"`
	Username  *string         `json:"username" validate:"omitempty,len=0|min=3,max=50"`
	Password  *string         `json:"password" validate:"omitempty,len=0|min=6"`
	Major     *string         `json:"major"`
	Program   *string         `json:"program"`
	EntryYear *models.FlexInt `json:"entryYear" validate:"omitempty,eq=0|gte=1950,lte=2100"`
	GradYear  *models.FlexInt `json:"gradYear" validate:"omitempty,eq=0|gte=1950,lte=2100"`
	Role      *string         `json:"role" validate:"omitempty,len=0|oneof=Anggota Pengurus Alumni Admin"`
	Wa        *string         `json:"wa"`
	Nim       *string         `json:"nim"`
	Photo     *string         `json:"photo"`
	Email     *string         `json:"email" validate:"omitempty,len=0|email"`
	Bio       *string         `json:"bio"`
}

type MemberService interface {
	List(ctx context.Context) ([]models.Member, error)
	Get(ctx context.Context, id int64) (*models.Member, error)
	GetByUsername(ctx context.Context, username string) (*models.Member, error)
	Update(ctx context.Context, id int64, patch MemberPatch) (*models.Member, error)
	UpdateProfile(ctx context.Context, id int64, patch MemberPatch) (*models.Member, error)
	Delete(ctx context.Context, id int64) error
}

type memberService struct {
	members  repository.MemberRepository
	sessions repository.SessionRepository
	media    *storage.Media
}

func NewMemberService(members repository.MemberRepository, sessions repository.SessionRepository, media *storage.Media) MemberService {
	return &memberService{
		members:  members,
		sessions: sessions,
		media:    media,
	}
}

func (s *memberService) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return members, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*models.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "member not found")
	}
	return member, nil
}

func (s *memberService) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	member, err := s.members.GetByUsername(ctx, username)
	if err != nil {
		return nil, storeError(err, "member not found")
	}
	return member, nil
}

// Update is the admin edit; it may change the role.
func (s *memberService) Update(ctx context.Context, id int64, patch MemberPatch) (*models.Member, error) {
	return s.update(ctx, id, patch, true)
}

// UpdateProfile is the self-service edit; a role in the patch is ignored.
func (s *memberService) UpdateProfile(ctx context.Context, id int64, patch MemberPatch) (*models.Member, error) {
	return s.update(ctx, id, patch, false)
}

func (s *memberService) update(ctx context.Context, id int64, patch MemberPatch, allowRole bool) (*models.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "member not found")
	}

	if username := trimmed(patch.Username); username != nil && (member.Username == nil || *username != *member.Username) {
		taken, err := s.members.UsernameTaken(ctx, *username, id)
		if err != nil {
			return nil, apperr.Store(err)
		}
		if taken {
			return nil, apperr.Validation("username already taken")
		}
		member.Username = username
	}

	if patch.Password != nil && *patch.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Store(fmt.Errorf("failed to hash password: %w", err))
		}
		member.Password = string(hashedPassword)
	}

	if photo := trimmed(patch.Photo); photo != nil {
		stored, err := s.media.Normalize(ctx, "members", photo)
		if err != nil {
			return nil, err
		}
		member.Photo = stored
	}

	mergeString(&member.Name, patch.Name)
	mergeString(&member.Major, patch.Major)
	mergeString(&member.Program, patch.Program)
	if year := patch.EntryYear.IntPtr(); year != nil {
		member.EntryYear = *year
	}
	if year := patch.GradYear.IntPtr(); year != nil {
		member.GradYear = year
	}
	if allowRole && patch.Role != nil && *patch.Role != "" {
		member.Role = *patch.Role
	}
	mergeOptional(&member.Wa, patch.Wa)
	mergeOptional(&member.Nim, patch.Nim)
	mergeOptional(&member.Email, patch.Email)
	mergeOptional(&member.Bio, patch.Bio)

	if err := s.members.Update(ctx, member); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Validation("username already taken")
		}
		return nil, storeError(err, "member not found")
	}

	return member, nil
}

// Delete removes the member's sessions first so no cookie outlives the row.
func (s *memberService) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.DeleteByUser(ctx, id); err != nil {
		log.Printf("Failed to delete sessions of member %d: %v", id, err)
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return storeError(err, "member not found")
	}

	return nil
}

func mergeString(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}

func mergeOptional(dst **string, src *string) {
	if v := trimmed(src); v != nil {
		*dst = v
	}
}
