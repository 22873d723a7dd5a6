package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

const (
	defaultAnnouncementStatus = "Open"
	defaultMentorRating       = 5.0
)

type ResearchInput struct {
	Title    string `json:"title" validate:"required,max=300"`
	Category string `json:"category" validate:"required,oneof=PKM Essay Jurnal Modul"`
	Author   string `json:"author" validate:"required,max=200"`
	Year     int    `json:"year" validate:"required,gte=1900,lte=2100"`
}

type AnnouncementInput struct {
	Project    string  `json:"project" validate:"required,max=200"`
	RoleNeeded string  `json:"roleNeeded" validate:"required,max=200"`
	Initiator  string  `json:"initiator" validate:"required,max=120"`
	Status     string  `json:"status" validate:"max=40"`
	Deadline   string  `json:"deadline" validate:"max=60"`
	Wa         *string `json:"wa"`
}

// MentorInput takes available as 0/1 or as a boolean.
type MentorInput struct {
	Name         string          `json:"name" validate:"required,max=120"`
	Expertise    string          `json:"expertise" validate:"required,max=200"`
	Rating       *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Available    *models.IntBool `json:"available"`
	Experience   *string         `json:"experience"`
	Education    *string         `json:"education"`
	Achievements *string         `json:"achievements"`
	Photo        *string         `json:"photo"`
}

type BannerInput struct {
	Title string  `json:"title" validate:"required,max=200"`
	Image string  `json:"image" validate:"required"`
	Link  *string `json:"link"`
}

// StatInput accepts details_json either as an array or as a string holding
// the encoded array, which is what the admin panel sends.
type StatInput struct {
	Label     string          `json:"label" validate:"required,max=120"`
	Value     string          `json:"value" validate:"required,max=60"`
	Icon      string          `json:"icon" validate:"required,oneof=Award TrendingUp Users BookOpen Search"`
	Color     string          `json:"color" validate:"max=60"`
	Bg        string          `json:"bg" validate:"max=60"`
	SortOrder int             `json:"sort_order"`
	Details   json.RawMessage `json:"details_json"`
}

type CatalogService interface {
	ListResearch(ctx context.Context) ([]models.Research, error)
	CreateResearch(ctx context.Context, in ResearchInput) (int64, error)
	UpdateResearch(ctx context.Context, id int64, in ResearchInput) error
	DeleteResearch(ctx context.Context, id int64) error
	DownloadResearch(ctx context.Context, id int64) (int, error)

	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, in AnnouncementInput) (int64, error)
	UpdateAnnouncement(ctx context.Context, id int64, in AnnouncementInput) error
	DeleteAnnouncement(ctx context.Context, id int64) error

	ListMentors(ctx context.Context) ([]models.Mentor, error)
	CreateMentor(ctx context.Context, in MentorInput) (int64, error)
	UpdateMentor(ctx context.Context, id int64, in MentorInput) error
	DeleteMentor(ctx context.Context, id int64) error

	ListBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, in BannerInput) (int64, error)
	UpdateBanner(ctx context.Context, id int64, in BannerInput) error
	DeleteBanner(ctx context.Context, id int64) error

	ListStats(ctx context.Context) ([]models.Stat, error)
	StatDetails(ctx context.Context, id int64) ([]models.StatDetail, error)
	CreateStat(ctx context.Context, in StatInput) (int64, error)
	UpdateStat(ctx context.Context, id int64, in StatInput) error
	DeleteStat(ctx context.Context, id int64) error
}

type catalogService struct {
	research      repository.ResearchRepository
	announcements repository.AnnouncementRepository
	mentors       repository.MentorRepository
	banners       repository.BannerRepository
	stats         repository.StatRepository
	media         *storage.Media
}

func NewCatalogService(rep *repository.Repository, media *storage.Media) CatalogService {
	return &catalogService{
		research:      rep.Research,
		announcements: rep.Announcement,
		mentors:       rep.Mentor,
		banners:       rep.Banner,
		stats:         rep.Stat,
		media:         media,
	}
}

func (s *catalogService) ListResearch(ctx context.Context) ([]models.Research, error) {
	items, err := s.research.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

func (s *catalogService) CreateResearch(ctx context.Context, in ResearchInput) (int64, error) {
	id, err := s.research.Create(ctx, researchFromInput(in))
	if err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

func (s *catalogService) UpdateResearch(ctx context.Context, id int64, in ResearchInput) error {
	research := researchFromInput(in)
	research.ID = id

	if err := s.research.Update(ctx, research); err != nil {
		return storeError(err, "research not found")
	}
	return nil
}

func (s *catalogService) DeleteResearch(ctx context.Context, id int64) error {
	if err := s.research.Delete(ctx, id); err != nil {
		return storeError(err, "research not found")
	}
	return nil
}

func (s *catalogService) DownloadResearch(ctx context.Context, id int64) (int, error) {
	downloads, err := s.research.IncrementDownloads(ctx, id)
	if err != nil {
		return 0, storeError(err, "research not found")
	}
	return downloads, nil
}

func researchFromInput(in ResearchInput) *models.Research {
	return &models.Research{
		Title:    strings.TrimSpace(in.Title),
		Category: in.Category,
		Author:   strings.TrimSpace(in.Author),
		Year:     in.Year,
	}
}

func (s *catalogService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.announcements.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

func (s *catalogService) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (int64, error) {
	id, err := s.announcements.Create(ctx, announcementFromInput(in))
	if err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

func (s *catalogService) UpdateAnnouncement(ctx context.Context, id int64, in AnnouncementInput) error {
	announcement := announcementFromInput(in)
	announcement.ID = id

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return storeError(err, "announcement not found")
	}
	return nil
}

func (s *catalogService) DeleteAnnouncement(ctx context.Context, id int64) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		return storeError(err, "announcement not found")
	}
	return nil
}

func announcementFromInput(in AnnouncementInput) *models.Announcement {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = defaultAnnouncementStatus
	}

	return &models.Announcement{
		Project:    strings.TrimSpace(in.Project),
		RoleNeeded: strings.TrimSpace(in.RoleNeeded),
		Initiator:  strings.TrimSpace(in.Initiator),
		Status:     status,
		Deadline:   strings.TrimSpace(in.Deadline),
		Wa:         trimmed(in.Wa),
	}
}

func (s *catalogService) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	items, err := s.mentors.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

func (s *catalogService) CreateMentor(ctx context.Context, in MentorInput) (int64, error) {
	mentor, err := s.mentorFromInput(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := s.mentors.Create(ctx, mentor)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

func (s *catalogService) UpdateMentor(ctx context.Context, id int64, in MentorInput) error {
	mentor, err := s.mentorFromInput(ctx, in)
	if err != nil {
		return err
	}
	mentor.ID = id

	if err := s.mentors.Update(ctx, mentor); err != nil {
		return storeError(err, "mentor not found")
	}
	return nil
}

func (s *catalogService) DeleteMentor(ctx context.Context, id int64) error {
	if err := s.mentors.Delete(ctx, id); err != nil {
		return storeError(err, "mentor not found")
	}
	return nil
}

func (s *catalogService) mentorFromInput(ctx context.Context, in MentorInput) (*models.Mentor, error) {
	photo, err := s.media.Normalize(ctx, "mentors", trimmed(in.Photo))
	if err != nil {
		return nil, err
	}

	mentor := &models.Mentor{
		Name:         strings.TrimSpace(in.Name),
		Expertise:    strings.TrimSpace(in.Expertise),
		Rating:       defaultMentorRating,
		Available:    true,
		Experience:   trimmed(in.Experience),
		Education:    trimmed(in.Education),
		Achievements: trimmed(in.Achievements),
		Photo:        photo,
	}
	if in.Rating != nil {
		mentor.Rating = *in.Rating
	}
	if in.Available != nil {
		mentor.Available = *in.Available
	}

	return mentor, nil
}

func (s *catalogService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	items, err := s.banners.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

func (s *catalogService) CreateBanner(ctx context.Context, in BannerInput) (int64, error) {
	banner, err := s.bannerFromInput(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := s.banners.Create(ctx, banner)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

func (s *catalogService) UpdateBanner(ctx context.Context, id int64, in BannerInput) error {
	banner, err := s.bannerFromInput(ctx, in)
	if err != nil {
		return err
	}
	banner.ID = id

	if err := s.banners.Update(ctx, banner); err != nil {
		return storeError(err, "banner not found")
	}
	return nil
}

func (s *catalogService) DeleteBanner(ctx context.Context, id int64) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		return storeError(err, "banner not found")
	}
	return nil
}

func (s *catalogService) bannerFromInput(ctx context.Context, in BannerInput) (*models.Banner, error) {
	image := strings.TrimSpace(in.Image)
	if image == "" {
		return nil, apperr.Validation("banner image is required")
	}

	stored, err := s.media.Normalize(ctx, "banners", &image)
	if err != nil {
		return nil, err
	}

	return &models.Banner{
		Title: strings.TrimSpace(in.Title),
		Image: *stored,
		Link:  trimmed(in.Link),
	}, nil
}

func (s *catalogService) ListStats(ctx context.Context) ([]models.Stat, error) {
	items, err := s.stats.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

// StatDetails decodes the stored drill-down list of one stat.
func (s *catalogService) StatDetails(ctx context.Context, id int64) ([]models.StatDetail, error) {
	stat, err := s.stats.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "stat not found")
	}

	details := []models.StatDetail{}
	if strings.TrimSpace(stat.DetailsJSON) == "" {
		return details, nil
	}
	if err := json.Unmarshal([]byte(stat.DetailsJSON), &details); err != nil {
		return nil, apperr.Store(fmt.Errorf("stat %d has malformed details: %w", id, err))
	}

	return details, nil
}

func (s *catalogService) CreateStat(ctx context.Context, in StatInput) (int64, error) {
	stat, err := statFromInput(in)
	if err != nil {
		return 0, err
	}

	id, err := s.stats.Create(ctx, stat)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

func (s *catalogService) UpdateStat(ctx context.Context, id int64, in StatInput) error {
	stat, err := statFromInput(in)
	if err != nil {
		return err
	}
	stat.ID = id

	if err := s.stats.Update(ctx, stat); err != nil {
		return storeError(err, "stat not found")
	}
	return nil
}

func (s *catalogService) DeleteStat(ctx context.Context, id int64) error {
	if err := s.stats.Delete(ctx, id); err != nil {
		return storeError(err, "stat not found")
	}
	return nil
}

func statFromInput(in StatInput) (*models.Stat, error) {
	details, err := normalizeDetails(in.Details)
	if err != nil {
		return nil, err
	}

	return &models.Stat{
		Label:       strings.TrimSpace(in.Label),
		Value:       strings.TrimSpace(in.Value),
		Icon:        in.Icon,
		Color:       strings.TrimSpace(in.Color),
		Bg:          strings.TrimSpace(in.Bg),
		SortOrder:   in.SortOrder,
		DetailsJSON: details,
	}, nil
}

// normalizeDetails returns the canonical encoding of a details list given
// either as an array or as a string holding one. Absent details become "[]".
func normalizeDetails(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "[]", nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return "", apperr.Validation("details_json must be a JSON array")
		}
		if strings.TrimSpace(encoded) == "" {
			return "[]", nil
		}
		raw = json.RawMessage(encoded)
	}

	var details []models.StatDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return "", apperr.Validation("details_json must be a JSON array")
	}
	if details == nil {
		details = []models.StatDetail{}
	}

	data, err := json.Marshal(details)
	if err != nil {
		return "", apperr.Store(fmt.Errorf("failed to encode stat details: %w", err))
	}
	return string(data), nil
}
