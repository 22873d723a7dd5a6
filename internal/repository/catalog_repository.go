package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"ukmprhub/internal/models"
)

// deleteByID removes one row of table and maps a miss to ErrNotFound.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("%s %d: %w", table, id, err)
	}

	return nil
}

// namedUpdate runs a named UPDATE and maps a miss to ErrNotFound.
func namedUpdate(ctx context.Context, db *sqlx.DB, table, query string, id int64, arg any) error {
	result, err := db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("%s %d: %w", table, id, err)
	}

	return nil
}

type researchRepository struct {
	db *sqlx.DB
}

func NewResearchRepository(db *sqlx.DB) ResearchRepository {
	return &researchRepository{db: db}
}

func (r *researchRepository) List(ctx context.Context) ([]models.Research, error) {
	items := []models.Research{}

	query := `SELECT id, title, category, author, year, downloads FROM research ORDER BY year DESC, id DESC`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list research: %w", err)
	}

	return items, nil
}

func (r *researchRepository) Create(ctx context.Context, research *models.Research) (int64, error) {
	query := `
		INSERT INTO research (title, category, author, year, downloads)
		VALUES (:title, :category, :author, :year, :downloads)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, research)
	if err != nil {
		return 0, fmt.Errorf("failed to create research: %w", err)
	}

	research.ID = id
	return id, nil
}

func (r *researchRepository) Update(ctx context.Context, research *models.Research) error {
	query := `
		UPDATE research SET title = :title, category = :category, author = :author, year = :year
		WHERE id = :id
	`
	return namedUpdate(ctx, r.db, "research", query, research.ID, research)
}

func (r *researchRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "research", id)
}

// IncrementDownloads bumps the counter in a single statement and returns the new value.
func (r *researchRepository) IncrementDownloads(ctx context.Context, id int64) (int, error) {
	var downloads int

	query := `UPDATE research SET downloads = downloads + 1 WHERE id = $1 RETURNING downloads`

	err := r.db.GetContext(ctx, &downloads, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("research %d: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to increment downloads: %w", err)
	}

	return downloads, nil
}

type announcementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	items := []models.Announcement{}

	query := `SELECT id, project, role_needed, initiator, status, deadline, wa FROM announcements ORDER BY id DESC`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return items, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	query := `
		INSERT INTO announcements (project, role_needed, initiator, status, deadline, wa)
		VALUES (:project, :role_needed, :initiator, :status, :deadline, :wa)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, announcement)
	if err != nil {
		return 0, fmt.Errorf("failed to create announcement: %w", err)
	}

	announcement.ID = id
	return id, nil
}

func (r *announcementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements SET
			project = :project,
			role_needed = :role_needed,
			initiator = :initiator,
			status = :status,
			deadline = :deadline,
			wa = :wa
		WHERE id = :id
	`
	return namedUpdate(ctx, r.db, "announcements", query, announcement.ID, announcement)
}

func (r *announcementRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "announcements", id)
}

type mentorRepository struct {
	db *sqlx.DB
}

func NewMentorRepository(db *sqlx.DB) MentorRepository {
	return &mentorRepository{db: db}
}

func (r *mentorRepository) List(ctx context.Context) ([]models.Mentor, error) {
	items := []models.Mentor{}

	query := `
		SELECT id, name, expertise, rating, available, experience, education, achievements, photo
		FROM mentors
		ORDER BY rating DESC, id ASC
	`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	return items, nil
}

func (r *mentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	query := `
		INSERT INTO mentors (name, expertise, rating, available, experience, education, achievements, photo)
		VALUES (:name, :expertise, :rating, :available, :experience, :education, :achievements, :photo)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, mentor)
	if err != nil {
		return 0, fmt.Errorf("failed to create mentor: %w", err)
	}

	mentor.ID = id
	return id, nil
}

func (r *mentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	query := `
		UPDATE mentors SET
			name = :name,
			expertise = :expertise,
			rating = :rating,
			available = :available,
			experience = :experience,
			education = :education,
			achievements = :achievements,
			photo = :photo
		WHERE id = :id
	`
	return namedUpdate(ctx, r.db, "mentors", query, mentor.ID, mentor)
}

func (r *mentorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "mentors", id)
}

type bannerRepository struct {
	db *sqlx.DB
}

func NewBannerRepository(db *sqlx.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) List(ctx context.Context) ([]models.Banner, error) {
	items := []models.Banner{}

	if err := r.db.SelectContext(ctx, &items, `SELECT id, title, image, link FROM banners ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	return items, nil
}

func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) (int64, error) {
	query := `
		INSERT INTO banners (title, image, link)
		VALUES (:title, :image, :link)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, banner)
	if err != nil {
		return 0, fmt.Errorf("failed to create banner: %w", err)
	}

	banner.ID = id
	return id, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	query := `UPDATE banners SET title = :title, image = :image, link = :link WHERE id = :id`
	return namedUpdate(ctx, r.db, "banners", query, banner.ID, banner)
}

func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "banners", id)
}

type statRepository struct {
	db *sqlx.DB
}

func NewStatRepository(db *sqlx.DB) StatRepository {
	return &statRepository{db: db}
}

const statColumns = `id, label, value, icon, color, bg, sort_order, details_json`

func (r *statRepository) List(ctx context.Context) ([]models.Stat, error) {
	items := []models.Stat{}

	if err := r.db.SelectContext(ctx, &items, `SELECT `+statColumns+` FROM stats ORDER BY sort_order ASC, id ASC`); err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}

	return items, nil
}

func (r *statRepository) GetByID(ctx context.Context, id int64) (*models.Stat, error) {
	var stat models.Stat

	err := r.db.GetContext(ctx, &stat, `SELECT `+statColumns+` FROM stats WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stat %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stat: %w", err)
	}

	return &stat, nil
}

func (r *statRepository) Create(ctx context.Context, stat *models.Stat) (int64, error) {
	query := `
		INSERT INTO stats (label, value, icon, color, bg, sort_order, details_json)
		VALUES (:label, :value, :icon, :color, :bg, :sort_order, :details_json)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, stat)
	if err != nil {
		return 0, fmt.Errorf("failed to create stat: %w", err)
	}

	stat.ID = id
	return id, nil
}

func (r *statRepository) Update(ctx context.Context, stat *models.Stat) error {
	query := `
		UPDATE stats SET
			label = :label,
			value = :value,
			icon = :icon,
			color = :color,
			bg = :bg,
			sort_order = :sort_order,
			details_json = :details_json
		WHERE id = :id
	`
	return namedUpdate(ctx, r.db, "stats", query, stat.ID, stat)
}

func (r *statRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "stats", id)
}
