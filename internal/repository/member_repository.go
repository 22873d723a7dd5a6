package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"ukmprhub/internal/models"
)

const memberColumns = `id, name, username, password, major, program, entry_year, grad_year, role, wa, nim, photo, email, bio`

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) (int64, error) {
	query := `
		INSERT INTO members (name, username, password, major, program, entry_year, grad_year, role, wa, nim, photo, email, bio)
		VALUES (:name, :username, :password, :major, :program, :entry_year, :grad_year, :role, :wa, :nim, :photo, :email, :bio)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, member)
	if err != nil {
		return 0, fmt.Errorf("failed to create member: %w", err)
	}

	member.ID = id
	return id, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	var member models.Member

	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	err := r.db.GetContext(ctx, &member, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	var member models.Member

	query := `SELECT ` + memberColumns + ` FROM members WHERE username = $1`

	err := r.db.GetContext(ctx, &member, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get member by username: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]models.Member, error) {
	members := []models.Member{}

	query := `SELECT ` + memberColumns + ` FROM members ORDER BY name ASC, id ASC`

	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	query := `
		UPDATE members SET
			name = :name,
			username = :username,
			password = :password,
			major = :major,
			program = :program,
			entry_year = :entry_year,
			grad_year = :grad_year,
			role = :role,
			wa = :wa,
			nim = :nim,
			photo = :photo,
			email = :email,
			bio = :bio
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("member %d: %w", member.ID, err)
	}

	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	if err := checkAffected(result.RowsAffected()); err != nil {
		return fmt.Errorf("member %d: %w", id, err)
	}

	return nil
}

// UsernameTaken reports whether another member already owns username.
// Pass excludeID 0 when no member should be excluded.
func (r *memberRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM members WHERE username = $1 AND id <> $2`

	if err := r.db.GetContext(ctx, &count, query, username, excludeID); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}
