package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"ukmprhub/internal/config"
	"ukmprhub/internal/models"
)

var starterStats = []models.Stat{
	{Label: "Anggota Aktif", Value: "150+", Icon: "Users", Color: "text-white", Bg: "bg-gradient-to-br from-blue-500 to-blue-700", SortOrder: 1},
	{Label: "Karya Riset", Value: "85", Icon: "BookOpen", Color: "text-white", Bg: "bg-gradient-to-br from-emerald-500 to-emerald-700", SortOrder: 2},
	{Label: "Prestasi", Value: "42", Icon: "Award", Color: "text-white", Bg: "bg-gradient-to-br from-orange-500 to-orange-700", SortOrder: 3},
	{Label: "Hibah Penelitian", Value: "12", Icon: "TrendingUp", Color: "text-white", Bg: "bg-gradient-to-br from-purple-500 to-purple-700", SortOrder: 4},
}

var starterStatDetails = map[string][]models.StatDetail{
	"Prestasi": {
		{Title: "Juara 1 LKTI Nasional", Date: "2024", Desc: "Lomba Karya Tulis Ilmiah tingkat nasional"},
		{Title: "Pendanaan PKM-RE", Date: "2024", Desc: "Program Kreativitas Mahasiswa Riset Eksakta"},
	},
}

var starterBanners = []models.Banner{
	{Title: "Banner 1", Image: "https://storage.googleapis.com/ai-studio-bucket-353083286262-us-west1/Ukmpr/banner1.png"},
	{Title: "Banner 2", Image: "https://storage.googleapis.com/ai-studio-bucket-353083286262-us-west1/Ukmpr/banner2.png"},
	{Title: "Banner 3", Image: "https://storage.googleapis.com/ai-studio-bucket-353083286262-us-west1/Ukmpr/banner3.png"},
}

// Seed inserts a default admin and starter stats/banners when absent. Every
// step checks before inserting, so repeated runs are no-ops.
func (db *DB) Seed(ctx context.Context, admin config.Admin) error {
	if err := db.seedAdmin(ctx, admin); err != nil {
		return err
	}
	if err := db.seedStats(ctx); err != nil {
		return err
	}
	return db.seedBanners(ctx)
}

func (db *DB) seedAdmin(ctx context.Context, admin config.Admin) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE role = $1`, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO members (name, username, password, major, program, entry_year, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO NOTHING
	`, "Administrator", admin.Username, string(hashed), "-", "-", 0, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Printf("Seeded admin account %q", admin.Username)
	return nil
}

func (db *DB) seedStats(ctx context.Context) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM stats`); err != nil {
		return fmt.Errorf("failed to count stats: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, stat := range starterStats {
		details := starterStatDetails[stat.Label]
		if details == nil {
			details = []models.StatDetail{}
		}
		data, err := json.Marshal(details)
		if err != nil {
			return err
		}

		_, err = db.ExecContext(ctx, `
			INSERT INTO stats (label, value, icon, color, bg, sort_order, details_json)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, stat.Label, stat.Value, stat.Icon, stat.Color, stat.Bg, stat.SortOrder, string(data))
		if err != nil {
			return fmt.Errorf("failed to seed stat %q: %w", stat.Label, err)
		}
	}

	return nil
}

func (db *DB) seedBanners(ctx context.Context) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM banners`); err != nil {
		return fmt.Errorf("failed to count banners: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, banner := range starterBanners {
		_, err := db.ExecContext(ctx, `INSERT INTO banners (title, image) VALUES ($1, $2)`, banner.Title, banner.Image)
		if err != nil {
			return fmt.Errorf("failed to seed banner %q: %w", banner.Title, err)
		}
	}

	return nil
}
