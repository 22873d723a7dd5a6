package service

import (
	"context"
	"log"
	"time"

	"ukmprhub/internal/repository"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	HealthCheck() error
}

type HealthReport struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Tables    int    `json:"tables"`
}

type HealthService interface {
	Check(ctx context.Context) HealthReport
}

type healthService struct {
	db     Pinger
	tables repository.TablesRepository
}

func NewHealthService(db Pinger, tables repository.TablesRepository) HealthService {
	return &healthService{db: db, tables: tables}
}

// Check always reports status "ok"; database problems only show up in the
// diagnostic fields.
func (s *healthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "unavailable",
	}

	if s.db == nil {
		return report
	}
	if err := s.db.HealthCheck(); err != nil {
		log.Printf("Health check: database ping failed: %v", err)
		return report
	}
	report.Database = "ok"

	count, err := s.tables.CountTablesDB(ctx)
	if err != nil {
		log.Printf("Health check: %v", err)
		return report
	}
	report.Tables = count

	return report
}
