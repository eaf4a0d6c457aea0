package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pokehub-backend/internal/config"
	"pokehub-backend/internal/database"
	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/repository"
	"pokehub-backend/internal/service"
	"pokehub-backend/internal/validation"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SampleData is the layout of the sample teams file
type SampleData struct {
	Owner string         `yaml:"owner"`
	Teams []pokemon.Team `yaml:"teams"`
}

func main() {
	dataFile := flag.String("file", "scripts/data/sample_teams.yaml", "YAML file with sample teams")
	audit := flag.String("audit", "", "re-check the owner's saved teams of this format id instead of loading")
	flag.Parse()

	log.Println("Loading sample teams...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	source := formats.EmbeddedSource()
	if cfg.GameDataDir != "" {
		source = formats.DirSource(cfg.GameDataDir)
	}
	registry := formats.NewRegistry(source)
	teamService := service.NewTeamService(repository.NewTeamRepository(db), validation.NewEngine(nil, registry))

	data, err := loadSampleData(*dataFile)
	if err != nil {
		log.Fatalf("Failed to read sample teams: %v", err)
	}

	ctx := context.Background()
	if *audit != "" {
		if err := auditFormat(ctx, teamService, data.Owner, *audit); err != nil {
			log.Fatalf("Audit failed: %v", err)
		}
		return
	}

	created, err := loadTeams(ctx, teamService, data)
	if err != nil {
		log.Fatalf("Failed to load sample teams: %v", err)
	}

	log.Printf("Sample teams loaded: %d created", created)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // "record not found" is expected while checking names
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSampleData(path string) (*SampleData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data SampleData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if data.Owner == "" {
		return nil, fmt.Errorf("%s: owner is required", path)
	}
	return &data, nil
}

// loadTeams saves every sample team through the regular write path, so
// illegal samples are reported and skipped rather than stored.
func loadTeams(ctx context.Context, teams service.TeamServiceInterface, data *SampleData) (int, error) {
	created := 0
	for i := range data.Teams {
		team := &data.Teams[i]

		resp, err := teams.CreateTeam(ctx, data.Owner, team)
		var exists *apperrors.AlreadyExistsError
		var illegal *apperrors.FormatLegalityError
		var invalid *apperrors.TeamValidationError
		switch {
		case err == nil:
			created++
			log.Printf("  created %q (%s)", resp.Name, resp.FormatID)
			for _, w := range resp.Warnings {
				log.Printf("    warning: %s", w)
			}
		case errors.As(err, &exists):
			log.Printf("  skipped %q: already exists", team.Name)
		case errors.As(err, &illegal):
			log.Printf("  skipped %q: %s", team.Name, illegal.Error())
		case errors.As(err, &invalid):
			log.Printf("  skipped %q: %s", team.Name, invalid.Error())
		default:
			return created, fmt.Errorf("team %q: %w", team.Name, err)
		}
	}
	return created, nil
}

// auditFormat re-checks the sample owner's saved teams of formatID.
func auditFormat(ctx context.Context, teams service.TeamServiceInterface, owner, formatID string) error {
	report, err := teams.AuditFormat(ctx, owner, formatID)
	if err != nil {
		return err
	}

	log.Printf("Checked %d %s teams of %s, %d illegal", report.Checked, report.FormatID, owner, len(report.Illegal))
	for _, t := range report.Illegal {
		log.Printf("  %s (%s)", t.Name, t.ID)
		for _, msg := range t.Errors {
			log.Printf("    %s", msg)
		}
	}
	return nil
}
