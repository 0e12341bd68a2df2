package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"buildpro-site/internal/config"
	"buildpro-site/internal/database"
	"buildpro-site/internal/logger"
	"buildpro-site/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFile mirrors the collection exports of the content service.
type SeedFile struct {
	Projects     []models.Project     `json:"projects"`
	Services     []models.Service     `json:"services"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

func main() {
	path := flag.String("file", "data/seed.json", "seed file to load")
	flag.Parse()

	cfg, envErr := config.LoadConfig()
	log := logger.NewLogger(cfg.Development())
	defer log.Sync()
	if envErr != nil {
		log.Warn("failed to load .env", zap.Error(envErr))
	}

	seed, err := readSeed(*path)
	if err != nil {
		log.Fatal("failed to read seed file", zap.String("path", *path), zap.Error(err))
	}

	database.InitGorm(cfg, log)
	db := database.GormDB
	if err := apply(db, seed, time.Now()); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	log.Info("seed loaded",
		zap.Int("projects", len(seed.Projects)),
		zap.Int("services", len(seed.Services)),
		zap.Int("testimonials", len(seed.Testimonials)),
	)
}

func readSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &seed, nil
}

// apply upserts every record by id in one transaction. Records without an id
// get a fresh uuid; records without a creation date get one that keeps the
// file order, since collections are listed oldest first.
func apply(db *gorm.DB, seed *SeedFile, now time.Time) error {
	for i := range seed.Projects {
		p := &seed.Projects[i]
		p.ID, p.CreatedAt = fillDefaults(p.ID, p.CreatedAt, now, i)
	}
	for i := range seed.Services {
		s := &seed.Services[i]
		s.ID, s.CreatedAt = fillDefaults(s.ID, s.CreatedAt, now, i)
	}
	for i := range seed.Testimonials {
		t := &seed.Testimonials[i]
		t.ID, t.CreatedAt = fillDefaults(t.ID, t.CreatedAt, now, i)
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if len(seed.Projects) > 0 {
			if err := tx.Clauses(upsert).Create(&seed.Projects).Error; err != nil {
				return fmt.Errorf("projects: %w", err)
			}
		}
		if len(seed.Services) > 0 {
			if err := tx.Clauses(upsert).Create(&seed.Services).Error; err != nil {
				return fmt.Errorf("services: %w", err)
			}
		}
		if len(seed.Testimonials) > 0 {
			if err := tx.Clauses(upsert).Create(&seed.Testimonials).Error; err != nil {
				return fmt.Errorf("testimonials: %w", err)
			}
		}
		return nil
	})
}

func fillDefaults(id string, created time.Time, now time.Time, i int) (string, time.Time) {
	if id == "" {
		id = uuid.NewString()
	}
	if created.IsZero() {
		created = now.Add(time.Duration(i) * time.Second)
	}
	return id, created
}
