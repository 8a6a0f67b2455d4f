package services

import (
	"errors"

	"github.com/rohits-web03/usefulutilities/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService keeps the per-utility download counters.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// RecordDownload bumps the counter for name, creating the row with
// downloads=1 on first sight. The upsert is a single statement so
// concurrent downloads of the same utility never lose an increment.
func (s *CatalogService) RecordDownload(name string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"downloads": gorm.Expr("downloads + 1"),
		}),
	}).Create(&models.Utility{Name: name, Downloads: 1}).Error
}

// GetDownloads returns the counter for name, or 0 for a name that has
// never been downloaded. An unknown name is not an error.
func (s *CatalogService) GetDownloads(name string) (int64, error) {
	var utility models.Utility
	err := s.db.Where("name = ?", name).First(&utility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return utility.Downloads, nil
}
