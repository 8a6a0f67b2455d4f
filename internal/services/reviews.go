package services

import (
	"errors"

	"github.com/rohits-web03/usefulutilities/internal/models"
	"gorm.io/gorm"
)

// ReviewEntry is one row of a review listing: the review joined with the
// reviewer's display name.
type ReviewEntry struct {
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	Username string `json:"username"`
}

// ReviewService records and lists utility reviews.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Submit stores a review against an existing utility row. Utilities only
// come into existence through download events, so a never-downloaded
// utility cannot be reviewed and resolves to ErrUtilityNotFound. Rating
// range and review length are not validated.
func (s *ReviewService) Submit(userID uint, utilityName string, rating int, review string) error {
	var utility models.Utility
	err := s.db.Where("name = ?", utilityName).First(&utility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUtilityNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Create(&models.Review{
		UserID:    userID,
		UtilityID: utility.ID,
		Rating:    rating,
		Review:    review,
	}).Error
}

// List returns every review for the named utility joined with the
// reviewer's username, in the store's natural order. An unknown utility
// yields an empty list, not an error.
func (s *ReviewService) List(utilityName string) ([]ReviewEntry, error) {
	var utility models.Utility
	err := s.db.Where("name = ?", utilityName).First(&utility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []ReviewEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := []ReviewEntry{}
	err = s.db.Table("reviews").
		Select("reviews.rating, reviews.review, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.utility_id = ?", utility.ID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
