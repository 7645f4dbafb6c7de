package controllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/pkg/apperrors"
)

type MediaController struct {
	db *gorm.DB
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{db: db}
}

// Add is idempotent on (event_id, url): a repeated add returns the existing
// row's id without creating a duplicate. A concurrent duplicate insert trips
// the unique index and resolves to the same id.
func (c *MediaController) Add(eventID, userID uint, mediaType, url string) (uint, error) {
	var existing models.Media
	err := c.db.Where("event_id = ? AND url = ?", eventID, url).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to check existing media")
	}

	media := models.Media{
		EventID:    &eventID,
		UserID:     &userID,
		URL:        url,
		Type:       mediaType,
		UploadedAt: time.Now(),
	}
	if err := c.db.Create(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := c.db.Where("event_id = ? AND url = ?", eventID, url).First(&existing).Error; err != nil {
				return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to resolve duplicate media")
			}
			return existing.ID, nil
		}
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create media")
	}
	return media.ID, nil
}

func (c *MediaController) ForEvent(eventID uint) ([]models.Media, error) {
	media := make([]models.Media, 0)
	if err := c.db.Where("event_id = ?", eventID).Find(&media).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list media")
	}
	return media, nil
}

func (c *MediaController) ForUser(userID uint) ([]models.Media, error) {
	media := make([]models.Media, 0)
	if err := c.db.Where("user_id = ?", userID).Find(&media).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list media")
	}
	return media, nil
}

func (c *MediaController) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	err := c.db.First(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get media")
	}
	return &media, nil
}

func (c *MediaController) Delete(id uint) (bool, error) {
	result := c.db.Delete(&models.Media{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete media")
	}
	return result.RowsAffected > 0, nil
}
