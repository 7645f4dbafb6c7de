package controllers

import (
	"errors"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/pkg/apperrors"
)

type LikeController struct {
	db *gorm.DB
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{db: db}
}

// Add records a like. A duplicate pair trips the composite primary key and
// is reported as false, never as an error.
func (c *LikeController) Add(userID, eventID uint) (bool, error) {
	like := models.Like{
		UserID:  userID,
		EventID: eventID,
	}
	if err := c.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create like")
	}
	return true, nil
}

func (c *LikeController) Remove(userID, eventID uint) (bool, error) {
	result := c.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&models.Like{})
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete like")
	}
	return result.RowsAffected > 0, nil
}

// Get returns the row for the pair, or nil. Used for ownership lookups.
func (c *LikeController) Get(userID, eventID uint) (*models.Like, error) {
	var like models.Like
	err := c.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get like")
	}
	return &like, nil
}

func (c *LikeController) ForUser(userID uint) ([]models.Like, error) {
	likes := make([]models.Like, 0)
	if err := c.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list likes")
	}
	return likes, nil
}
