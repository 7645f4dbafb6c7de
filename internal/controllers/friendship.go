package controllers

import (
	"errors"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/pkg/apperrors"
)

type FriendshipController struct {
	db *gorm.DB
}

func NewFriendshipController(db *gorm.DB) *FriendshipController {
	return &FriendshipController{db: db}
}

// SendRequest inserts a friendship row from user to friend. Returns false if
// a row exists in either direction. The check and the insert run in one
// transaction; the composite primary key guards the exact direction.
func (c *FriendshipController) SendRequest(userID, friendID uint, status string) (bool, error) {
	if status == "" {
		status = models.FriendshipPending
	}

	created := false
	err := c.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		friendship := models.Friendship{
			UserID:   userID,
			FriendID: friendID,
			Status:   status,
		}
		if err := tx.Create(&friendship).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create friend request")
	}
	return created, nil
}

// UpdateStatus requires an exact-direction match; the reverse row is not
// considered.
func (c *FriendshipController) UpdateStatus(userID, friendID uint, status string) (bool, error) {
	result := c.db.Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Update("status", status)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to update friendship")
	}
	return result.RowsAffected > 0, nil
}

// Friends returns only outgoing rows: relationships where userID is the
// requesting party. Incoming rows are deliberately not merged in.
func (c *FriendshipController) Friends(userID uint) ([]models.Friendship, error) {
	friends := make([]models.Friendship, 0)
	if err := c.db.Where("user_id = ?", userID).Find(&friends).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list friends")
	}
	return friends, nil
}

// Get returns the exact-direction row, or nil. Used for ownership lookups.
func (c *FriendshipController) Get(userID, friendID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := c.db.Where("user_id = ? AND friend_id = ?", userID, friendID).First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get friendship")
	}
	return &friendship, nil
}

func (c *FriendshipController) Delete(userID, friendID uint) (bool, error) {
	result := c.db.Where("user_id = ? AND friend_id = ?", userID, friendID).Delete(&models.Friendship{})
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete friendship")
	}
	return result.RowsAffected > 0, nil
}
