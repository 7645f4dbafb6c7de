package controllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/pkg/apperrors"
)

type AttendanceController struct {
	db *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{db: db}
}

// Add records a user's attendance for an event. Returns false when a row for
// the pair already exists; the composite primary key guards the race between
// the pre-check and the insert.
func (c *AttendanceController) Add(userID, eventID uint, status string) (bool, error) {
	var count int64
	err := c.db.Model(&models.Attendance{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to check existing attendance")
	}
	if count > 0 {
		return false, nil
	}

	if status == "" {
		status = models.AttendanceInterested
	}

	attendance := models.Attendance{
		UserID:    userID,
		EventID:   eventID,
		Status:    status,
		Timestamp: time.Now(),
	}
	if err := c.db.Create(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create attendance")
	}
	return true, nil
}

func (c *AttendanceController) ByEvent(eventID uint) ([]models.Attendance, error) {
	records := make([]models.Attendance, 0)
	if err := c.db.Where("event_id = ?", eventID).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list attendance")
	}
	return records, nil
}

func (c *AttendanceController) ByUser(userID uint) ([]models.Attendance, error) {
	records := make([]models.Attendance, 0)
	if err := c.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list attendance")
	}
	return records, nil
}

// Get returns the row for the pair, or nil. Used for ownership lookups.
func (c *AttendanceController) Get(userID, eventID uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := c.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get attendance")
	}
	return &attendance, nil
}

func (c *AttendanceController) Delete(userID, eventID uint) (bool, error) {
	result := c.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&models.Attendance{})
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete attendance")
	}
	return result.RowsAffected > 0, nil
}
