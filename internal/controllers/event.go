package controllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/pkg/apperrors"
)

type EventController struct {
	db *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{db: db}
}

type NewEvent struct {
	Title       string
	Description string
	Location    string
	Datetime    time.Time
	Visibility  string
	CreatedBy   uint
}

type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	Datetime    *time.Time
	Visibility  *string
}

// Add creates an event and returns its id. A zero id means the creator
// already has an event with this title; the unique index on
// (title, created_by) backs the pre-check.
func (c *EventController) Add(req NewEvent) (uint, error) {
	var count int64
	err := c.db.Model(&models.Event{}).
		Where("title = ? AND created_by = ?", req.Title, req.CreatedBy).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to check existing event")
	}
	if count > 0 {
		return 0, nil
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Datetime:    req.Datetime,
		Visibility:  visibility,
		CreatedBy:   req.CreatedBy,
	}
	if err := c.db.Create(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create event")
	}
	return event.ID, nil
}

func (c *EventController) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := c.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get event")
	}
	return &event, nil
}

// List filters are AND-combined; a zero createdBy and an empty visibility
// mean no constraint.
func (c *EventController) List(createdBy uint, visibility string) ([]models.Event, error) {
	events := make([]models.Event, 0)
	query := c.db.Model(&models.Event{})

	if createdBy != 0 {
		query = query.Where("created_by = ?", createdBy)
	}
	if visibility != "" {
		query = query.Where("visibility = ?", visibility)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list events")
	}
	return events, nil
}

func (c *EventController) Update(id uint, patch EventPatch) (bool, error) {
	var event models.Event
	err := c.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load event")
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Datetime != nil {
		event.Datetime = *patch.Datetime
	}
	if patch.Visibility != nil {
		event.Visibility = *patch.Visibility
	}

	if err := c.db.Save(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, apperrors.Wrap(err, apperrors.ErrCodeConflict, "creator already has an event with this title")
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update event")
	}
	return true, nil
}

// Delete removes the event; attendance, comments, media and likes cascade.
func (c *EventController) Delete(id uint) (bool, error) {
	result := c.db.Delete(&models.Event{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete event")
	}
	return result.RowsAffected > 0, nil
}
