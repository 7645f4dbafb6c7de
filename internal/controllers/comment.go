package controllers

import (
	"errors"

	"gorm.io/gorm"

	"unigather-backend/internal/models"
	"unigather-backend/internal/security"
	"unigather-backend/pkg/apperrors"
)

type CommentController struct {
	db *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

// Add inserts a comment unconditionally and returns its id. Content is
// stripped of HTML before storage.
func (c *CommentController) Add(eventID, userID uint, content string) (uint, error) {
	comment := models.Comment{
		EventID: eventID,
		UserID:  userID,
		Content: security.SanitizeUserContent(content),
	}
	if err := c.db.Create(&comment).Error; err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create comment")
	}
	return comment.ID, nil
}

func (c *CommentController) ForEvent(eventID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := c.db.Where("event_id = ?", eventID).Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list comments")
	}
	return comments, nil
}

// GetByID supports the ownership check before delete.
func (c *CommentController) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := c.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get comment")
	}
	return &comment, nil
}

func (c *CommentController) Delete(id uint) (bool, error) {
	result := c.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete comment")
	}
	return result.RowsAffected > 0, nil
}
