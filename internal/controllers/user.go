package controllers

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"unigather-backend/internal/auth"
	"unigather-backend/internal/models"
	"unigather-backend/internal/security"
	"unigather-backend/pkg/apperrors"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// NewUser carries the fields needed to register a user. Password arrives in
// plaintext and is hashed before it touches the database.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserPatch holds optional updates. A nil field is "not supplied"; a pointer
// to the zero value is an explicit overwrite.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// Register creates a user and returns its id. A zero id means the email is
// already taken; no second row is ever created. The pre-check is a fast path,
// the unique index on email is the authoritative guard.
func (c *UserController) Register(req NewUser) (uint, error) {
	var count int64
	if err := c.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to check existing email")
	}
	if count > 0 {
		return 0, nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := models.User{
		Name:         security.SanitizeUserContent(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := c.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create user")
	}

	return user.ID, nil
}

// Update applies the non-nil patch fields. Returns false when the id is absent.
func (c *UserController) Update(id uint, patch UserPatch) (bool, error) {
	var user models.User
	err := c.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load user")
	}

	if patch.Name != nil {
		user.Name = security.SanitizeUserContent(*patch.Name)
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
		}
		user.PasswordHash = hash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	if err := c.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, apperrors.Wrap(err, apperrors.ErrCodeConflict, "email already in use")
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update user")
	}
	return true, nil
}

// List filters are AND-combined; empty strings mean no constraint. Name and
// email match case-insensitive substrings, role matches exactly.
func (c *UserController) List(name, email, role string) ([]models.User, error) {
	users := make([]models.User, 0)
	query := c.db.Model(&models.User{})

	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list users")
	}
	return users, nil
}

func (c *UserController) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := c.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get user")
	}
	return &user, nil
}

// Delete removes the user; the schema cascades to events, attendance,
// comments, friendships, media and likes.
func (c *UserController) Delete(id uint) (bool, error) {
	result := c.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, apperrors.ErrCodeInternal, "failed to delete user")
	}
	return result.RowsAffected > 0, nil
}

// Login returns the user on a correct email/password pair and nil otherwise.
// An unknown email and a wrong password are indistinguishable to the caller.
func (c *UserController) Login(email, password string) (*models.User, error) {
	var user models.User
	err := c.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to look up user")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil
	}
	return &user, nil
}
