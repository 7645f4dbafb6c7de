package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/auth"
	"unigather-backend/internal/controllers"
	"unigather-backend/pkg/logger"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin student org"`
}

func (a *API) Register(c *gin.Context) {
	var body RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	id, err := a.users.Register(controllers.NewUser{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	if id == 0 {
		jsonError(c, http.StatusConflict, "user already exists")
		return
	}

	user, err := a.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	logger.Info("user registered", "user_id", id)
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "user": user})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password produce the same response.
func (a *API) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := a.users.Login(body.Email, body.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.IssueToken(user.ID, a.cfg.JWTSecret, a.cfg.GetTokenTTL())
	if err != nil {
		logger.Error("failed to sign token", "error", err)
		jsonError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
