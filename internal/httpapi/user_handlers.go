package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/controllers"
	"unigather-backend/internal/policy"
	"unigather-backend/pkg/logger"
)

func (a *API) ListUsers(c *gin.Context) {
	users, err := a.users.List(c.Query("name"), c.Query("email"), c.Query("role"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (a *API) GetUser(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	user, err := a.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin student org"`
}

func (a *API) UpdateUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	// Not-found is reported before the ownership check.
	target, err := a.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if target == nil {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}
	if !policy.CanManageUser(actor, target.ID) {
		jsonError(c, http.StatusForbidden, "not allowed")
		return
	}

	var body UpdateUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if body.Role != nil && !policy.CanChangeRole(actor) {
		jsonError(c, http.StatusForbidden, "only admins can change roles")
		return
	}

	updated, err := a.users.Update(id, controllers.UserPatch{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	if !updated {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user_id": id})
}

func (a *API) DeleteUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	target, err := a.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if target == nil {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}
	if !policy.CanManageUser(actor, target.ID) {
		jsonError(c, http.StatusForbidden, "not allowed")
		return
	}

	deleted, err := a.users.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}

	logger.Info("user deleted", "user_id", id, "actor_id", actor.ID)
	c.JSON(http.StatusOK, gin.H{"message": "user deleted", "user_id": id})
}
