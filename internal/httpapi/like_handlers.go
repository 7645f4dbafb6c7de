package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/policy"
)

type LikeRequest struct {
	EventID uint `json:"event_id" binding:"required"`
}

func (a *API) AddLike(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body LikeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	event, err := a.events.GetByID(body.EventID)
	if err != nil {
		handleError(c, err)
		return
	}
	if event == nil {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}

	liked, err := a.likes.Add(actor.ID, body.EventID)
	if err != nil {
		handleError(c, err)
		return
	}
	if !liked {
		jsonError(c, http.StatusConflict, "event already liked")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "liked"})
}

func (a *API) RemoveLike(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	// user_id defaults to the actor; admins may remove other users' likes.
	userID := uint64(actor.ID)
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			jsonError(c, http.StatusBadRequest, "invalid user_id")
			return
		}
		userID = parsed
	}
	eventID, err := strconv.ParseUint(c.Query("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		jsonError(c, http.StatusBadRequest, "invalid event_id")
		return
	}

	like, cerr := a.likes.Get(uint(userID), uint(eventID))
	if cerr != nil {
		handleError(c, cerr)
		return
	}
	if like == nil {
		jsonError(c, http.StatusNotFound, "like not found")
		return
	}
	if !policy.CanDeleteLike(actor, like.UserID) {
		jsonError(c, http.StatusForbidden, "not allowed")
		return
	}

	removed, cerr := a.likes.Remove(uint(userID), uint(eventID))
	if cerr != nil {
		handleError(c, cerr)
		return
	}
	if !removed {
		jsonError(c, http.StatusNotFound, "like not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unliked"})
}

func (a *API) GetUserLikes(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	likes, err := a.likes.ForUser(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}
