package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/policy"
)

type MediaRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=image video"`
	URL     string `json:"url" binding:"required,url"`
}

// AddMedia is idempotent: re-posting the same (event_id, url) returns the
// existing media id.
func (a *API) AddMedia(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body MediaRequest
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

	id, err := a.media.Add(body.EventID, actor.ID, body.Type, body.URL)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "media added", "media_id": id})
}

func (a *API) GetEventMedia(c *gin.Context) {
	eventID, ok := uintParam(c, "event_id")
	if !ok {
		return
	}

	media, err := a.media.ForEvent(eventID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (a *API) GetUserMedia(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	media, err := a.media.ForUser(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (a *API) DeleteMedia(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	media, err := a.media.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if media == nil {
		jsonError(c, http.StatusNotFound, "media not found")
		return
	}
	if !policy.CanDeleteMedia(actor, media) {
		jsonError(c, http.StatusForbidden, "only the uploader or an admin can delete media")
		return
	}

	deleted, err := a.media.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "media not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}
