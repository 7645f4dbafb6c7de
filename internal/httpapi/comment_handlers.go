package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/policy"
)

type CommentRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (a *API) AddComment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body CommentRequest
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

	id, err := a.comments.Add(body.EventID, actor.ID, body.Content)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "comment added", "comment_id": id})
}

func (a *API) GetEventComments(c *gin.Context) {
	eventID, ok := uintParam(c, "event_id")
	if !ok {
		return
	}

	comments, err := a.comments.ForEvent(eventID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (a *API) DeleteComment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	comment, err := a.comments.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if comment == nil {
		jsonError(c, http.StatusNotFound, "comment not found")
		return
	}
	if !policy.CanDeleteComment(actor, comment) {
		jsonError(c, http.StatusForbidden, "only the author or an admin can delete the comment")
		return
	}

	deleted, err := a.comments.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "comment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
