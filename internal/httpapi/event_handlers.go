package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/controllers"
	"unigather-backend/internal/models"
	"unigather-backend/internal/policy"
	"unigather-backend/pkg/logger"
)

// parseDate accepts RFC3339 or "YYYY-MM-DD".
func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Datetime    string `json:"datetime" binding:"required"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=public private"`
}

func (a *API) CreateEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	eventDate, ok := parseDate(body.Datetime)
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid datetime format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	id, err := a.events.Add(controllers.NewEvent{
		Title:       strings.TrimSpace(body.Title),
		Description: body.Description,
		Location:    body.Location,
		Datetime:    eventDate,
		Visibility:  body.Visibility,
		CreatedBy:   actor.ID,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	if id == 0 {
		jsonError(c, http.StatusConflict, "event with this title already exists")
		return
	}

	event, err := a.events.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	logger.Info("event created", "event_id", id, "created_by", actor.ID)
	c.JSON(http.StatusCreated, event)
}

func (a *API) ListEvents(c *gin.Context) {
	createdBy, ok := uintQuery(c, "created_by")
	if !ok {
		return
	}
	visibility := c.Query("visibility")
	if visibility != "" && visibility != models.VisibilityPublic && visibility != models.VisibilityPrivate {
		jsonError(c, http.StatusBadRequest, "visibility must be 'public' or 'private'")
		return
	}

	events, err := a.events.List(createdBy, visibility)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (a *API) GetEvent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	event, err := a.events.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if event == nil {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Datetime    *string `json:"datetime"`
	Visibility  *string `json:"visibility" binding:"omitempty,oneof=public private"`
}

func (a *API) UpdateEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	event, err := a.events.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if event == nil {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}
	if !policy.CanManageEvent(actor, event) {
		jsonError(c, http.StatusForbidden, "only the creator or an admin can update the event")
		return
	}

	var body UpdateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	patch := controllers.EventPatch{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Visibility:  body.Visibility,
	}
	if body.Datetime != nil {
		eventDate, ok := parseDate(*body.Datetime)
		if !ok {
			jsonError(c, http.StatusBadRequest, "invalid datetime format (use RFC3339 or YYYY-MM-DD)")
			return
		}
		patch.Datetime = &eventDate
	}

	updated, err := a.events.Update(id, patch)
	if err != nil {
		handleError(c, err)
		return
	}
	if !updated {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event updated", "event_id": id})
}

func (a *API) DeleteEvent(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	event, err := a.events.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if event == nil {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}
	if !policy.CanManageEvent(actor, event) {
		jsonError(c, http.StatusForbidden, "only the creator or an admin can delete the event")
		return
	}

	deleted, err := a.events.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "event not found")
		return
	}

	logger.Info("event deleted", "event_id", id, "actor_id", actor.ID)
	c.JSON(http.StatusOK, gin.H{"message": "event deleted", "event_id": id})
}
