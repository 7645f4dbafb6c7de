package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/policy"
)

type AttendanceRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	EventID uint   `json:"event_id" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=going interested 'not going'"`
}

func (a *API) AddAttendance(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body AttendanceRequest
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

	// Users can only RSVP for themselves.
	if !policy.CanManageAttendance(actor, body.UserID) {
		jsonError(c, http.StatusForbidden, "attendance can only be added for yourself")
		return
	}

	added, err := a.attendance.Add(body.UserID, body.EventID, body.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	if !added {
		jsonError(c, http.StatusConflict, "attendance already recorded")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "attendance added"})
}

func (a *API) GetEventAttendees(c *gin.Context) {
	eventID, ok := uintParam(c, "event_id")
	if !ok {
		return
	}

	records, err := a.attendance.ByEvent(eventID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (a *API) GetUserAttendance(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	records, err := a.attendance.ByUser(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (a *API) DeleteAttendance(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		jsonError(c, http.StatusBadRequest, "invalid user_id")
		return
	}
	eventID, err := strconv.ParseUint(c.Query("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		jsonError(c, http.StatusBadRequest, "invalid event_id")
		return
	}

	record, cerr := a.attendance.Get(uint(userID), uint(eventID))
	if cerr != nil {
		handleError(c, cerr)
		return
	}
	if record == nil {
		jsonError(c, http.StatusNotFound, "attendance record not found")
		return
	}
	if !policy.CanManageAttendance(actor, record.UserID) {
		jsonError(c, http.StatusForbidden, "attendance can only be removed for yourself")
		return
	}

	deleted, cerr := a.attendance.Delete(uint(userID), uint(eventID))
	if cerr != nil {
		handleError(c, cerr)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "attendance record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "attendance removed"})
}
