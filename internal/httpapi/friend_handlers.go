package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/policy"
)

type FriendRequestBody struct {
	UserID   uint   `json:"user_id" binding:"required"`
	FriendID uint   `json:"friend_id" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=pending accepted blocked rejected"`
}

func (a *API) SendFriendRequest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body FriendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	friend, err := a.users.GetByID(body.FriendID)
	if err != nil {
		handleError(c, err)
		return
	}
	if friend == nil {
		jsonError(c, http.StatusNotFound, "user not found")
		return
	}

	// Requests go out on behalf of the actor.
	if !policy.CanManageFriendship(actor, body.UserID) {
		jsonError(c, http.StatusForbidden, "friend requests can only be sent as yourself")
		return
	}

	sent, err := a.friends.SendRequest(body.UserID, body.FriendID, body.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	if !sent {
		jsonError(c, http.StatusConflict, "friendship already exists")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "friend request sent"})
}

type FriendStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted blocked rejected"`
}

func (a *API) UpdateFriendStatus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	friendID, ok := uintParam(c, "friend_id")
	if !ok {
		return
	}

	friendship, err := a.friends.Get(userID, friendID)
	if err != nil {
		handleError(c, err)
		return
	}
	if friendship == nil {
		jsonError(c, http.StatusNotFound, "friendship not found")
		return
	}
	if !policy.CanManageFriendship(actor, friendship.UserID) {
		jsonError(c, http.StatusForbidden, "not allowed")
		return
	}

	var body FriendStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	updated, err := a.friends.UpdateStatus(userID, friendID, body.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	if !updated {
		jsonError(c, http.StatusNotFound, "friendship not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friendship updated"})
}

func (a *API) GetFriends(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	friends, err := a.friends.Friends(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (a *API) DeleteFriend(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	friendID, ok := uintParam(c, "friend_id")
	if !ok {
		return
	}

	friendship, err := a.friends.Get(userID, friendID)
	if err != nil {
		handleError(c, err)
		return
	}
	if friendship == nil {
		jsonError(c, http.StatusNotFound, "friendship not found")
		return
	}
	if !policy.CanManageFriendship(actor, friendship.UserID) {
		jsonError(c, http.StatusForbidden, "not allowed")
		return
	}

	deleted, err := a.friends.Delete(userID, friendID)
	if err != nil {
		handleError(c, err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "friendship not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend removed"})
}
