// Package policy is the stateless authorization rule table. Every function
// takes the authenticated actor and the stored record (or its owner id, when
// the record is identified by its key) and reports whether the mutation is
// allowed. Ownership is always read from stored state, never from
// client-supplied fields.
package policy

import (
	"unigather-backend/internal/models"
)

func IsAdmin(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}

// CanManageUser: the user themselves, or an admin.
func CanManageUser(actor *models.User, targetID uint) bool {
	if actor == nil {
		return false
	}
	return actor.ID == targetID || IsAdmin(actor)
}

// CanChangeRole: role changes are admin-only.
func CanChangeRole(actor *models.User) bool {
	return IsAdmin(actor)
}

// CanManageEvent: the event's creator, or an admin.
func CanManageEvent(actor *models.User, event *models.Event) bool {
	if actor == nil || event == nil {
		return false
	}
	return IsAdmin(actor) || actor.ID == event.CreatedBy
}

// CanManageAttendance: self-only, no admin override.
func CanManageAttendance(actor *models.User, userID uint) bool {
	return actor != nil && actor.ID == userID
}

// CanDeleteComment: the comment's author, or an admin.
func CanDeleteComment(actor *models.User, comment *models.Comment) bool {
	if actor == nil || comment == nil {
		return false
	}
	return actor.ID == comment.UserID || IsAdmin(actor)
}

// CanManageFriendship: the outgoing party, or an admin.
func CanManageFriendship(actor *models.User, userID uint) bool {
	if actor == nil {
		return false
	}
	return actor.ID == userID || IsAdmin(actor)
}

// CanDeleteMedia: the uploader, or an admin. Media with no recorded uploader
// is admin-only.
func CanDeleteMedia(actor *models.User, media *models.Media) bool {
	if actor == nil || media == nil {
		return false
	}
	if media.UserID != nil && actor.ID == *media.UserID {
		return true
	}
	return IsAdmin(actor)
}

// CanDeleteLike: the liking user, or an admin.
func CanDeleteLike(actor *models.User, userID uint) bool {
	if actor == nil {
		return false
	}
	return actor.ID == userID || IsAdmin(actor)
}
