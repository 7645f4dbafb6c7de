// Package httpapi wires the entity controllers to gin routes and applies the
// authorization policy per operation.
package httpapi

import (
	"gorm.io/gorm"

	"unigather-backend/internal/config"
	"unigather-backend/internal/controllers"
)

type API struct {
	cfg        *config.Config
	users      *controllers.UserController
	events     *controllers.EventController
	attendance *controllers.AttendanceController
	comments   *controllers.CommentController
	friends    *controllers.FriendshipController
	media      *controllers.MediaController
	likes      *controllers.LikeController
}

func NewAPI(db *gorm.DB, cfg *config.Config) *API {
	return &API{
		cfg:        cfg,
		users:      controllers.NewUserController(db),
		events:     controllers.NewEventController(db),
		attendance: controllers.NewAttendanceController(db),
		comments:   controllers.NewCommentController(db),
		friends:    controllers.NewFriendshipController(db),
		media:      controllers.NewMediaController(db),
		likes:      controllers.NewLikeController(db),
	}
}
