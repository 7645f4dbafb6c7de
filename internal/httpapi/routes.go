package httpapi

import "github.com/gin-gonic/gin"

func (a *API) RegisterRoutes(r *gin.Engine) {

	// Public Routes
	r.GET("/health", a.Health)
	r.POST("/register", a.Register)
	r.POST("/login", a.Login)

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(a.AuthMiddleware())
	{
		// USERS
		authorized.GET("/users", a.ListUsers)
		authorized.GET("/users/:id", a.GetUser)
		authorized.PUT("/users/:id", a.UpdateUser)
		authorized.DELETE("/users/:id", a.DeleteUser)

		// EVENTS
		authorized.POST("/events", a.CreateEvent)
		authorized.GET("/events", a.ListEvents)
		authorized.GET("/events/:id", a.GetEvent)
		authorized.PUT("/events/:id", a.UpdateEvent)
		authorized.DELETE("/events/:id", a.DeleteEvent)

		// ATTENDANCE
		authorized.POST("/attendance", a.AddAttendance)
		authorized.GET("/attendance/event/:event_id", a.GetEventAttendees)
		authorized.GET("/attendance/user/:user_id", a.GetUserAttendance)
		authorized.DELETE("/attendance", a.DeleteAttendance)

		// COMMENTS
		authorized.POST("/comments", a.AddComment)
		authorized.GET("/comments/event/:event_id", a.GetEventComments)
		authorized.DELETE("/comments/:id", a.DeleteComment)

		// FRIENDS
		authorized.POST("/friends", a.SendFriendRequest)
		authorized.GET("/friends/:user_id", a.GetFriends)
		authorized.PUT("/friends/:user_id/:friend_id", a.UpdateFriendStatus)
		authorized.DELETE("/friends/:user_id/:friend_id", a.DeleteFriend)

		// MEDIA
		authorized.POST("/media", a.AddMedia)
		authorized.GET("/media/event/:event_id", a.GetEventMedia)
		authorized.GET("/media/user/:user_id", a.GetUserMedia)
		authorized.DELETE("/media/:id", a.DeleteMedia)

		// LIKES
		authorized.POST("/likes", a.AddLike)
		authorized.DELETE("/likes", a.RemoveLike)
		authorized.GET("/likes/:user_id", a.GetUserLikes)
	}
}
