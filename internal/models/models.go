package models

import (
	"time"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleOrg     = "org"
)

// Event visibility
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Attendance statuses
const (
	AttendanceGoing      = "going"
	AttendanceInterested = "interested"
	AttendanceNotGoing   = "not going"
)

// Friendship statuses
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
	FriendshipRejected = "rejected"
)

// Media types
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// User represents a registered user. The password is only ever stored hashed.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:20;default:student"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Event is the core event model. No two events share (title, created_by).
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;uniqueIndex:idx_events_title_creator"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"size:255"`
	Datetime    time.Time `json:"datetime" gorm:"not null"`
	Visibility  string    `json:"visibility" gorm:"size:20;default:public"`
	CreatedBy   uint      `json:"created_by" gorm:"not null;uniqueIndex:idx_events_title_creator"`
	CreatedAt   time.Time `json:"created_at"`

	Creator User `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
}

func (Event) TableName() string {
	return "events"
}

// Attendance links a user to an event, at most one row per pair.
type Attendance struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	EventID   uint      `json:"event_id" gorm:"primaryKey;autoIncrement:false"`
	Status    string    `json:"status" gorm:"size:20;default:interested"`
	Timestamp time.Time `json:"timestamp"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

// Friendship is directional: user_id is the outgoing party. Duplicate
// detection treats (user, friend) and (friend, user) as the same relationship.
type Friendship struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	FriendID  uint      `json:"friend_id" gorm:"primaryKey;autoIncrement:false"`
	Status    string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt time.Time `json:"created_at"`

	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Friend User `json:"-" gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

func (Friendship) TableName() string {
	return "friends"
}

// Media rows may be tied to an event, a user, or both. A repeated upload with
// the same (event_id, url) resolves to the existing row.
type Media struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    *uint     `json:"event_id" gorm:"uniqueIndex:idx_media_event_url"`
	UserID     *uint     `json:"user_id" gorm:"index"`
	URL        string    `json:"url" gorm:"size:255;not null;uniqueIndex:idx_media_event_url"`
	Type       string    `json:"type" gorm:"size:20"`
	UploadedAt time.Time `json:"uploaded_at"`

	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event *Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (Media) TableName() string {
	return "media"
}

type Like struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	EventID   uint      `json:"event_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}
