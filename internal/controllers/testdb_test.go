package controllers

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"unigather-backend/internal/database"
	"unigather-backend/internal/models"
)

// newTestDB opens an in-memory SQLite database with foreign keys enabled and
// the full schema migrated. Each test gets its own named shared-cache
// database so the pool's connections all see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// mustRegisterUser creates a user and returns its id.
func mustRegisterUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	id, err := NewUserController(db).Register(NewUser{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if id == 0 {
		t.Fatalf("Register() returned 0 for %s", email)
	}
	return id
}

// mustAddEvent creates an event owned by userID and returns its id.
func mustAddEvent(t *testing.T, db *gorm.DB, userID uint, title string) uint {
	t.Helper()

	id, err := NewEventController(db).Add(NewEvent{
		Title:      title,
		Datetime:   testEventDate,
		Visibility: models.VisibilityPublic,
		CreatedBy:  userID,
	})
	if err != nil {
		t.Fatalf("Add() event error = %v", err)
	}
	if id == 0 {
		t.Fatalf("Add() event returned 0 for %q", title)
	}
	return id
}
