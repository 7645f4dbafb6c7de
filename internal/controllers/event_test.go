package controllers

import (
	"testing"
	"time"

	"unigather-backend/internal/models"
)

var testEventDate = time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)

func TestAddEventDuplicateTitlePerCreator(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	bob := mustRegisterUser(t, db, "bob@uni.edu")

	first, err := events.Add(NewEvent{Title: "Hackathon", Datetime: testEventDate, CreatedBy: alice})
	if err != nil || first == 0 {
		t.Fatalf("Add() = (%d, %v)", first, err)
	}

	// Same creator, same title.
	dup, err := events.Add(NewEvent{Title: "Hackathon", Datetime: testEventDate, CreatedBy: alice})
	if err != nil {
		t.Fatalf("Add() duplicate error = %v", err)
	}
	if dup != 0 {
		t.Errorf("Add() duplicate = %d, want 0", dup)
	}

	// A different creator may reuse the title.
	second, err := events.Add(NewEvent{Title: "Hackathon", Datetime: testEventDate, CreatedBy: bob})
	if err != nil || second == 0 {
		t.Fatalf("Add() other creator = (%d, %v)", second, err)
	}
}

func TestAddEventDefaultsVisibility(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")

	id, err := events.Add(NewEvent{Title: "Quiet Study", Datetime: testEventDate, CreatedBy: alice})
	if err != nil || id == 0 {
		t.Fatalf("Add() = (%d, %v)", id, err)
	}

	event, err := events.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if event.Visibility != models.VisibilityPublic {
		t.Errorf("Visibility = %q, want %q", event.Visibility, models.VisibilityPublic)
	}
}

func TestListEventsFilters(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	bob := mustRegisterUser(t, db, "bob@uni.edu")

	if _, err := events.Add(NewEvent{Title: "Public Mixer", Datetime: testEventDate, CreatedBy: alice}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := events.Add(NewEvent{Title: "Private Dinner", Datetime: testEventDate, Visibility: models.VisibilityPrivate, CreatedBy: bob}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	all, err := events.List(0, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List() = %d events, want 2", len(all))
	}

	mine, err := events.List(alice, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Public Mixer" {
		t.Errorf("List(createdBy) = %+v, want Public Mixer only", mine)
	}

	private, err := events.List(0, models.VisibilityPrivate)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(private) != 1 || private[0].Title != "Private Dinner" {
		t.Errorf("List(visibility) = %+v, want Private Dinner only", private)
	}
}

func TestUpdateEventPatchSemantics(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	id := mustAddEvent(t, db, alice, "Original Title")

	location := "Main Hall"
	ok, err := events.Update(id, EventPatch{Location: &location})
	if err != nil || !ok {
		t.Fatalf("Update() = (%v, %v)", ok, err)
	}

	event, err := events.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if event.Location != location {
		t.Errorf("Location = %q, want %q", event.Location, location)
	}
	if event.Title != "Original Title" {
		t.Errorf("omitted title changed to %q", event.Title)
	}
}

func TestUpdateEventDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	mustAddEvent(t, db, alice, "First")
	id := mustAddEvent(t, db, alice, "Second")

	taken := "First"
	_, err := events.Update(id, EventPatch{Title: &taken})
	if err == nil {
		t.Fatal("Update() to a taken title succeeded, want conflict")
	}
}

func TestDeleteEventCascades(t *testing.T) {
	db := newTestDB(t)
	events := NewEventController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	id := mustAddEvent(t, db, alice, "Doomed Event")

	if ok, err := NewAttendanceController(db).Add(alice, id, ""); err != nil || !ok {
		t.Fatalf("attendance Add() = (%v, %v)", ok, err)
	}
	if _, err := NewCommentController(db).Add(id, alice, "rip"); err != nil {
		t.Fatalf("comment Add() error = %v", err)
	}

	deleted, err := events.Delete(id)
	if err != nil || !deleted {
		t.Fatalf("Delete() = (%v, %v)", deleted, err)
	}

	var count int64
	if err := db.Model(&models.Attendance{}).Where("event_id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 0 {
		t.Errorf("attendance rows remaining = %d, want 0", count)
	}

	comments, err := NewCommentController(db).ForEvent(id)
	if err != nil {
		t.Fatalf("ForEvent() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comments remaining = %d, want 0", len(comments))
	}
}

func TestGetEventMissing(t *testing.T) {
	db := newTestDB(t)

	event, err := NewEventController(db).GetByID(9999)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if event != nil {
		t.Errorf("GetByID() = %+v, want nil", event)
	}
}
