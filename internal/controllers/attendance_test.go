package controllers

import (
	"testing"

	"unigather-backend/internal/models"
)

func TestAddAttendanceDuplicate(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	eventID := mustAddEvent(t, db, alice, "Career Fair")

	ok, err := attendance.Add(alice, eventID, models.AttendanceGoing)
	if err != nil || !ok {
		t.Fatalf("Add() = (%v, %v)", ok, err)
	}

	ok, err = attendance.Add(alice, eventID, models.AttendanceNotGoing)
	if err != nil {
		t.Fatalf("Add() duplicate error = %v", err)
	}
	if ok {
		t.Error("Add() duplicate pair reported success")
	}

	rows, err := attendance.ByEvent(eventID)
	if err != nil {
		t.Fatalf("ByEvent() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("stored rows = %d, want 1", len(rows))
	}
	// The duplicate attempt must not have clobbered the original status.
	if rows[0].Status != models.AttendanceGoing {
		t.Errorf("Status = %q, want %q", rows[0].Status, models.AttendanceGoing)
	}
}

func TestAddAttendanceDefaultStatus(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	eventID := mustAddEvent(t, db, alice, "Open Mic")

	if ok, err := attendance.Add(alice, eventID, ""); err != nil || !ok {
		t.Fatalf("Add() = (%v, %v)", ok, err)
	}

	record, err := attendance.Get(alice, eventID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record == nil {
		t.Fatal("Get() returned nil for an existing pair")
	}
	if record.Status != models.AttendanceInterested {
		t.Errorf("Status = %q, want %q", record.Status, models.AttendanceInterested)
	}
	if record.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestAttendanceListsAreEmptyNotNil(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceController(db)

	byEvent, err := attendance.ByEvent(9999)
	if err != nil {
		t.Fatalf("ByEvent() error = %v", err)
	}
	if byEvent == nil || len(byEvent) != 0 {
		t.Errorf("ByEvent() = %v, want empty slice", byEvent)
	}

	byUser, err := attendance.ByUser(9999)
	if err != nil {
		t.Fatalf("ByUser() error = %v", err)
	}
	if byUser == nil || len(byUser) != 0 {
		t.Errorf("ByUser() = %v, want empty slice", byUser)
	}
}

func TestDeleteAttendance(t *testing.T) {
	db := newTestDB(t)
	attendance := NewAttendanceController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	eventID := mustAddEvent(t, db, alice, "Farewell")

	if ok, err := attendance.Add(alice, eventID, models.AttendanceGoing); err != nil || !ok {
		t.Fatalf("Add() = (%v, %v)", ok, err)
	}

	deleted, err := attendance.Delete(alice, eventID)
	if err != nil || !deleted {
		t.Fatalf("Delete() = (%v, %v)", deleted, err)
	}

	deleted, err = attendance.Delete(alice, eventID)
	if err != nil {
		t.Fatalf("Delete() second error = %v", err)
	}
	if deleted {
		t.Error("Delete() on a removed pair reported success")
	}

	if record, _ := attendance.Get(alice, eventID); record != nil {
		t.Errorf("Get() after delete = %+v, want nil", record)
	}
}
