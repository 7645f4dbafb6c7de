package controllers

import (
	"testing"
)

func TestAddLikeDuplicate(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	eventID := mustAddEvent(t, db, alice, "Concert")

	ok, err := likes.Add(alice, eventID)
	if err != nil || !ok {
		t.Fatalf("Add() = (%v, %v)", ok, err)
	}

	ok, err = likes.Add(alice, eventID)
	if err != nil {
		t.Fatalf("Add() duplicate error = %v", err)
	}
	if ok {
		t.Error("Add() duplicate pair reported success")
	}

	rows, err := likes.ForUser(alice)
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(rows))
	}
}

func TestRemoveLike(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeController(db)
	alice := mustRegisterUser(t, db, "alice@uni.edu")
	eventID := mustAddEvent(t, db, alice, "Concert")

	if ok, err := likes.Add(alice, eventID); err != nil || !ok {
		t.Fatalf("Add() = (%v, %v)", ok, err)
	}

	removed, err := likes.Remove(alice, eventID)
	if err != nil || !removed {
		t.Fatalf("Remove() = (%v, %v)", removed, err)
	}

	removed, err = likes.Remove(alice, eventID)
	if err != nil {
		t.Fatalf("Remove() second error = %v", err)
	}
	if removed {
		t.Error("Remove() on a removed pair reported success")
	}

	if row, _ := likes.Get(alice, eventID); row != nil {
		t.Errorf("Get() after remove = %+v, want nil", row)
	}

	// Relike after unlike starts a fresh row.
	if ok, err := likes.Add(alice, eventID); err != nil || !ok {
		t.Fatalf("Add() after remove = (%v, %v)", ok, err)
	}
}
