package controllers

import (
	"testing"

	"unigather-backend/internal/models"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)

	first, err := users.Register(NewUser{Name: "Alice", Email: "alice@uni.edu", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if first == 0 {
		t.Fatal("Register() returned 0 for a fresh email")
	}

	second, err := users.Register(NewUser{Name: "Imposter", Email: "alice@uni.edu", Password: "different1"})
	if err != nil {
		t.Fatalf("Register() duplicate error = %v", err)
	}
	if second != 0 {
		t.Errorf("Register() duplicate = %d, want 0", second)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "alice@uni.edu").Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 1 {
		t.Errorf("stored rows = %d, want 1", count)
	}
}

func TestRegisterDefaultsRoleToStudent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)

	id, err := users.Register(NewUser{Name: "Bob", Email: "bob@uni.edu", Password: "password123"})
	if err != nil || id == 0 {
		t.Fatalf("Register() = (%d, %v)", id, err)
	}

	user, err := users.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("Role = %q, want %q", user.Role, models.RoleStudent)
	}
	if user.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
}

func TestUpdateUserPatchSemantics(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)
	id := mustRegisterUser(t, db, "carol@uni.edu")

	newName := "Carol Renamed"
	ok, err := users.Update(id, UserPatch{Name: &newName})
	if err != nil || !ok {
		t.Fatalf("Update() = (%v, %v)", ok, err)
	}

	user, err := users.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if user.Name != newName {
		t.Errorf("Name = %q, want %q", user.Name, newName)
	}
	if user.Email != "carol@uni.edu" {
		t.Errorf("omitted email changed to %q", user.Email)
	}

	// A pointer to the empty string is an explicit overwrite, not an omission.
	empty := ""
	if ok, err := users.Update(id, UserPatch{Name: &empty}); err != nil || !ok {
		t.Fatalf("Update() empty name = (%v, %v)", ok, err)
	}
	user, _ = users.GetByID(id)
	if user.Name != "" {
		t.Errorf("Name = %q, want empty", user.Name)
	}
}

func TestUpdateUserConflictsOnTakenEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)
	mustRegisterUser(t, db, "dave@uni.edu")
	id := mustRegisterUser(t, db, "erin@uni.edu")

	taken := "dave@uni.edu"
	_, err := users.Update(id, UserPatch{Email: &taken})
	if err == nil {
		t.Fatal("Update() to a taken email succeeded, want conflict")
	}
}

func TestUpdateUserMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)

	name := "Nobody"
	ok, err := users.Update(9999, UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if ok {
		t.Error("Update() on a missing id reported success")
	}
}

func TestListUsersFilters(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)

	if _, err := users.Register(NewUser{Name: "Frank Miller", Email: "frank@uni.edu", Password: "password123", Role: models.RoleOrg}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := users.Register(NewUser{Name: "Grace Hopper", Email: "grace@uni.edu", Password: "password123"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Name matches are case-insensitive substrings.
	got, err := users.List("FRANK", "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Email != "frank@uni.edu" {
		t.Errorf("List(name) = %+v, want frank only", got)
	}

	got, err = users.List("", "", models.RoleStudent)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Email != "grace@uni.edu" {
		t.Errorf("List(role) = %+v, want grace only", got)
	}

	got, err = users.List("no such user", "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("List() = %+v, want empty", got)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)
	mustRegisterUser(t, db, "henry@uni.edu")

	user, err := users.Login("henry@uni.edu", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user == nil {
		t.Fatal("Login() with correct credentials returned nil")
	}

	// A wrong password and an unknown email look identical to the caller.
	for _, tc := range []struct {
		name, email, password string
	}{
		{"wrong password", "henry@uni.edu", "wrongpassword"},
		{"unknown email", "ghost@uni.edu", "password123"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			user, err := users.Login(tc.email, tc.password)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if user != nil {
				t.Errorf("Login() = %+v, want nil", user)
			}
		})
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserController(db)

	owner := mustRegisterUser(t, db, "owner@uni.edu")
	other := mustRegisterUser(t, db, "other@uni.edu")
	eventID := mustAddEvent(t, db, owner, "Cascade Party")

	if ok, err := NewAttendanceController(db).Add(other, eventID, models.AttendanceGoing); err != nil || !ok {
		t.Fatalf("attendance Add() = (%v, %v)", ok, err)
	}
	if _, err := NewCommentController(db).Add(eventID, other, "see you there"); err != nil {
		t.Fatalf("comment Add() error = %v", err)
	}
	if _, err := NewMediaController(db).Add(eventID, other, models.MediaImage, "https://cdn.uni.edu/p.jpg"); err != nil {
		t.Fatalf("media Add() error = %v", err)
	}
	if ok, err := NewLikeController(db).Add(other, eventID); err != nil || !ok {
		t.Fatalf("like Add() = (%v, %v)", ok, err)
	}

	deleted, err := users.Delete(owner)
	if err != nil || !deleted {
		t.Fatalf("Delete() = (%v, %v)", deleted, err)
	}

	if user, _ := users.GetByID(owner); user != nil {
		t.Error("deleted user still present")
	}
	if event, _ := NewEventController(db).GetByID(eventID); event != nil {
		t.Error("owner's event survived the user delete")
	}

	for table, model := range map[string]interface{}{
		"attendance": &models.Attendance{},
		"comments":   &models.Comment{},
		"likes":      &models.Like{},
	} {
		var count int64
		if err := db.Model(model).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
			t.Fatalf("%s count error = %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s rows remaining = %d, want 0", table, count)
		}
	}
}

func TestDeleteUserMissing(t *testing.T) {
	db := newTestDB(t)

	deleted, err := NewUserController(db).Delete(9999)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted {
		t.Error("Delete() on a missing id reported success")
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	db := newTestDB(t)

	user, err := NewUserController(db).GetByID(9999)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if user != nil {
		t.Errorf("GetByID() = %+v, want nil", user)
	}
}
