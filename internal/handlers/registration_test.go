package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/rajaram-gurukul/utsav-registration/internal/form"
	"github.com/rajaram-gurukul/utsav-registration/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Registration{}, &models.ShopOrder{}, &models.Admin{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

// submissionFixture builds a two-participant payload through the form
// package, the same way the front end does.
func submissionFixture(t *testing.T) form.SubmissionPayload {
	t.Helper()
	f := form.New(form.Config{})
	f.Event = "annual-utsav-jan"
	f.ContactEmail = "asha@example.com"
	f.SetContactNumber("9876543210")

	p := f.Participant(0)
	p.Name = "Asha"
	p.SetContact("9876543210")
	p.TravelMode = form.TravelModeCar
	p.TravelDetails = form.TravelDetails{DepartureFromHome: "07:00", ArrivalAtVenue: "12:00"}
	if err := f.SetAttendingDates(0, []time.Time{
		time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("SetAttendingDates: %v", err)
	}
	f.UpdateDatePreference(0, time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		func(pref *form.DatePreference) {
			pref.PackedLunch = true
			pref.DepartureTime = "15:00"
		})

	f.AddParticipant()
	f.CopyPreferences(0, 1)
	q := f.Participant(1)
	q.Name = "Ravi"
	q.SetContact("9123456780")

	return f.BuildSubmissionPayload()
}

func TestHandleSubmit(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, nil)

	req := SubmitRegistrationRequest{Body: submissionFixture(t)}
	resp, err := handler.HandleSubmit(context.Background(), &req)
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}
	if resp == nil || resp.Body.Message == "" {
		t.Fatal("expected a success message")
	}

	// One row per participant.
	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 registrations in DB, got %d", count)
	}

	var row models.Registration
	if err := db.Where("name = ?", "Asha").First(&row).Error; err != nil {
		t.Fatalf("failed to find registration: %v", err)
	}
	if row.BookersEmail != "asha@example.com" || row.EventName != "annual-utsav-jan" {
		t.Errorf("unexpected row: %+v", row)
	}

	view := registrationView(row)
	if len(view.AttendingDates) != 2 || view.AttendingDates[0] != "19-01-2026" {
		t.Errorf("attending dates = %v", view.AttendingDates)
	}
	if len(view.DatePreferences) != 2 {
		t.Fatalf("expected 2 date preference entries, got %d", len(view.DatePreferences))
	}
	last := view.DatePreferences[1]
	if !last.PackedLunch || last.DepartureTime != "15:00" {
		t.Errorf("last-day preferences lost: %+v", last)
	}
}

func TestHandleSubmitRejectsIncomplete(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, nil)

	payload := submissionFixture(t)
	payload.ContactEmail = ""
	if _, err := handler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: payload}); err == nil {
		t.Error("expected error for missing contact email")
	}

	payload = submissionFixture(t)
	payload.Participants = nil
	if _, err := handler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: payload}); err == nil {
		t.Error("expected error for empty participant list")
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submissions must not be stored, got %d rows", count)
	}
}

func TestHandleListByEmail(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, nil)

	if _, err := handler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: submissionFixture(t)}); err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}

	resp, err := handler.HandleListByEmail(context.Background(), &ListRegistrationsRequest{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("HandleListByEmail: %v", err)
	}
	if len(resp.Body.Registrations) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(resp.Body.Registrations))
	}
	if resp.Body.Registrations[0].Name != "Asha" || resp.Body.Registrations[1].Name != "Ravi" {
		t.Errorf("unexpected order: %+v", resp.Body.Registrations)
	}

	empty, err := handler.HandleListByEmail(context.Background(), &ListRegistrationsRequest{Email: "other@example.com"})
	if err != nil {
		t.Fatalf("HandleListByEmail: %v", err)
	}
	if len(empty.Body.Registrations) != 0 {
		t.Errorf("expected no registrations for unknown email, got %d", len(empty.Body.Registrations))
	}
}

func TestHandleUpdate(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, nil)

	if _, err := handler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: submissionFixture(t)}); err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}

	list, err := handler.HandleListByEmail(context.Background(), &ListRegistrationsRequest{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("HandleListByEmail: %v", err)
	}
	rec := list.Body.Registrations[0]
	rec.Origin = "Kolhapur"
	rec.DatePreferences[0].Breakfast = true

	if _, err := handler.HandleUpdate(context.Background(), &UpdateRegistrationRequest{Body: rec}); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}

	after, _ := handler.HandleListByEmail(context.Background(), &ListRegistrationsRequest{Email: "asha@example.com"})
	got := after.Body.Registrations[0]
	if got.Origin != "Kolhapur" || !got.DatePreferences[0].Breakfast {
		t.Errorf("update not persisted: %+v", got)
	}

	// Row count must be unchanged after an update.
	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 rows after update, got %d", count)
	}

	missing := rec
	missing.Name = "Nobody"
	if _, err := handler.HandleUpdate(context.Background(), &UpdateRegistrationRequest{Body: missing}); err == nil {
		t.Error("expected 404 for unknown registration")
	}
}

func TestHandleDelete(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, nil)

	if _, err := handler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: submissionFixture(t)}); err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}

	req := DeleteRegistrationRequest{}
	req.Body.BookersEmail = "asha@example.com"
	req.Body.BookersPhone = "9876543210"
	req.Body.Name = "Ravi"

	if _, err := handler.HandleDelete(context.Background(), &req); err != nil {
		t.Fatalf("HandleDelete: %v", err)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 row after delete, got %d", count)
	}

	// Deleting again is a 404, not a silent no-op.
	if _, err := handler.HandleDelete(context.Background(), &req); err == nil {
		t.Error("expected error deleting a missing registration")
	}
}
