package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajaram-gurukul/utsav-registration/internal/auth"
	"github.com/rajaram-gurukul/utsav-registration/internal/config"
	"github.com/rajaram-gurukul/utsav-registration/internal/models"
)

func TestHandleCheckAdmin(t *testing.T) {
	db := testDB(t)
	handler := NewAdminHandler(db, auth.NewHandler(&config.Config{}))

	db.Create(&models.Admin{Email: "mod@example.com", ControlType: models.ControlTypeModerator})
	db.Create(&models.Admin{Email: "viewer@example.com", ControlType: "V"})

	resp, err := handler.HandleCheckAdmin(context.Background(), &CheckAdminRequest{Email: "mod@example.com"})
	if err != nil {
		t.Fatalf("HandleCheckAdmin: %v", err)
	}
	if !resp.Body.IsAdmin || resp.Body.ControlType != "Q" {
		t.Errorf("moderator status = %+v", resp.Body)
	}

	resp, err = handler.HandleCheckAdmin(context.Background(), &CheckAdminRequest{Email: "viewer@example.com"})
	if err != nil {
		t.Fatalf("HandleCheckAdmin: %v", err)
	}
	if !resp.Body.IsAdmin || resp.Body.ControlType != "V" {
		t.Errorf("viewer status = %+v", resp.Body)
	}

	resp, err = handler.HandleCheckAdmin(context.Background(), &CheckAdminRequest{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("HandleCheckAdmin: %v", err)
	}
	if resp.Body.IsAdmin {
		t.Errorf("unknown email reported as admin: %+v", resp.Body)
	}
}

func TestHandleAllRegistrationsOpenMode(t *testing.T) {
	db := testDB(t)
	regHandler := NewRegistrationHandler(db, nil)
	handler := NewAdminHandler(db, auth.NewHandler(&config.Config{}))

	if _, err := regHandler.HandleSubmit(context.Background(), &SubmitRegistrationRequest{Body: submissionFixture(t)}); err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}

	resp, err := handler.HandleAllRegistrations(context.Background(), &AllRegistrationsRequest{})
	if err != nil {
		t.Fatalf("HandleAllRegistrations: %v", err)
	}
	if len(resp.Body.Registrations) != 2 {
		t.Errorf("expected 2 registrations, got %d", len(resp.Body.Registrations))
	}
}

func TestHandleAllRegistrationsRequiresAdmin(t *testing.T) {
	db := testDB(t)
	cfg := &config.Config{AuthTokenSecret: "test-secret"}
	handler := NewAdminHandler(db, auth.NewHandler(cfg))

	db.Create(&models.Admin{Email: "mod@example.com", ControlType: models.ControlTypeModerator})

	token := func(email string) string {
		claims := jwt.MapClaims{
			"email": email,
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AuthTokenSecret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return "Bearer " + signed
	}

	// No token at all.
	if _, err := handler.HandleAllRegistrations(context.Background(), &AllRegistrationsRequest{}); err == nil {
		t.Error("expected 401 without a token")
	}

	// Valid token, not an admin.
	req := AllRegistrationsRequest{}
	req.Authorization = token("asha@example.com")
	if _, err := handler.HandleAllRegistrations(context.Background(), &req); err == nil {
		t.Error("expected 403 for non-admin identity")
	}

	// Admin gets through.
	req.Authorization = token("mod@example.com")
	if _, err := handler.HandleAllRegistrations(context.Background(), &req); err != nil {
		t.Errorf("admin request failed: %v", err)
	}
}
