package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rajaram-gurukul/utsav-registration/internal/auth"
	"github.com/rajaram-gurukul/utsav-registration/internal/models"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db          *gorm.DB
	authHandler *auth.Handler
}

func NewAdminHandler(db *gorm.DB, authHandler *auth.Handler) *AdminHandler {
	return &AdminHandler{db: db, authHandler: authHandler}
}

type CheckAdminRequest struct {
	Email string `path:"email"`
}

type CheckAdminResponse struct {
	Body struct {
		IsAdmin     bool   `json:"is_admin"`
		ControlType string `json:"control_type"`
	}
}

func (h *AdminHandler) HandleCheckAdmin(ctx context.Context, input *CheckAdminRequest) (*CheckAdminResponse, error) {
	res := &CheckAdminResponse{}

	var admin models.Admin
	err := h.db.Where("email = ?", input.Email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		return res, nil
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to check admin status: " + err.Error())
	}

	res.Body.IsAdmin = true
	res.Body.ControlType = admin.ControlType
	return res, nil
}

type AllRegistrationsRequest struct {
	auth.AuthInput
}

type AllRegistrationsResponse struct {
	Body struct {
		Registrations []RegistrationView `json:"registrations"`
	}
}

// HandleAllRegistrations lists every registration for admin moderation.
// With identity verification configured, only known admins get through.
func (h *AdminHandler) HandleAllRegistrations(ctx context.Context, input *AllRegistrationsRequest) (*AllRegistrationsResponse, error) {
	if h.authHandler.Enabled() {
		identity, err := h.authHandler.Authorize(input.AuthInput)
		if err != nil {
			return nil, huma.Error401Unauthorized("Unauthorized: " + err.Error())
		}
		var admin models.Admin
		if err := h.db.Where("email = ?", identity.Email).First(&admin).Error; err != nil {
			return nil, huma.Error403Forbidden("Access denied: not an admin")
		}
	}

	var rows []models.Registration
	if err := h.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations: " + err.Error())
	}

	res := &AllRegistrationsResponse{}
	res.Body.Registrations = make([]RegistrationView, 0, len(rows))
	for _, row := range rows {
		res.Body.Registrations = append(res.Body.Registrations, registrationView(row))
	}
	return res, nil
}
