package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rajaram-gurukul/utsav-registration/internal/form"
	"github.com/rajaram-gurukul/utsav-registration/internal/models"
	"github.com/rajaram-gurukul/utsav-registration/internal/notifier"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	db       *gorm.DB
	notifier notifier.Notifier
}

func NewRegistrationHandler(db *gorm.DB, n notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{db: db, notifier: n}
}

type SubmitRegistrationRequest struct {
	Body form.SubmissionPayload
}

type SubmitRegistrationResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleSubmit(ctx context.Context, input *SubmitRegistrationRequest) (*SubmitRegistrationResponse, error) {
	payload := input.Body

	if payload.Event == "" {
		return nil, huma.Error400BadRequest("Event is required")
	}
	if payload.ContactEmail == "" {
		return nil, huma.Error400BadRequest("Contact email is required")
	}
	if len(payload.Participants) == 0 {
		return nil, huma.Error400BadRequest("At least one participant is required")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range payload.Participants {
			row, err := registrationRow(payload, p)
			if err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to store registration: " + err.Error())
	}

	if h.notifier != nil {
		if err := h.notifier.NotifySubmission(payload); err != nil {
			// Notification failures never fail the registration.
			log.Printf("Failed to send registration notification: %v", err)
		}
	}

	res := &SubmitRegistrationResponse{}
	res.Body.Message = "Registration processed successfully"
	return res, nil
}

// registrationRow flattens one participant of a submission into a stored
// registration row.
func registrationRow(payload form.SubmissionPayload, p form.ParticipantPayload) (*models.Registration, error) {
	dates, err := json.Marshal(p.AttendingDates)
	if err != nil {
		return nil, err
	}

	prefs := make([]models.RegistrationDatePref, 0, len(p.DatePreferences))
	for _, entry := range p.DatePreferences {
		prefs = append(prefs, models.RegistrationDatePref{
			Date:            entry.Date,
			MorningTea:      entry.MorningTea,
			MorningCoffee:   entry.MorningCoffee,
			AfternoonTea:    entry.AfternoonTea,
			AfternoonCoffee: entry.AfternoonCoffee,
			Breakfast:       entry.Breakfast,
			Lunch:           entry.Lunch,
			Dinner:          entry.Dinner,
			PackedLunch:     entry.PackedLunch,
			PackedDinner:    entry.PackedDinner,
			DepartureTime:   entry.DepartureTime,
		})
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}

	return &models.Registration{
		BookersEmail:             payload.ContactEmail,
		BookersPhone:             payload.ContactNumber,
		EventName:                payload.Event,
		Name:                     p.Name,
		Age:                      deref(p.Age),
		Gender:                   deref(p.Gender),
		Origin:                   deref(p.Origin),
		Contact:                  deref(p.ContactNumber),
		TravelMode:               p.TravelMode,
		DepartureFromHome:        p.TravelDetails.DepartureFromHome,
		ArrivalAtVenue:           p.TravelDetails.ArrivalAtVenue,
		Accommodation:            p.Accommodation,
		CotRequired:              p.Cot,
		DifficultyClimbingStairs: p.DifficultyClimbingStairs,
		LocalAssistance:          p.LocalAssistance,
		LocalAssistancePerson:    deref(p.LocalAssistancePerson),
		Recordings:               p.Recordings,
		RecordPrograms:           deref(p.RecordingPrograms),
		SpecialRequests:          deref(p.SpecialRequests),
		AttendingDates:           string(dates),
		DatePreferences:          string(prefsJSON),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RegistrationView is a stored registration as returned over the API.
type RegistrationView struct {
	BookersEmail             string                        `json:"bookers_email"`
	BookersPhone             string                        `json:"bookers_phone"`
	EventName                string                        `json:"event_name"`
	Name                     string                        `json:"name"`
	Age                      string                        `json:"age,omitempty"`
	Gender                   string                        `json:"gender,omitempty"`
	Origin                   string                        `json:"origin,omitempty"`
	Contact                  string                        `json:"contact,omitempty"`
	AttendingDates           []string                      `json:"attendingDates"`
	TravelMode               string                        `json:"travelmode"`
	DepartureFromHome        string                        `json:"departure_from_home"`
	ArrivalAtVenue           string                        `json:"arrival_at_venue"`
	Accommodation            bool                          `json:"accommodation"`
	CotRequired              bool                          `json:"cot_required"`
	DifficultyClimbingStairs bool                          `json:"difficultyclimbingstairs"`
	LocalAssistance          bool                          `json:"localassistance"`
	LocalAssistancePerson    string                        `json:"localassistanceperson,omitempty"`
	Recordings               bool                          `json:"recordings"`
	RecordPrograms           string                        `json:"recordprograms,omitempty"`
	SpecialRequests          string                        `json:"specialrequests,omitempty"`
	DatePreferences          []models.RegistrationDatePref `json:"datePreferences"`
}

func registrationView(reg models.Registration) RegistrationView {
	view := RegistrationView{
		BookersEmail:             reg.BookersEmail,
		BookersPhone:             reg.BookersPhone,
		EventName:                reg.EventName,
		Name:                     reg.Name,
		Age:                      reg.Age,
		Gender:                   reg.Gender,
		Origin:                   reg.Origin,
		Contact:                  reg.Contact,
		TravelMode:               reg.TravelMode,
		DepartureFromHome:        reg.DepartureFromHome,
		ArrivalAtVenue:           reg.ArrivalAtVenue,
		Accommodation:            reg.Accommodation,
		CotRequired:              reg.CotRequired,
		DifficultyClimbingStairs: reg.DifficultyClimbingStairs,
		LocalAssistance:          reg.LocalAssistance,
		LocalAssistancePerson:    reg.LocalAssistancePerson,
		Recordings:               reg.Recordings,
		RecordPrograms:           reg.RecordPrograms,
		SpecialRequests:          reg.SpecialRequests,
	}
	if reg.AttendingDates != "" {
		if err := json.Unmarshal([]byte(reg.AttendingDates), &view.AttendingDates); err != nil {
			log.Printf("Corrupt attending dates for %s/%s: %v", reg.BookersEmail, reg.Name, err)
		}
	}
	if reg.DatePreferences != "" {
		if err := json.Unmarshal([]byte(reg.DatePreferences), &view.DatePreferences); err != nil {
			log.Printf("Corrupt date preferences for %s/%s: %v", reg.BookersEmail, reg.Name, err)
		}
	}
	return view
}

type ListRegistrationsRequest struct {
	Email string `path:"email" doc:"Booker's email"`
}

type ListRegistrationsResponse struct {
	Body struct {
		Registrations []RegistrationView `json:"registrations"`
	}
}

func (h *RegistrationHandler) HandleListByEmail(ctx context.Context, input *ListRegistrationsRequest) (*ListRegistrationsResponse, error) {
	var rows []models.Registration
	if err := h.db.Where("bookers_email = ?", input.Email).Order("id asc").Find(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations: " + err.Error())
	}

	res := &ListRegistrationsResponse{}
	res.Body.Registrations = make([]RegistrationView, 0, len(rows))
	for _, row := range rows {
		res.Body.Registrations = append(res.Body.Registrations, registrationView(row))
	}
	return res, nil
}

type UpdateRegistrationRequest struct {
	Body RegistrationView
}

type UpdateRegistrationResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleUpdate(ctx context.Context, input *UpdateRegistrationRequest) (*UpdateRegistrationResponse, error) {
	rec := input.Body
	if rec.BookersEmail == "" || rec.Name == "" {
		return nil, huma.Error400BadRequest("bookers_email and name are required")
	}

	var row models.Registration
	err := h.db.Where("bookers_email = ? AND bookers_phone = ? AND name = ?",
		rec.BookersEmail, rec.BookersPhone, rec.Name).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, huma.Error404NotFound("Registration not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registration: " + err.Error())
	}

	dates, err := json.Marshal(rec.AttendingDates)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid attending dates")
	}
	prefs, err := json.Marshal(rec.DatePreferences)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid date preferences")
	}

	row.EventName = rec.EventName
	row.Age = rec.Age
	row.Gender = rec.Gender
	row.Origin = rec.Origin
	row.Contact = rec.Contact
	row.TravelMode = rec.TravelMode
	row.DepartureFromHome = rec.DepartureFromHome
	row.ArrivalAtVenue = rec.ArrivalAtVenue
	row.Accommodation = rec.Accommodation
	row.CotRequired = rec.CotRequired
	row.DifficultyClimbingStairs = rec.DifficultyClimbingStairs
	row.LocalAssistance = rec.LocalAssistance
	row.LocalAssistancePerson = rec.LocalAssistancePerson
	row.Recordings = rec.Recordings
	row.RecordPrograms = rec.RecordPrograms
	row.SpecialRequests = rec.SpecialRequests
	row.AttendingDates = string(dates)
	row.DatePreferences = string(prefs)

	if err := h.db.Save(&row).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update registration: " + err.Error())
	}

	res := &UpdateRegistrationResponse{}
	res.Body.Message = "Registration updated successfully"
	return res, nil
}

type DeleteRegistrationRequest struct {
	Body struct {
		BookersEmail string `json:"bookers_email" required:"true"`
		BookersPhone string `json:"bookers_phone"`
		Name         string `json:"name" required:"true"`
	}
}

type DeleteRegistrationResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleDelete(ctx context.Context, input *DeleteRegistrationRequest) (*DeleteRegistrationResponse, error) {
	result := h.db.Where("bookers_email = ? AND bookers_phone = ? AND name = ?",
		input.Body.BookersEmail, input.Body.BookersPhone, input.Body.Name).
		Delete(&models.Registration{})
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete registration: " + result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Registration not found")
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyCancellation(input.Body.BookersEmail, input.Body.Name); err != nil {
			log.Printf("Failed to send cancellation notification: %v", err)
		}
	}

	res := &DeleteRegistrationResponse{}
	res.Body.Message = "Registration deleted successfully"
	return res, nil
}
