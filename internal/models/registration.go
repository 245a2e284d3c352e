package models

import (
	"gorm.io/gorm"
)

// Registration is one participant's stored registration. A multi-participant
// submission expands into one row per participant; bookers_email +
// bookers_phone + name identify a row for update and delete.
type Registration struct {
	gorm.Model
	BookersEmail string `gorm:"index:idx_booker" json:"bookers_email"`
	BookersPhone string `gorm:"index:idx_booker" json:"bookers_phone"`
	EventName    string `json:"event_name"`

	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Origin  string `json:"origin"`
	Contact string `json:"contact"`

	TravelMode        string `json:"travelmode"`
	DepartureFromHome string `json:"departure_from_home"`
	ArrivalAtVenue    string `json:"arrival_at_venue"`

	Accommodation            bool   `json:"accommodation"`
	CotRequired              bool   `json:"cot_required"`
	DifficultyClimbingStairs bool   `json:"difficultyclimbingstairs"`
	LocalAssistance          bool   `json:"localassistance"`
	LocalAssistancePerson    string `json:"localassistanceperson"`
	Recordings               bool   `json:"recordings"`
	RecordPrograms           string `json:"recordprograms"`
	SpecialRequests          string `json:"specialrequests"`

	// AttendingDates and DatePreferences are stored as JSON text; sqlite
	// has no native array/document column.
	AttendingDates  string `json:"-"`
	DatePreferences string `json:"-"`
}

// RegistrationDatePref is one serialized entry of a registration's
// per-date preference list.
type RegistrationDatePref struct {
	Date            string `json:"date"`
	MorningTea      string `json:"morning_tea"`
	MorningCoffee   string `json:"morning_coffee"`
	AfternoonTea    string `json:"afternoon_tea"`
	AfternoonCoffee string `json:"afternoon_coffee"`
	Breakfast       bool   `json:"breakfast"`
	Lunch           bool   `json:"lunch"`
	Dinner          bool   `json:"dinner"`
	PackedLunch     bool   `json:"packed_lunch"`
	PackedDinner    bool   `json:"packed_dinner"`
	DepartureTime   string `json:"departuretime"`
}
