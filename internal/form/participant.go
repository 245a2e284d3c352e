package form

import (
	"fmt"
	"math/rand"
	"time"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type TravelMode string

const (
	TravelModeUnset  TravelMode = ""
	TravelModeBus    TravelMode = "Bus"
	TravelModeTrain  TravelMode = "Train"
	TravelModeCar    TravelMode = "Car"
	TravelModeFlight TravelMode = "Flight"
)

// BeverageChoice is the tri-state answer for a tea/coffee slot.
type BeverageChoice string

const (
	BeverageNo           BeverageChoice = "no"
	BeverageWithSugar    BeverageChoice = "with"
	BeverageWithoutSugar BeverageChoice = "without"
)

type TravelDetails struct {
	DepartureFromHome string
	ArrivalAtVenue    string
}

// DatePreference holds the meal and beverage choices of one participant on
// one attending date. DepartureTime is only meaningful on the last day.
type DatePreference struct {
	MorningTea      BeverageChoice
	MorningCoffee   BeverageChoice
	AfternoonTea    BeverageChoice
	AfternoonCoffee BeverageChoice
	Breakfast       bool
	Lunch           bool
	Dinner          bool
	PackedLunch     bool
	PackedDinner    bool
	DepartureTime   string
}

func NewDatePreference() DatePreference {
	return DatePreference{
		MorningTea:      BeverageNo,
		MorningCoffee:   BeverageNo,
		AfternoonTea:    BeverageNo,
		AfternoonCoffee: BeverageNo,
	}
}

// Participant is one person covered by a registration submission. The ID is
// scoped to the form session only and is never sent to the server.
type Participant struct {
	ID      string
	Name    string
	Age     string
	Gender  Gender
	Contact string
	Origin  string

	AttendingDates []time.Time
	TravelMode     TravelMode
	TravelDetails  TravelDetails

	// DatePreferences is keyed by DateKey of an attending date. Entries for
	// dates no longer selected may linger; serialization only reads keys
	// derived from AttendingDates.
	DatePreferences map[string]DatePreference

	Accommodation         bool
	Cot                   bool
	DifficultyClimbing    bool
	LocalAssistance       bool
	LocalAssistancePerson string
	Recordings            bool
	RecordingPrograms     string
	SpecialRequests       string

	// Collapsed is a display flag, never transmitted.
	Collapsed bool
}

func NewParticipant() *Participant {
	return &Participant{
		ID:              fmt.Sprintf("%d-%04d", time.Now().UnixNano(), rand.Intn(10000)),
		DatePreferences: map[string]DatePreference{},
	}
}

// SetContact sanitizes raw input before storing it: non-digit characters are
// stripped and anything beyond ten digits is truncated.
func (p *Participant) SetContact(raw string) {
	p.Contact = Digits(raw)
}

// Digits keeps only the digit characters of s, capped at ten.
func Digits(s string) string {
	out := make([]byte, 0, 10)
	for i := 0; i < len(s) && len(out) < 10; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// AssistancePerson is one entry of the fixed local-assistance roster.
type AssistancePerson struct {
	Name    string
	Contact string
}
