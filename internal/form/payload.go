package form

// SubmissionPayload is the request body for POST /api/registration.
type SubmissionPayload struct {
	Event             string               `json:"event"`
	ContactEmail      string               `json:"contactEmail"`
	ContactNumber     string               `json:"contactNumber"`
	TotalParticipants int                  `json:"totalParticipants"`
	Participants      []ParticipantPayload `json:"participants"`
}

type ParticipantPayload struct {
	Name                     string                `json:"name"`
	Age                      *string               `json:"age"`
	Gender                   *string               `json:"gender"`
	Origin                   *string               `json:"origin"`
	ContactNumber            *string               `json:"contactNumber"`
	AttendingDates           []string              `json:"attendingDates"`
	TravelMode               string                `json:"travelMode"`
	TravelDetails            TravelDetailsPayload  `json:"travelDetails"`
	Accommodation            bool                  `json:"accommodation"`
	Cot                      bool                  `json:"cot"`
	DifficultyClimbingStairs bool                  `json:"difficultyClimbingStairs"`
	LocalAssistance          bool                  `json:"localAssistance"`
	LocalAssistancePerson    *string               `json:"localAssistancePerson"`
	Recordings               bool                  `json:"recordings"`
	RecordingPrograms        *string               `json:"recordingPrograms"`
	SpecialRequests          *string               `json:"specialRequests"`
	DatePreferences          []DatePreferenceEntry `json:"datePreferences"`
}

type TravelDetailsPayload struct {
	DepartureFromHome string `json:"departureFromHome"`
	ArrivalAtVenue    string `json:"arrivalAtVenue"`
}

// DatePreferenceEntry is one attending date's preferences as transmitted.
// Date is in DD-MM-YYYY form.
type DatePreferenceEntry struct {
	Date            string `json:"date"`
	MorningTea      string `json:"morningTea"`
	MorningCoffee   string `json:"morningCoffee"`
	AfternoonTea    string `json:"afternoonTea"`
	AfternoonCoffee string `json:"afternoonCoffee"`
	Breakfast       bool   `json:"breakfast"`
	Lunch           bool   `json:"lunch"`
	Dinner          bool   `json:"dinner"`
	PackedLunch     bool   `json:"packedLunch"`
	PackedDinner    bool   `json:"packedDinner"`
	DepartureTime   string `json:"departureTime"`
}

// BuildSubmissionPayload derives the wire payload from the live form state.
// Attending dates are reformatted from the underlying time values and the
// preference array is rebuilt by key lookup, so stale map entries for
// deselected dates never leak into the payload.
func (f *Form) BuildSubmissionPayload() SubmissionPayload {
	payload := SubmissionPayload{
		Event:             f.Event,
		ContactEmail:      f.ContactEmail,
		ContactNumber:     f.ContactNumber,
		TotalParticipants: len(f.Participants),
		Participants:      make([]ParticipantPayload, 0, len(f.Participants)),
	}

	for _, p := range f.Participants {
		dates := normalizeDates(p.AttendingDates)

		wireDates := make([]string, 0, len(dates))
		prefs := make([]DatePreferenceEntry, 0, len(dates))
		for _, d := range dates {
			pref, ok := p.DatePreferences[DateKey(d)]
			if !ok {
				pref = NewDatePreference()
			}
			wireDates = append(wireDates, WireDate(d))
			prefs = append(prefs, DatePreferenceEntry{
				Date:            WireDate(d),
				MorningTea:      string(pref.MorningTea),
				MorningCoffee:   string(pref.MorningCoffee),
				AfternoonTea:    string(pref.AfternoonTea),
				AfternoonCoffee: string(pref.AfternoonCoffee),
				Breakfast:       pref.Breakfast,
				Lunch:           pref.Lunch,
				Dinner:          pref.Dinner,
				PackedLunch:     pref.PackedLunch,
				PackedDinner:    pref.PackedDinner,
				DepartureTime:   pref.DepartureTime,
			})
		}

		pp := ParticipantPayload{
			Name:           p.Name,
			Age:            optional(p.Age),
			Gender:         optional(string(p.Gender)),
			Origin:         optional(p.Origin),
			ContactNumber:  optional(p.Contact),
			AttendingDates: wireDates,
			TravelMode:     string(p.TravelMode),
			TravelDetails: TravelDetailsPayload{
				DepartureFromHome: p.TravelDetails.DepartureFromHome,
				ArrivalAtVenue:    p.TravelDetails.ArrivalAtVenue,
			},
			Accommodation:            p.Accommodation,
			Cot:                      p.Cot,
			DifficultyClimbingStairs: p.DifficultyClimbing,
			LocalAssistance:          p.LocalAssistance,
			Recordings:               p.Recordings,
			SpecialRequests:          optional(p.SpecialRequests),
			DatePreferences:          prefs,
		}
		// Conditional fields are only transmitted when their flag is set.
		if p.LocalAssistance {
			pp.LocalAssistancePerson = optional(p.LocalAssistancePerson)
		}
		if p.Recordings {
			pp.RecordingPrograms = optional(p.RecordingPrograms)
		}
		payload.Participants = append(payload.Participants, pp)
	}

	return payload
}

// optional maps an empty string to an explicit null instead of sending "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
