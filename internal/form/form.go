package form

import (
	"fmt"
	"time"
)

// Config carries the event-level context the form needs: which events are
// open, the attendance window and the assistance roster. It is passed in
// explicitly so the form stays testable without a UI.
type Config struct {
	// Events the registrant can pick from.
	Events []string
	// WindowStart and WindowEnd bound the selectable attending dates,
	// inclusive. Zero values leave that side unbounded.
	WindowStart time.Time
	WindowEnd   time.Time
	// AssistanceRoster is the fixed list of local-assistance contacts.
	AssistanceRoster []AssistancePerson
}

// Form holds the editable state of one registration: the event and contact
// fields plus the participant list. The list always has at least one entry.
type Form struct {
	cfg Config

	Event         string
	ContactEmail  string
	ContactNumber string
	Participants  []*Participant
}

func New(cfg Config) *Form {
	return &Form{
		cfg:          cfg,
		Participants: []*Participant{NewParticipant()},
	}
}

func (f *Form) Config() Config {
	return f.cfg
}

// SetContactNumber applies the same digit sanitization as participant
// contact fields.
func (f *Form) SetContactNumber(raw string) {
	f.ContactNumber = Digits(raw)
}

// AddParticipant appends a participant with default values and returns it.
func (f *Form) AddParticipant() *Participant {
	p := NewParticipant()
	f.Participants = append(f.Participants, p)
	return p
}

// RemoveParticipant removes the participant at index unless it is the only
// one left, in which case it reports false and leaves the list untouched.
func (f *Form) RemoveParticipant(index int) bool {
	if len(f.Participants) <= 1 {
		return false
	}
	f.Participants = append(f.Participants[:index], f.Participants[index+1:]...)
	return true
}

// Participant returns the participant at index. An out-of-range index is a
// programming error and panics.
func (f *Form) Participant(index int) *Participant {
	return f.Participants[index]
}

// SetAttendingDates replaces the participant's attending dates with the
// deduplicated, ascending-sorted input and lazily creates a default
// DatePreference for every newly selected date. Preferences already entered
// for dates that stay selected are preserved. Dates outside the configured
// window are rejected.
func (f *Form) SetAttendingDates(index int, dates []time.Time) error {
	p := f.Participants[index]
	normalized := normalizeDates(dates)
	for _, d := range normalized {
		if !f.cfg.WindowStart.IsZero() && d.Before(f.cfg.WindowStart) {
			return fmt.Errorf("date %s is before the event window", WireDate(d))
		}
		if !f.cfg.WindowEnd.IsZero() && d.After(f.cfg.WindowEnd) {
			return fmt.Errorf("date %s is after the event window", WireDate(d))
		}
	}
	for _, d := range normalized {
		key := DateKey(d)
		if _, ok := p.DatePreferences[key]; !ok {
			p.DatePreferences[key] = NewDatePreference()
		}
	}
	p.AttendingDates = normalized
	return nil
}

// UpdateDatePreference mutates the participant's preference record for the
// given date, creating a default record first if none exists yet.
func (f *Form) UpdateDatePreference(index int, day time.Time, update func(*DatePreference)) {
	p := f.Participants[index]
	key := DateKey(day)
	pref, ok := p.DatePreferences[key]
	if !ok {
		pref = NewDatePreference()
	}
	update(&pref)
	p.DatePreferences[key] = pref
}

// DatePreferenceFor reads the participant's preference record for the given
// date, falling back to the defaults when none was entered.
func (f *Form) DatePreferenceFor(index int, day time.Time) DatePreference {
	if pref, ok := f.Participants[index].DatePreferences[DateKey(day)]; ok {
		return pref
	}
	return NewDatePreference()
}

// CopyPreferences deep-copies travel and preference state from one
// participant to another. Identity fields (name, age, gender, contact) stay
// per person. The target shares no mutable state with the source afterwards.
func (f *Form) CopyPreferences(fromIndex, toIndex int) {
	src := f.Participants[fromIndex]
	dst := f.Participants[toIndex]

	dst.Origin = src.Origin
	dst.AttendingDates = append([]time.Time(nil), src.AttendingDates...)
	dst.TravelMode = src.TravelMode
	dst.TravelDetails = src.TravelDetails

	prefs := make(map[string]DatePreference, len(src.DatePreferences))
	for key, pref := range src.DatePreferences {
		prefs[key] = pref
	}
	dst.DatePreferences = prefs

	dst.Accommodation = src.Accommodation
	dst.Cot = src.Cot
	dst.DifficultyClimbing = src.DifficultyClimbing
	dst.LocalAssistance = src.LocalAssistance
	dst.LocalAssistancePerson = src.LocalAssistancePerson
	dst.Recordings = src.Recordings
	dst.RecordingPrograms = src.RecordingPrograms
	dst.SpecialRequests = src.SpecialRequests
}

// Reset discards all entered state. ContactEmail is kept because it mirrors
// the signed-in identity rather than form input. Nothing else is retained
// after a successful submission; the server of record owns durable state.
func (f *Form) Reset() {
	f.Event = ""
	f.ContactNumber = ""
	f.Participants = []*Participant{NewParticipant()}
}
