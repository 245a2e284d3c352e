package form

import (
	"testing"
	"time"
)

func TestBuildSubmissionPayloadEndToEnd(t *testing.T) {
	f := New(testConfig())
	fillValid(t, f)

	payload := f.BuildSubmissionPayload()

	if payload.Event != "annual-utsav-jan" {
		t.Errorf("event = %q", payload.Event)
	}
	if payload.ContactEmail != "asha@example.com" {
		t.Errorf("contactEmail = %q", payload.ContactEmail)
	}
	if payload.TotalParticipants != 1 || len(payload.Participants) != 1 {
		t.Fatalf("expected exactly one participant, got total=%d len=%d",
			payload.TotalParticipants, len(payload.Participants))
	}

	p := payload.Participants[0]
	if p.Name != "Asha" {
		t.Errorf("name = %q", p.Name)
	}
	if p.TravelMode != "Car" {
		t.Errorf("travelMode = %q", p.TravelMode)
	}
	if len(p.AttendingDates) != 2 ||
		p.AttendingDates[0] != "19-01-2026" || p.AttendingDates[1] != "20-01-2026" {
		t.Fatalf("attendingDates = %v", p.AttendingDates)
	}
	if len(p.DatePreferences) != 2 {
		t.Fatalf("expected 2 date preference entries, got %d", len(p.DatePreferences))
	}
	for i, pref := range p.DatePreferences {
		if pref.Date != p.AttendingDates[i] {
			t.Errorf("entry %d date %q does not match attending date %q", i, pref.Date, p.AttendingDates[i])
		}
		if pref.MorningTea != "no" || pref.MorningCoffee != "no" ||
			pref.AfternoonTea != "no" || pref.AfternoonCoffee != "no" {
			t.Errorf("entry %d beverages should default to no: %+v", i, pref)
		}
		if pref.Breakfast || pref.Lunch || pref.Dinner || pref.PackedLunch || pref.PackedDinner {
			t.Errorf("entry %d meals should default to false: %+v", i, pref)
		}
	}
}

func TestBuildSubmissionPayloadSkipsStalePreferences(t *testing.T) {
	f := New(testConfig())
	fillValid(t, f)

	d19 := day(2026, time.January, 19)
	d20 := day(2026, time.January, 20)
	d21 := day(2026, time.January, 21)

	if err := f.SetAttendingDates(0, []time.Time{d19, d20, d21}); err != nil {
		t.Fatalf("SetAttendingDates: %v", err)
	}
	f.UpdateDatePreference(0, d21, func(p *DatePreference) { p.Dinner = true })

	// Deselect the 21st. Its preference entry stays in the map but must not
	// be serialized.
	if err := f.SetAttendingDates(0, []time.Time{d19, d20}); err != nil {
		t.Fatalf("SetAttendingDates: %v", err)
	}
	if _, ok := f.Participant(0).DatePreferences[DateKey(d21)]; !ok {
		t.Fatal("stale map entry expected to remain for this test")
	}

	payload := f.BuildSubmissionPayload()
	p := payload.Participants[0]

	if len(p.AttendingDates) != len(f.Participant(0).AttendingDates) {
		t.Errorf("payload date count %d != live date count %d",
			len(p.AttendingDates), len(f.Participant(0).AttendingDates))
	}
	if len(p.DatePreferences) != len(p.AttendingDates) {
		t.Fatalf("preference entries %d != attending dates %d",
			len(p.DatePreferences), len(p.AttendingDates))
	}
	for _, pref := range p.DatePreferences {
		if pref.Date == "21-01-2026" {
			t.Error("stale preference for a deselected date leaked into the payload")
		}
	}
}

func TestBuildSubmissionPayloadOptionalFields(t *testing.T) {
	f := New(testConfig())
	fillValid(t, f)
	p := f.Participant(0)
	p.Age = ""
	p.Gender = GenderUnset
	p.Origin = ""
	p.SpecialRequests = ""
	p.LocalAssistance = false
	p.LocalAssistancePerson = "Shriram Gokhale" // stale, flag is off
	p.Recordings = false
	p.RecordingPrograms = "stale"

	out := f.BuildSubmissionPayload().Participants[0]
	if out.Age != nil || out.Gender != nil || out.Origin != nil || out.SpecialRequests != nil {
		t.Errorf("empty optionals must serialize as null: %+v", out)
	}
	if out.LocalAssistancePerson != nil {
		t.Error("assistance person must be null when the flag is off")
	}
	if out.RecordingPrograms != nil {
		t.Error("recording programs must be null when the flag is off")
	}

	p.Age = "65"
	p.LocalAssistance = true
	p.Recordings = true
	out = f.BuildSubmissionPayload().Participants[0]
	if out.Age == nil || *out.Age != "65" {
		t.Errorf("age not carried: %v", out.Age)
	}
	if out.LocalAssistancePerson == nil || *out.LocalAssistancePerson != "Shriram Gokhale" {
		t.Errorf("assistance person not carried: %v", out.LocalAssistancePerson)
	}
	if out.RecordingPrograms == nil || *out.RecordingPrograms != "stale" {
		t.Errorf("recording programs not carried: %v", out.RecordingPrograms)
	}
}

func TestBuildSubmissionPayloadLastDayDeparture(t *testing.T) {
	f := New(testConfig())
	fillValid(t, f)

	last, ok := LastDay(f.Participant(0).AttendingDates)
	if !ok {
		t.Fatal("no attending dates")
	}
	f.UpdateDatePreference(0, last, func(p *DatePreference) {
		p.PackedLunch = true
		p.DepartureTime = "16:30"
	})

	prefs := f.BuildSubmissionPayload().Participants[0].DatePreferences
	lastEntry := prefs[len(prefs)-1]
	if lastEntry.Date != WireDate(last) {
		t.Fatalf("last entry is %s, want %s", lastEntry.Date, WireDate(last))
	}
	if !lastEntry.PackedLunch || lastEntry.DepartureTime != "16:30" {
		t.Errorf("last-day departure fields lost: %+v", lastEntry)
	}
}
