package form

import "fmt"

// ValidationError is a recoverable, user-facing validation failure. It
// blocks the transition to preview and leaves the form state untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks the form in a fixed order and returns the first failing
// rule: event, contact email, then per participant in list order name,
// contact, attending dates, travel mode, departure time, arrival time.
func (f *Form) Validate() error {
	if f.Event == "" {
		return validationErrorf("please select an event")
	}
	if f.ContactEmail == "" {
		return validationErrorf("please ensure you are signed in with a valid email")
	}

	for i, p := range f.Participants {
		if p.Name == "" {
			return validationErrorf("please enter name for participant %d", i+1)
		}
		if p.Contact == "" {
			return validationErrorf("please enter contact number for participant %d", i+1)
		}
		if len(p.AttendingDates) == 0 {
			return validationErrorf("please select attending dates for %s", p.Name)
		}
		if p.TravelMode == TravelModeUnset {
			return validationErrorf("please select travel mode for %s", p.Name)
		}
		if p.TravelDetails.DepartureFromHome == "" {
			return validationErrorf("please enter departure time from hometown for %s", p.Name)
		}
		if p.TravelDetails.ArrivalAtVenue == "" {
			return validationErrorf("please enter arrival time at venue for %s", p.Name)
		}
	}
	return nil
}
