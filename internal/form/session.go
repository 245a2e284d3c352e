package form

import (
	"context"
	"errors"
)

// State is the position of a form instance in its submission lifecycle.
type State int

const (
	StateEditing State = iota
	StatePreviewing
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StatePreviewing:
		return "previewing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrNotPreviewing      = errors.New("form: confirmation requires the preview step")
	ErrNotEditing         = errors.New("form: preview requires the editing step")
	ErrSubmissionInFlight = errors.New("form: a submission is already in flight")
)

// Submitter sends a finished payload to the registration backend.
type Submitter interface {
	SubmitRegistration(ctx context.Context, payload SubmissionPayload) error
}

// Session drives a form through Editing -> Previewing -> Submitting ->
// Submitted. Confirmation always passes through the preview step, and a
// failed submission returns to Previewing with the form intact so the user
// can retry without re-entering anything.
type Session struct {
	form      *Form
	submitter Submitter
	state     State
}

func NewSession(f *Form, submitter Submitter) *Session {
	return &Session{form: f, submitter: submitter, state: StateEditing}
}

func (s *Session) Form() *Form {
	return s.form
}

func (s *Session) State() State {
	return s.state
}

// Preview validates the form and, when it passes, moves to the preview
// step. A validation failure leaves the session in Editing.
func (s *Session) Preview() error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if err := s.form.Validate(); err != nil {
		return err
	}
	s.state = StatePreviewing
	return nil
}

// Back returns from the preview to editing.
func (s *Session) Back() error {
	if s.state != StatePreviewing {
		return ErrNotPreviewing
	}
	s.state = StateEditing
	return nil
}

// Confirm submits the previewed registration. While the request is
// outstanding the session refuses duplicate confirmations; this is the only
// concurrency guard the flow needs. On success the form is cleared, on
// failure the session drops back to Previewing for a user-initiated retry.
func (s *Session) Confirm(ctx context.Context) error {
	switch s.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StatePreviewing:
	default:
		return ErrNotPreviewing
	}

	payload := s.form.BuildSubmissionPayload()
	s.state = StateSubmitting
	if err := s.submitter.SubmitRegistration(ctx, payload); err != nil {
		s.state = StatePreviewing
		return err
	}

	s.form.Reset()
	s.state = StateSubmitted
	return nil
}
