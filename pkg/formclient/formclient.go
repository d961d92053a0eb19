// Package formclient owns the transient state of the multi-step helpdesk
// query form: the per-category detail groups, the shared query section,
// the step counter and the submit flow. It runs the full validation rule
// set before any network call and performs exactly one POST per accepted
// submit.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"helpdesk/internal/modules/submission"
	"helpdesk/pkg/apperrors"
)

// ErrInFlight is returned when Submit is called while a previous submit
// from the same Form is still running.
var ErrInFlight = errors.New("submission already in flight")

// ValidationError carries every violation found in the draft. No network
// call is made when it is returned.
type ValidationError struct {
	Violations []submission.Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, violation := range e.Violations {
		messages[i] = violation.Message
	}
	return "invalid form: " + strings.Join(messages, "; ")
}

// Form is a single form instance. All four detail groups are kept and
// sent on the wire; only the selected category's group is meaningful.
type Form struct {
	endpoint string
	client   *http.Client

	mu        sync.Mutex
	category  submission.Category
	step      int
	draft     submission.Request
	busy      bool
	submitted bool
}

// New creates a form posting to the given submit endpoint. The category
// starts as Student and the wizard starts at step 1.
func New(endpoint string) *Form {
	return &Form{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		category: submission.CategoryStudent,
		step:     1,
	}
}

// Step returns the current wizard step.
func (f *Form) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// NextStep advances the wizard. No upper bound is enforced here; that is
// a presentation concern.
func (f *Form) NextStep() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step++
}

// PrevStep retreats the wizard, never below step 1.
func (f *Form) PrevStep() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > 1 {
		f.step--
	}
}

// SelectCategory switches which detail group subsequent edits land in.
func (f *Form) SelectCategory(category submission.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.category = category
}

// Category returns the currently selected category.
func (f *Form) Category() submission.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// SetField records one field edit by its wire name. The edit is applied
// to the active category's group and to the query group, mirroring the
// original form's change handler.
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.category {
	case submission.CategoryStudent:
		setStudentField(&f.draft.Student, name, value)
	case submission.CategoryProvider:
		setProviderField(&f.draft.AP, name, value)
	case submission.CategoryOther:
		setOtherField(&f.draft.Other, name, value)
	}

	switch name {
	case "query":
		f.draft.Query.Query = value
	case "describeQuery":
		f.draft.Query.DescribeQuery = value
	}
}

// Busy reports whether a submit is in flight.
func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Submitted reports whether the form reached its terminal state.
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Submit validates the draft and performs at most one POST. A
// *ValidationError is returned without any network I/O when the draft
// fails the rule set. Transport failures leave the form state intact so
// the user can resubmit without re-entering data.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrInFlight
	}
	f.busy = true
	f.draft.TypeOfUser = string(f.category)
	payload := f.draft
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if violations := submission.Validate(payload); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeTransport, "could not reach the server, please try again", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.New(apperrors.CodeTransport,
			fmt.Sprintf("submission was not accepted (status %d), please try again", resp.StatusCode))
	}

	f.mu.Lock()
	f.submitted = true
	f.mu.Unlock()
	return nil
}

func setStudentField(details *submission.StudentDetails, name, value string) {
	switch name {
	case "fullName":
		details.FullName = value
	case "email":
		details.Email = value
	case "contactNumber":
		details.ContactNumber = value
	case "idNumber":
		details.IDNumber = value
	case "institution":
		details.Institution = value
	case "campus":
		details.Campus = value
	case "accommodation":
		details.Accommodation = value
	}
}

func setProviderField(details *submission.ProviderDetails, name, value string) {
	switch name {
	case "propertyName":
		details.PropertyName = value
	case "fullName":
		details.FullName = value
	case "contactNumber":
		details.ContactNumber = value
	case "idNumber":
		details.IDNumber = value
	case "email":
		details.Email = value
	}
}

func setOtherField(details *submission.OtherDetails, name, value string) {
	switch name {
	case "fullName":
		details.FullName = value
	case "email":
		details.Email = value
	case "contactNumber":
		details.ContactNumber = value
	case "idNumber":
		details.IDNumber = value
	}
}
