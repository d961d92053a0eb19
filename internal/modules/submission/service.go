package submission

import (
	"context"
	"fmt"
	"log"

	"helpdesk/internal/metrics"
	"helpdesk/pkg/apperrors"
)

// Relay dispatches one rendered email to the helpdesk address.
// Implementations make a single attempt; retrying is the submitter's
// responsibility.
type Relay interface {
	Send(subject, htmlBody, textBody string) error
}

// Service owns the server side of the submission pipeline: shallow
// re-validation of the discriminator and group presence, email rendering
// and one synchronous relay dispatch. It keeps no state between requests.
type Service struct {
	relay Relay
}

// NewService creates a submission service.
func NewService(relay Relay) *Service {
	return &Service{relay: relay}
}

// Submit validates the request enough to trust its shape, renders the
// helpdesk email and dispatches it. Field-format rules (lengths, email
// shape) are enforced client-side only; the server rejects just an
// unrecognized discriminator (ErrInvalidUserType) and an absent detail
// group (ErrDetailsMissing).
func (s *Service) Submit(ctx context.Context, req Request) error {
	sub, ok := req.Normalized().Submission()
	if !ok {
		metrics.RecordSubmission("unknown", "invalid_user_type")
		return ErrInvalidUserType
	}

	if sub.Details.Empty() {
		metrics.RecordSubmission(string(sub.Category), "details_missing")
		return ErrDetailsMissing
	}

	email, err := BuildEmail(sub)
	if err != nil {
		metrics.RecordSubmission(string(sub.Category), "error")
		return fmt.Errorf("build email: %w", err)
	}

	if err := s.relay.Send(email.Subject, email.HTMLBody, email.TextBody); err != nil {
		metrics.RecordSubmission(string(sub.Category), "relay_failed")
		metrics.RecordEmailDispatch("failed")
		return apperrors.Wrap(apperrors.CodeRelay, "helpdesk email dispatch failed", err)
	}

	metrics.RecordSubmission(string(sub.Category), "sent")
	metrics.RecordEmailDispatch("sent")
	log.Printf("submission_sent category=%s query=%q", sub.Category, sub.Query.Query)
	return nil
}
