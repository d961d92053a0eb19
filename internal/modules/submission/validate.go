package submission

import (
	"sort"

	pkgvalidator "helpdesk/internal/pkg/validator"
)

// Violation is a single human-readable validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate applies the full field-format rule set to a draft request and
// accumulates every violation so the caller can report all of them at
// once. The rules are: every field of the active category's detail group
// non-empty after trimming, email fields shaped like local@domain, contact
// numbers at least 10 characters, ID numbers at least 13 characters, and
// both query fields non-empty.
//
// The HTTP handler deliberately enforces only the discriminator and
// group-presence subset of these rules; clients run the whole set before
// submitting.
func Validate(req Request) []Violation {
	req = req.Normalized()

	sub, ok := req.Submission()
	if !ok {
		return []Violation{{
			Field:   "typeOfUser",
			Message: "typeOfUser must be one of Student, AP, other",
		}}
	}

	var violations []Violation
	violations = appendViolations(violations, pkgvalidator.Validate(sub.Details))
	violations = appendViolations(violations, pkgvalidator.Validate(sub.Query))
	return violations
}

func appendViolations(violations []Violation, messages map[string]string) []Violation {
	fields := make([]string, 0, len(messages))
	for field := range messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		violations = append(violations, Violation{
			Field:   field,
			Message: field + " " + messages[field],
		})
	}
	return violations
}
