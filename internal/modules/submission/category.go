package submission

// Category discriminates which detail schema applies to a submission.
type Category string

const (
	CategoryStudent  Category = "Student"
	CategoryProvider Category = "AP"
	CategoryOther    Category = "other"
)

// ParseCategory maps the wire discriminator onto a Category. ok is false
// for anything outside the three recognized values.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryStudent, CategoryProvider, CategoryOther:
		return Category(s), true
	default:
		return "", false
	}
}

// DisplayName is the name used in the email subject and heading. The
// "other" category is reported to the helpdesk as an unknown user.
func (c Category) DisplayName() string {
	if c == CategoryOther {
		return "Unknown user"
	}
	return string(c)
}
