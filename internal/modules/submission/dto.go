package submission

import "strings"

// StudentDetails holds the fields collected from a student.
type StudentDetails struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required,min=10"`
	IDNumber      string `json:"idNumber" validate:"required,min=13"`
	Institution   string `json:"institution" validate:"required"`
	Campus        string `json:"campus" validate:"required"`
	Accommodation string `json:"accommodation" validate:"required"`
}

// ProviderDetails holds the fields collected from an accommodation provider.
type ProviderDetails struct {
	PropertyName  string `json:"propertyName" validate:"required"`
	FullName      string `json:"fullName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,min=10"`
	IDNumber      string `json:"idNumber" validate:"required,min=13"`
	Email         string `json:"email" validate:"required,email"`
}

// OtherDetails holds the fields collected from any other user.
type OtherDetails struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required,min=10"`
	IDNumber      string `json:"idNumber" validate:"required,min=13"`
}

// QueryDetails is the query section shared by every category.
type QueryDetails struct {
	Query         string `json:"query" validate:"required"`
	DescribeQuery string `json:"describeQuery" validate:"required"`
}

// Request is the literal wire format of POST /api/submit: all four field
// groups are always present and only the group matching TypeOfUser is
// consumed by the receiver.
type Request struct {
	TypeOfUser string          `json:"typeOfUser"`
	AP         ProviderDetails `json:"AP"`
	Student    StudentDetails  `json:"Student"`
	Other      OtherDetails    `json:"other"`
	Query      QueryDetails    `json:"Query"`
}

// Field is one labeled value of a rendered detail block.
type Field struct {
	Label string
	Value string
}

// Details is the category-specific field set of a submission.
type Details interface {
	// Empty reports whether every field of the group is blank, meaning the
	// group was absent from the wire payload.
	Empty() bool
	// Fields returns the labeled values in their schema order.
	Fields() []Field
}

// Submission is the internal representation of a draft: the category plus
// only the detail group that belongs to it.
type Submission struct {
	Category Category
	Details  Details
	Query    QueryDetails
}

// Submission selects the detail group named by the discriminator. ok is
// false when the discriminator is not one of the recognized categories.
func (r Request) Submission() (Submission, bool) {
	cat, ok := ParseCategory(r.TypeOfUser)
	if !ok {
		return Submission{}, false
	}
	sub := Submission{Category: cat, Query: r.Query}
	switch cat {
	case CategoryStudent:
		sub.Details = r.Student
	case CategoryProvider:
		sub.Details = r.AP
	case CategoryOther:
		sub.Details = r.Other
	}
	return sub, true
}

// Normalized returns a copy of the request with every field trimmed.
func (r Request) Normalized() Request {
	r.TypeOfUser = strings.TrimSpace(r.TypeOfUser)
	r.Student = r.Student.trimmed()
	r.AP = r.AP.trimmed()
	r.Other = r.Other.trimmed()
	r.Query.Query = strings.TrimSpace(r.Query.Query)
	r.Query.DescribeQuery = strings.TrimSpace(r.Query.DescribeQuery)
	return r
}

func (d StudentDetails) trimmed() StudentDetails {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	d.ContactNumber = strings.TrimSpace(d.ContactNumber)
	d.IDNumber = strings.TrimSpace(d.IDNumber)
	d.Institution = strings.TrimSpace(d.Institution)
	d.Campus = strings.TrimSpace(d.Campus)
	d.Accommodation = strings.TrimSpace(d.Accommodation)
	return d
}

func (d ProviderDetails) trimmed() ProviderDetails {
	d.PropertyName = strings.TrimSpace(d.PropertyName)
	d.FullName = strings.TrimSpace(d.FullName)
	d.ContactNumber = strings.TrimSpace(d.ContactNumber)
	d.IDNumber = strings.TrimSpace(d.IDNumber)
	d.Email = strings.TrimSpace(d.Email)
	return d
}

func (d OtherDetails) trimmed() OtherDetails {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	d.ContactNumber = strings.TrimSpace(d.ContactNumber)
	d.IDNumber = strings.TrimSpace(d.IDNumber)
	return d
}

func (d StudentDetails) Empty() bool {
	return d.FullName == "" && d.Email == "" && d.ContactNumber == "" &&
		d.IDNumber == "" && d.Institution == "" && d.Campus == "" && d.Accommodation == ""
}

func (d ProviderDetails) Empty() bool {
	return d.PropertyName == "" && d.FullName == "" && d.ContactNumber == "" &&
		d.IDNumber == "" && d.Email == ""
}

func (d OtherDetails) Empty() bool {
	return d.FullName == "" && d.Email == "" && d.ContactNumber == "" && d.IDNumber == ""
}

func (d StudentDetails) Fields() []Field {
	return []Field{
		{"Name", d.FullName},
		{"Email", d.Email},
		{"Contact Number", d.ContactNumber},
		{"ID Number", d.IDNumber},
		{"Institution", d.Institution},
		{"Campus", d.Campus},
		{"Accommodation", d.Accommodation},
	}
}

func (d ProviderDetails) Fields() []Field {
	return []Field{
		{"Property Name", d.PropertyName},
		{"Name", d.FullName},
		{"Contact Number", d.ContactNumber},
		{"ID Number", d.IDNumber},
		{"Email", d.Email},
	}
}

func (d OtherDetails) Fields() []Field {
	return []Field{
		{"Name", d.FullName},
		{"Email", d.Email},
		{"Contact Number", d.ContactNumber},
		{"ID Number", d.IDNumber},
	}
}
