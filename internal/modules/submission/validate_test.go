package submission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validStudentRequest() Request {
	return Request{
		TypeOfUser: "Student",
		Student: StudentDetails{
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			ContactNumber: "0821234567",
			IDNumber:      "9001015800089",
			Institution:   "UCT",
			Campus:        "Main",
			Accommodation: "Res A",
		},
		Query: QueryDetails{Query: "Payments", DescribeQuery: "Fee query"},
	}
}

func validProviderRequest() Request {
	return Request{
		TypeOfUser: "AP",
		AP: ProviderDetails{
			PropertyName:  "Sunnyside Lodge",
			FullName:      "Piet Botha",
			ContactNumber: "0115550000",
			IDNumber:      "8005125009087",
			Email:         "piet@sunnyside.co.za",
		},
		Query: QueryDetails{Query: "Listings", DescribeQuery: "How do I list a property?"},
	}
}

func validOtherRequest() Request {
	return Request{
		TypeOfUser: "other",
		Other: OtherDetails{
			FullName:      "Sam Smith",
			Email:         "sam@example.com",
			ContactNumber: "0735551234",
			IDNumber:      "9212315800083",
		},
		Query: QueryDetails{Query: "General", DescribeQuery: "Just a question"},
	}
}

func TestValidateAcceptsCompleteRequests(t *testing.T) {
	for name, req := range map[string]Request{
		"student":  validStudentRequest(),
		"provider": validProviderRequest(),
		"other":    validOtherRequest(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Empty(t, Validate(req))
		})
	}
}

func TestValidateUnknownCategory(t *testing.T) {
	for _, typeOfUser := range []string{"", "student", "Admin"} {
		req := validStudentRequest()
		req.TypeOfUser = typeOfUser

		violations := Validate(req)
		require.Len(t, violations, 1)
		require.Equal(t, "typeOfUser", violations[0].Field)
	}
}

func TestValidateTrimsDiscriminator(t *testing.T) {
	req := validProviderRequest()
	req.TypeOfUser = " AP "
	require.Empty(t, Validate(req))
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"student missing fullName", func(r *Request) { r.Student.FullName = "" }, "fullName"},
		{"student blank email", func(r *Request) { r.Student.Email = "   " }, "email"},
		{"student missing institution", func(r *Request) { r.Student.Institution = "" }, "institution"},
		{"student missing campus", func(r *Request) { r.Student.Campus = "" }, "campus"},
		{"student missing accommodation", func(r *Request) { r.Student.Accommodation = "" }, "accommodation"},
		{"student missing query", func(r *Request) { r.Query.Query = "" }, "query"},
		{"student missing description", func(r *Request) { r.Query.DescribeQuery = "" }, "describeQuery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStudentRequest()
			tt.mutate(&req)

			violations := Validate(req)
			require.NotEmpty(t, violations)

			fields := make([]string, len(violations))
			for i, violation := range violations {
				fields[i] = violation.Field
			}
			require.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateProviderAndOtherRequiredFields(t *testing.T) {
	provider := validProviderRequest()
	provider.AP.PropertyName = ""
	violations := Validate(provider)
	require.Len(t, violations, 1)
	require.Equal(t, "propertyName", violations[0].Field)

	other := validOtherRequest()
	other.Other.FullName = ""
	violations = Validate(other)
	require.Len(t, violations, 1)
	require.Equal(t, "fullName", violations[0].Field)
}

func TestValidateFormatRules(t *testing.T) {
	req := validStudentRequest()
	req.Student.Email = "not-an-email"
	req.Student.ContactNumber = "123"
	req.Student.IDNumber = "9001015"

	violations := Validate(req)
	require.Len(t, violations, 3)

	byField := map[string]string{}
	for _, violation := range violations {
		byField[violation.Field] = violation.Message
	}
	require.Contains(t, byField["email"], "valid email")
	require.Contains(t, byField["contactNumber"], "at least 10")
	require.Contains(t, byField["idNumber"], "at least 13")
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	req := Request{TypeOfUser: "other"}
	req.Other.FullName = "Sam Smith"

	violations := Validate(req)
	// email, contactNumber, idNumber, query, describeQuery
	require.Len(t, violations, 5)
}

func TestValidateIdempotent(t *testing.T) {
	req := validProviderRequest()
	req.AP.Email = "broken"
	req.Query.Query = " "

	first := Validate(req)
	second := Validate(req)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}
