package submission

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Email is a rendered helpdesk notification ready for dispatch.
type Email struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// Every value interpolated here goes through html/template's contextual
// escaping, so markup typed into free-text fields arrives as literal text.
var emailTemplate = template.Must(template.New("query").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Helpdesk Query</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1 style="color: #A1261F;">Query from {{.Heading}}</h1>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
{{- range .Fields}}
            <p><strong>{{.Label}}:</strong> {{.Value}}</p>
{{- end}}
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #A1261F; border-radius: 4px; margin: 20px 0;">
            <p><strong>Query:</strong> {{.Query}}</p>
            <p style="white-space: pre-wrap;"><strong>Description:</strong> {{.Description}}</p>
        </div>
    </div>
</body>
</html>
`))

type emailData struct {
	Heading     string
	Fields      []Field
	Query       string
	Description string
}

// BuildEmail renders the helpdesk notification for a submission: subject
// and heading name the category ("Unknown user" for the other category),
// the detail block lists the category's fields in schema order, and the
// query block carries the topic and description.
func BuildEmail(sub Submission) (Email, error) {
	data := emailData{
		Heading:     sub.Category.DisplayName(),
		Fields:      sub.Details.Fields(),
		Query:       sub.Query.Query,
		Description: sub.Query.DescribeQuery,
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("render email body: %w", err)
	}

	return Email{
		Subject:  fmt.Sprintf("New Query from a/an %s", sub.Category.DisplayName()),
		HTMLBody: buf.String(),
		TextBody: textBody(data),
	}, nil
}

// textBody is the plain-text fallback part of the multipart message.
func textBody(data emailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query from %s\n\n", data.Heading)
	for _, field := range data.Fields {
		fmt.Fprintf(&b, "%s: %s\n", field.Label, field.Value)
	}
	fmt.Fprintf(&b, "\nQuery: %s\nDescription: %s\n", data.Query, data.Description)
	return b.String()
}
