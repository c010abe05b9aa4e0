package notification

import (
	"fmt"
	"html/template"
	"strings"
)

var leadAlertTmpl = template.Must(template.New("lead_alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2933;">
  <h2 style="color: #2f6f3e;">New lead{{if .ServiceName}} for {{.ServiceName}}{{end}}</h2>
  <p><strong>Quality score: {{.Score}}/100</strong></p>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
    {{if .ServiceName}}<tr><td><strong>Service</strong></td><td>{{.ServiceName}}</td></tr>{{end}}
    {{if .LocationName}}<tr><td><strong>Area</strong></td><td>{{.LocationName}}</td></tr>{{end}}
    {{if .Tier}}<tr><td><strong>Package</strong></td><td>{{.Tier}}</td></tr>{{end}}
  </table>
  <p style="color: #6b7280; font-size: 12px;">Lead {{.LeadID}}</p>
</body>
</html>`))

func renderLeadAlert(alert LeadAlert) (string, error) {
	var b strings.Builder
	if err := leadAlertTmpl.Execute(&b, alert); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderLeadAlertText(alert LeadAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New lead (score %d/100)\n\n", alert.Score)
	fmt.Fprintf(&b, "Name:  %s\n", alert.Name)
	fmt.Fprintf(&b, "Email: %s\n", alert.Email)
	fmt.Fprintf(&b, "Phone: %s\n", alert.Phone)
	if alert.ServiceName != "" {
		fmt.Fprintf(&b, "Service: %s\n", alert.ServiceName)
	}
	if alert.LocationName != "" {
		fmt.Fprintf(&b, "Area: %s\n", alert.LocationName)
	}
	if alert.Tier != "" {
		fmt.Fprintf(&b, "Package: %s\n", alert.Tier)
	}
	fmt.Fprintf(&b, "\nLead %s\n", alert.LeadID)
	return b.String()
}
