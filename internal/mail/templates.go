package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

var nextSteps = map[lifecycle.Role][]string{
	lifecycle.RoleNGO: {
		"Your account needs verification by our admin team",
		"Once verified, you can create food requests",
		"Track all your requests in the dashboard",
		"Get real-time updates when donors respond",
	},
	lifecycle.RoleDonor: {
		"Browse food requests from verified NGOs",
		"Accept requests and share when the food is ready",
		"A nearby volunteer picks the food up for you",
		"Make an impact in your local community",
	},
	lifecycle.RoleVolunteer: {
		"Our admin team verifies your account",
		"Once approved, you receive delivery tasks near you",
		"Keep your availability and location current",
		"Help connect donors and NGOs efficiently",
	},
	lifecycle.RoleAdmin: {
		"Verify NGOs and volunteers",
		"Review the audit log",
		"Manage user accounts",
	},
}

var verifiedSteps = map[lifecycle.Role][]string{
	lifecycle.RoleNGO: {
		"Create food requests for the people you serve",
		"Follow each request from acceptance to delivery",
		"Confirm receipt once the food arrives",
	},
	lifecycle.RoleVolunteer: {
		"Set yourself available to receive delivery tasks",
		"Pick up food from donors near you",
		"Deliver it to the NGO and upload a proof photo",
	},
}

var layout = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#F9F7F2;">
<table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 20px;"><tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#FFFFFF;border-radius:16px;">
<tr><td style="background-color:#1A4D2E;padding:40px;text-align:center;border-radius:16px 16px 0 0;">
<h1 style="color:#FFFFFF;margin:0;font-size:32px;">SmartPlate</h1>
<p style="color:#FFFFFF;margin:10px 0 0 0;font-size:16px;">Reducing Hunger Through Food Redistribution</p>
</td></tr>
<tr><td style="padding:40px;">
<h2 style="color:#1F2937;margin:0 0 20px 0;font-size:24px;">{{.Heading}}</h2>
<p style="color:#4B5563;font-size:16px;line-height:1.6;">{{.Lead}} <strong>{{.Role}}</strong>.</p>
<div style="background-color:#F9F7F2;padding:20px;border-radius:8px;margin:20px 0;">
<h3 style="color:#1A4D2E;margin:0 0 15px 0;font-size:18px;">What's Next?</h3>
<ul style="color:#4B5563;margin:0;padding-left:20px;line-height:1.8;">{{range .Steps}}<li>{{.}}</li>{{end}}</ul>
</div>
</td></tr>
<tr><td style="background-color:#F9F7F2;padding:30px;text-align:center;border-radius:0 0 16px 16px;">
<p style="color:#9CA3AF;font-size:14px;margin:0;">SmartPlate - Fighting Hunger, One Meal at a Time</p>
</td></tr>
</table>
</td></tr></table>
</body>
</html>
`))

type page struct {
	Heading string
	Lead    string
	Role    string
	Steps   []string
}

func render(p page) (string, error) {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}

func WelcomeMessage(user lifecycle.User) (Message, error) {
	steps, ok := nextSteps[user.Role]
	if !ok {
		steps = []string{"Explore your dashboard", "Complete your profile"}
	}
	html, err := render(page{
		Heading: "Welcome, " + user.Name + "!",
		Lead:    "Thank you for joining SmartPlate as",
		Role:    displayRole(user.Role),
		Steps:   steps,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: user.Email, Subject: fmt.Sprintf("Welcome to SmartPlate, %s!", user.Name), HTML: html}, nil
}

func VerifiedMessage(user lifecycle.User) (Message, error) {
	html, err := render(page{
		Heading: "Congratulations, " + user.Name + "!",
		Lead:    "Your account has been verified. You now have full access as",
		Role:    displayRole(user.Role),
		Steps:   verifiedSteps[user.Role],
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: user.Email, Subject: "Your SmartPlate Account Has Been Verified!", HTML: html}, nil
}

func displayRole(r lifecycle.Role) string {
	switch r {
	case lifecycle.RoleNGO:
		return "an NGO"
	case lifecycle.RoleAdmin:
		return "an admin"
	default:
		return "a " + r.String()
	}
}
