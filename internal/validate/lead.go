package validate

import (
	"strings"

	"studio-backoffice/internal/models"
)

type LeadSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"companyName"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

const minMessageLen = 10

// Lead normalizes a public form submission or returns every field error at
// once, so the form can show them all in a single round trip.
func Lead(in LeadSubmission) (*models.Lead, Errors) {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	company := strings.TrimSpace(in.Company)
	message := strings.TrimSpace(in.Message)

	if name == "" {
		errs.add("name", "required")
	}
	if email == "" {
		errs.add("email", "required")
	} else if !ValidEmail(email) {
		errs.add("email", "invalid email")
	}
	if phone != "" && !ValidPhone(phone) {
		errs.add("phone", "invalid phone number")
	}
	if company == "" {
		errs.add("companyName", "required")
	}

	ptype := models.LeadProjectType(strings.TrimSpace(in.ProjectType))
	if ptype == "" {
		ptype = models.LeadOther
	} else if !models.ValidLeadProjectType(ptype) {
		errs.add("projectType", "unknown project type")
	}

	if message == "" {
		errs.add("message", "required")
	} else if len(message) < minMessageLen {
		errs.add("message", "too short")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Lead{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
		Type:    ptype,
		Message: message,
	}, nil
}
