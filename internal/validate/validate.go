// Package validate holds the field rules shared by the public form endpoints
// and any admin-side resubmission path, so both reject input identically.
package validate

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ApplicationInput carries normalized application form fields.
type ApplicationInput struct {
	Name     string
	Email    string
	Phone    string
	Position string
	Message  string
}

// EnquiryInput carries normalized contact form fields.
type EnquiryInput struct {
	Name    string
	Email   string
	Message string
}

// NormalizeApplication trims every field and lower-cases the email.
func NormalizeApplication(in ApplicationInput) ApplicationInput {
	return ApplicationInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Position: strings.TrimSpace(in.Position),
		Message:  strings.TrimSpace(in.Message),
	}
}

// NormalizeEnquiry trims every field and lower-cases the email.
func NormalizeEnquiry(in EnquiryInput) EnquiryInput {
	return EnquiryInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Message: strings.TrimSpace(in.Message),
	}
}

// Email reports whether s looks like an address and fits the stored width.
func Email(s string) bool {
	return s != "" && len(s) <= 255 && emailRe.MatchString(s)
}

// Application returns every violated rule, not just the first.
func Application(in ApplicationInput) []string {
	var errs []string
	if len(in.Name) < 2 {
		errs = append(errs, "Name is required and must be at least 2 characters")
	}
	if len(in.Name) > 100 {
		errs = append(errs, "Name cannot exceed 100 characters")
	}
	if !Email(in.Email) {
		errs = append(errs, "Valid email address is required")
	}
	if len(in.Phone) < 10 {
		errs = append(errs, "Phone number is required and must be at least 10 digits")
	}
	if len(in.Phone) > 15 {
		errs = append(errs, "Phone number cannot exceed 15 digits")
	}
	if len(in.Position) < 2 {
		errs = append(errs, "Position is required")
	}
	if len(in.Position) > 100 {
		errs = append(errs, "Position cannot exceed 100 characters")
	}
	if len(in.Message) > 1000 {
		errs = append(errs, "Message cannot exceed 1000 characters")
	}
	return errs
}

// Enquiry returns every violated rule, not just the first.
func Enquiry(in EnquiryInput) []string {
	var errs []string
	if len(in.Name) < 2 {
		errs = append(errs, "Name is required and must be at least 2 characters")
	}
	if len(in.Name) > 100 {
		errs = append(errs, "Name cannot exceed 100 characters")
	}
	if !Email(in.Email) {
		errs = append(errs, "Valid email address is required")
	}
	if len(in.Message) < 5 {
		errs = append(errs, "Message is required (at least 5 characters)")
	}
	if len(in.Message) > 2000 {
		errs = append(errs, "Message cannot exceed 2000 characters")
	}
	return errs
}
