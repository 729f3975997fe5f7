package validate

import (
	"strings"
	"testing"
)

func TestNormalizeApplication(t *testing.T) {
	in := NormalizeApplication(ApplicationInput{
		Name:     "  Jane Doe ",
		Email:    " Jane@Example.COM ",
		Phone:    " 9876543210 ",
		Position: " Teacher ",
		Message:  "  hello ",
	})
	if in.Name != "Jane Doe" || in.Phone != "9876543210" || in.Position != "Teacher" || in.Message != "hello" {
		t.Fatalf("fields not trimmed: %+v", in)
	}
	if in.Email != "jane@example.com" {
		t.Fatalf("email not lower-cased: %q", in.Email)
	}
}

func TestApplicationCollectsAllViolations(t *testing.T) {
	errs := Application(ApplicationInput{Name: "J", Email: "not-an-email", Phone: "123", Position: ""})
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
}

func TestApplicationValid(t *testing.T) {
	errs := Application(ApplicationInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "9876543210",
		Position: "Teacher",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestEmail(t *testing.T) {
	if !Email("a@b.co") {
		t.Fatal("valid address rejected")
	}
	for _, bad := range []string{"", "plain", "a@b", "@b.co", "a@b.co" + strings.Repeat("x", 255)} {
		if Email(bad) {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestEnquiryMessageBounds(t *testing.T) {
	if errs := Enquiry(EnquiryInput{Name: "Jo", Email: "a@b.co", Message: "hey"}); len(errs) != 1 {
		t.Fatalf("short message: expected 1 violation, got %v", errs)
	}
	long := strings.Repeat("x", 2001)
	if errs := Enquiry(EnquiryInput{Name: "Jo", Email: "a@b.co", Message: long}); len(errs) != 1 {
		t.Fatalf("long message: expected 1 violation, got %v", errs)
	}
	if errs := Enquiry(EnquiryInput{Name: "Jo", Email: "a@b.co", Message: "hello there"}); len(errs) != 0 {
		t.Fatalf("valid enquiry rejected: %v", errs)
	}
}
