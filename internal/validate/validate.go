package validate

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nsepoxy/website/internal/models"
)

// Contact checks a contact form submission and returns every failed rule.
// An empty slice means the submission is valid. Checks never short-circuit,
// so a submission can report multiple reasons at once.
func Contact(f models.ContactForm) []string {
	var errs []string

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}

	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "email is required")
	} else if !validEmail(f.Email) {
		errs = append(errs, "invalid email format")
	}

	if strings.TrimSpace(f.Message) == "" {
		errs = append(errs, "message is required")
	}

	// Phone is optional on the contact form; only validate when provided.
	if f.Phone != "" && !validPhone(f.Phone) {
		errs = append(errs, "invalid phone number format")
	}

	return errs
}

// Quote checks a quote-request submission and returns every failed rule.
// Unlike the contact form, phone is mandatory here.
func Quote(f models.QuoteForm) []string {
	var errs []string

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}

	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "email is required")
	} else if !validEmail(f.Email) {
		errs = append(errs, "invalid email format")
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, "phone is required")
	} else if !validPhone(f.Phone) {
		errs = append(errs, "invalid phone number format")
	}

	if strings.TrimSpace(f.Address) == "" {
		errs = append(errs, "address is required")
	}

	if strings.TrimSpace(f.ProjectType) == "" {
		errs = append(errs, "project type is required")
	}

	if strings.TrimSpace(f.FlooringType) == "" {
		errs = append(errs, "flooring type is required")
	}

	if sqft := strings.TrimSpace(f.SquareFootage); sqft != "" {
		if v, err := parseSquareFootage(sqft); err != nil {
			errs = append(errs, "square footage must be a valid number")
		} else if v <= 0 {
			errs = append(errs, "square footage must be a positive number")
		}
	}

	return errs
}

// validEmail accepts a simple local@domain.tld shape: exactly one @ with a
// non-empty local part, at least one interior dot after it, and no whitespace
// anywhere.
func validEmail(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// validPhone requires at least 10 digit characters once everything else
// (dashes, spaces, parentheses) is stripped.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// parseSquareFootage parses a user-entered area, tolerating thousands
// separators and interior spaces ("1,200", "1 200").
func parseSquareFootage(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strconv.ParseFloat(s, 64)
}
