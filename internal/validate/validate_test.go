package validate

import (
	"testing"

	"github.com/nsepoxy/website/internal/models"
)

func validContact() models.ContactForm {
	return models.ContactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "(902) 555-0123",
		Message: "Looking for a garage floor coating.",
	}
}

func validQuote() models.QuoteForm {
	return models.QuoteForm{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "902-555-0123",
		Address:       "12 Main St, Halifax",
		ProjectType:   "residential",
		FlooringType:  "flake",
		SquareFootage: "1,200",
		Timeline:      "asap",
		Details:       "Two-car garage.",
	}
}

func TestContact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ContactForm)
		wantErr int
	}{
		{"valid", func(f *models.ContactForm) {}, 0},
		{"missing name", func(f *models.ContactForm) { f.Name = "" }, 1},
		{"whitespace name", func(f *models.ContactForm) { f.Name = "   " }, 1},
		{"missing email", func(f *models.ContactForm) { f.Email = "" }, 1},
		{"bad email", func(f *models.ContactForm) { f.Email = "not-an-email" }, 1},
		{"missing message", func(f *models.ContactForm) { f.Message = "" }, 1},
		{"phone optional when absent", func(f *models.ContactForm) { f.Phone = "" }, 0},
		{"phone too short when present", func(f *models.ContactForm) { f.Phone = "123-456" }, 1},
		{"multiple failures accumulate", func(f *models.ContactForm) {
			f.Name = ""
			f.Email = "not-an-email"
			f.Message = ""
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validContact()
			tt.mutate(&f)
			errs := Contact(f)
			if len(errs) != tt.wantErr {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, tt.wantErr)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.QuoteForm)
		wantErr int
	}{
		{"valid", func(f *models.QuoteForm) {}, 0},
		{"missing name", func(f *models.QuoteForm) { f.Name = "" }, 1},
		{"missing email", func(f *models.QuoteForm) { f.Email = "" }, 1},
		{"missing phone", func(f *models.QuoteForm) { f.Phone = "" }, 1},
		{"short phone", func(f *models.QuoteForm) { f.Phone = "123-456" }, 1},
		{"missing address", func(f *models.QuoteForm) { f.Address = "" }, 1},
		{"missing project type", func(f *models.QuoteForm) { f.ProjectType = "" }, 1},
		{"missing flooring type", func(f *models.QuoteForm) { f.FlooringType = "" }, 1},
		{"square footage optional", func(f *models.QuoteForm) { f.SquareFootage = "" }, 0},
		{"square footage with comma", func(f *models.QuoteForm) { f.SquareFootage = "1,200" }, 0},
		{"square footage with spaces", func(f *models.QuoteForm) { f.SquareFootage = "1 200" }, 0},
		{"negative square footage", func(f *models.QuoteForm) { f.SquareFootage = "-5" }, 1},
		{"zero square footage", func(f *models.QuoteForm) { f.SquareFootage = "0" }, 1},
		{"unparseable square footage", func(f *models.QuoteForm) { f.SquareFootage = "abc" }, 1},
		{"timeline and details never validated", func(f *models.QuoteForm) {
			f.Timeline = "whenever!!!"
			f.Details = ""
		}, 0},
		{"everything missing", func(f *models.QuoteForm) {
			*f = models.QuoteForm{}
		}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validQuote()
			tt.mutate(&f)
			errs := Quote(f)
			if len(errs) != tt.wantErr {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, tt.wantErr)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"jane.doe@example.com", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@example", false},
		{"jane@example.", false},
		{"jane doe@example.com", false},
		{"jane@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := validEmail(tt.email); got != tt.want {
				t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9025550123", true},
		{"(902) 555-0123", true},
		{"+1 902 555 0123", true},
		{"123-456", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := validPhone(tt.phone); got != tt.want {
				t.Errorf("validPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
