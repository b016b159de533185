package models

// Kind discriminates the two lead types accepted by the site.
type Kind string

const (
	KindContact Kind = "contact"
	KindQuote   Kind = "quote"
)

func (k Kind) IsValid() bool {
	return k == KindContact || k == KindQuote
}

// Lead is a persisted form submission. The store assigns ID and Timestamp at
// append time; the remaining fields come from the submitted form. Fields that
// only apply to one kind are omitted from JSON when empty.
type Lead struct {
	ID            int    `json:"id"`
	Timestamp     string `json:"timestamp"`
	Type          Kind   `json:"type"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message,omitempty"`
	Address       string `json:"address,omitempty"`
	ProjectType   string `json:"project_type,omitempty"`
	FlooringType  string `json:"flooring_type,omitempty"`
	SquareFootage string `json:"square_footage,omitempty"`
	Timeline      string `json:"timeline,omitempty"`
	Details       string `json:"details,omitempty"`
}

// ContactForm holds the fields of the general contact form. Missing request
// fields decode to "", which the validator treats the same as absent.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string // optional
	Message string
}

// Lead converts the form into an unstamped Lead record.
func (f ContactForm) Lead() Lead {
	return Lead{
		Type:    KindContact,
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Message: f.Message,
	}
}

// QuoteForm holds the fields of the detailed quote-request form.
type QuoteForm struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ProjectType   string
	FlooringType  string
	SquareFootage string // optional
	Timeline      string // optional
	Details       string // optional
}

// Lead converts the form into an unstamped Lead record.
func (f QuoteForm) Lead() Lead {
	return Lead{
		Type:          KindQuote,
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		Address:       f.Address,
		ProjectType:   f.ProjectType,
		FlooringType:  f.FlooringType,
		SquareFootage: f.SquareFootage,
		Timeline:      f.Timeline,
		Details:       f.Details,
	}
}
