package leads

import "github.com/nsepoxy/website/internal/models"

// Listing is the admin view of the store: leads partitioned by kind plus the
// total document length. Total is taken from the full collection, not from
// the partition sizes.
type Listing struct {
	Contacts []models.Lead
	Quotes   []models.Lead
	Total    int
}

// ListLeads reads the full store and partitions it by kind.
func (s *Store) ListLeads() Listing {
	all := s.ReadAll()

	listing := Listing{
		Contacts: []models.Lead{},
		Quotes:   []models.Lead{},
		Total:    len(all),
	}
	for _, lead := range all {
		switch lead.Type {
		case models.KindContact:
			listing.Contacts = append(listing.Contacts, lead)
		case models.KindQuote:
			listing.Quotes = append(listing.Quotes, lead)
		}
	}
	return listing
}
