package services

import "github.com/adityapw/rentafleet-core/internal/models"

// AddOnCatalog is immutable reference data resolving add-on ids to
// their current name and price. The booking service never fetches it;
// whoever composes the application supplies one.
type AddOnCatalog struct {
	addOns []models.RentalAddOn
}

// NewAddOnCatalog builds a catalog from the given entries
func NewAddOnCatalog(addOns []models.RentalAddOn) *AddOnCatalog {
	entries := make([]models.RentalAddOn, len(addOns))
	copy(entries, addOns)
	return &AddOnCatalog{addOns: entries}
}

// DefaultAddOnCatalog returns the stock rental extras
func DefaultAddOnCatalog() *AddOnCatalog {
	return NewAddOnCatalog([]models.RentalAddOn{
		{ID: "ADD001", Name: "GPS", Price: 50000},
		{ID: "ADD002", Name: "Child Seat", Price: 80000},
	})
}

// All returns a copy of every catalog entry
func (c *AddOnCatalog) All() []models.RentalAddOn {
	entries := make([]models.RentalAddOn, len(c.addOns))
	copy(entries, c.addOns)
	return entries
}

// Find looks up an add-on by id
func (c *AddOnCatalog) Find(id string) (models.RentalAddOn, bool) {
	for _, addOn := range c.addOns {
		if addOn.ID == id {
			return addOn, true
		}
	}
	return models.RentalAddOn{}, false
}
