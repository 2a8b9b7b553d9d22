package utils

import "github.com/adityapw/rentafleet-core/internal/models"

// NormalizeAddOnIDs maps a mixed list of add-on ids and display names
// onto catalog ids. Entries matching neither are passed through as-is,
// blanks are dropped.
func NormalizeAddOnIDs(entries []string, catalog []models.RentalAddOn) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		ids = append(ids, resolveAddOnID(entry, catalog))
	}
	return ids
}

func resolveAddOnID(value string, catalog []models.RentalAddOn) string {
	for _, addOn := range catalog {
		if addOn.ID == value {
			return addOn.ID
		}
	}
	for _, addOn := range catalog {
		if addOn.Name == value {
			return addOn.ID
		}
	}
	return value
}
