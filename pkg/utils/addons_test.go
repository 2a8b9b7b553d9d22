package utils

import (
	"testing"

	"github.com/adityapw/rentafleet-core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddOnIDs(t *testing.T) {
	catalog := []models.RentalAddOn{
		{ID: "ADD001", Name: "GPS", Price: 50000},
		{ID: "ADD002", Name: "Child Seat", Price: 80000},
	}

	assert.Empty(t, NormalizeAddOnIDs(nil, catalog))
	assert.Equal(t, []string{"ADD001"}, NormalizeAddOnIDs([]string{"ADD001"}, catalog))
	// Display names resolve to their catalog id
	assert.Equal(t, []string{"ADD002"}, NormalizeAddOnIDs([]string{"Child Seat"}, catalog))
	// Unknown entries pass through untouched, blanks are dropped
	assert.Equal(t, []string{"ADD001", "ADD999"}, NormalizeAddOnIDs([]string{"GPS", "", "ADD999"}, catalog))
}
