package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rewear/internal/models"
)

func TestBuildApprovedItemsQuery(t *testing.T) {
	testCases := []struct {
		name               string
		filter             models.ListingFilter
		expectedConditions []string
		expectedArgs       []interface{}
	}{
		{
			name:               "empty filter only constrains moderation",
			filter:             models.ListingFilter{},
			expectedConditions: []string{"WHERE i.approved ORDER BY i.id"},
			expectedArgs:       []interface{}{},
		},
		{
			name:               "single facet",
			filter:             models.ListingFilter{Category: "outerwear"},
			expectedConditions: []string{"i.approved AND i.category = $1"},
			expectedArgs:       []interface{}{"outerwear"},
		},
		{
			name: "facets combine with AND in fixed order",
			filter: models.ListingFilter{
				Category:  "outerwear",
				Size:      "M",
				Type:      "jacket",
				Condition: "good",
			},
			expectedConditions: []string{
				"i.approved AND i.category = $1 AND i.size = $2 AND i.type = $3 AND i.condition = $4",
			},
			expectedArgs: []interface{}{"outerwear", "M", "jacket", "good"},
		},
		{
			name:   "tags match any-of via array overlap",
			filter: models.ListingFilter{Tags: []string{"vintage", "denim"}},
			expectedConditions: []string{
				"i.approved AND i.tags && string_to_array($1, ',')",
			},
			expectedArgs: []interface{}{"vintage,denim"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildApprovedItemsQuery(tc.filter)
			for _, condition := range tc.expectedConditions {
				assert.Contains(t, query, condition)
			}
			assert.Equal(t, tc.expectedArgs, args)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"vintage"}, splitList("vintage"))
	assert.Equal(t, []string{"vintage", "denim"}, splitList("vintage,denim"))
}
