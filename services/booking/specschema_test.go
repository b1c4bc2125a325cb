package booking

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldKeys(fields []models.FieldDef) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestSpecFieldsPerCategory(t *testing.T) {
	cases := []struct {
		category string
		keys     []string
	}{
		{models.CategoryCleaning, []string{"areaType", "areaSqm", "rooms", "hoursRequired"}},
		{models.CategoryPlumbing, []string{"issueType", "urgency", "material", "workArea"}},
		{models.CategoryElectrical, []string{"serviceType", "powerLoad", "visitType", "environment"}},
		{models.CategoryInteriorDesign, []string{"projectType", "areaSqft", "designStyle", "budgetBand"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.keys, fieldKeys(SpecFields(tc.category)), "category %s", tc.category)
	}
}

func TestSpecFieldsUnknownCategory(t *testing.T) {
	assert.Empty(t, SpecFields("landscaping"))
	assert.Empty(t, SpecFields(""))
}

func TestSpecFieldsSelectOptionsPresent(t *testing.T) {
	for _, category := range models.Categories() {
		fields := SpecFields(category)
		require.NotEmpty(t, fields, "category %s", category)
		for _, f := range fields {
			switch f.Kind {
			case models.FieldSelect:
				assert.NotEmpty(t, f.Options, "%s.%s needs options", category, f.Key)
			default:
				assert.Empty(t, f.Options, "%s.%s should not carry options", category, f.Key)
			}
		}
	}
}
