package provider

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOfferingsPromotesConsultationDescriptions(t *testing.T) {
	normalized := NormalizeOfferings([]models.ServiceOffering{
		{Category: models.CategoryInteriorDesign, HourlyPrice: 120, Description: "Full project design"},
		{Category: models.CategoryInteriorDesign, HourlyPrice: 30, Description: "Initial Consultation visit"},
		{Category: models.CategoryElectrical, HourlyPrice: 50, Description: "CONSULTATION only"},
	})

	assert.Equal(t, models.TierStandard, normalized[0].Tier)
	assert.Equal(t, models.TierConsultation, normalized[1].Tier)
	assert.Equal(t, models.TierConsultation, normalized[2].Tier)
}

func TestNormalizeOfferingsExplicitTierWins(t *testing.T) {
	normalized := NormalizeOfferings([]models.ServiceOffering{
		{Category: models.CategoryCleaning, HourlyPrice: 40, Description: "Deep clean consultation", Tier: models.TierStandard},
		{Category: models.CategoryPlumbing, HourlyPrice: 60, Description: "Pipework", Tier: models.TierConsultation},
	})

	assert.Equal(t, models.TierStandard, normalized[0].Tier)
	assert.Equal(t, models.TierConsultation, normalized[1].Tier)
}

func TestNormalizeOfferingsDefaultsToStandard(t *testing.T) {
	normalized := NormalizeOfferings([]models.ServiceOffering{
		{Category: models.CategoryCleaning, HourlyPrice: 40},
	})

	assert.Equal(t, models.TierStandard, normalized[0].Tier)
}

func TestNormalizeOfferingsDoesNotMutateInput(t *testing.T) {
	input := []models.ServiceOffering{
		{Category: models.CategoryCleaning, HourlyPrice: 40, Description: "consultation"},
	}
	_ = NormalizeOfferings(input)
	assert.Empty(t, input[0].Tier)
}
