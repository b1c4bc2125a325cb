package admin

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
)

func TestSectionsFor(t *testing.T) {
	cases := []struct {
		role     string
		sections []string
	}{
		{models.RoleSuperAdmin, []string{models.SectionTickets, models.SectionVerification, models.SectionRatings, models.SectionCategories}},
		{models.RoleCustomerSupport, []string{models.SectionTickets}},
		{models.RoleProviderSupport, []string{models.SectionTickets}},
		{models.RoleVerificationAdmin, []string{models.SectionVerification}},
		{models.RoleRatingsAdmin, []string{models.SectionRatings}},
		{models.RoleCategoryAdmin, []string{models.SectionCategories}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.sections, SectionsFor(tc.role), "role %s", tc.role)
	}
}

func TestSectionsForUnknownRole(t *testing.T) {
	assert.Empty(t, SectionsFor("INTERN"))
	assert.Empty(t, SectionsFor(""))
}

func TestCanView(t *testing.T) {
	assert.True(t, CanView(models.RoleSuperAdmin, models.SectionRatings))
	assert.True(t, CanView(models.RoleVerificationAdmin, models.SectionVerification))
	assert.False(t, CanView(models.RoleVerificationAdmin, models.SectionTickets))
	assert.False(t, CanView(models.RoleCustomerSupport, models.SectionCategories))
	assert.False(t, CanView("INTERN", models.SectionTickets))
}

func TestTicketOriginsFor(t *testing.T) {
	assert.Equal(t, []string{models.TicketFromCustomer, models.TicketFromProvider}, TicketOriginsFor(models.RoleSuperAdmin))
	assert.Equal(t, []string{models.TicketFromCustomer}, TicketOriginsFor(models.RoleCustomerSupport))
	assert.Equal(t, []string{models.TicketFromProvider}, TicketOriginsFor(models.RoleProviderSupport))
	assert.Nil(t, TicketOriginsFor(models.RoleRatingsAdmin))
	assert.Nil(t, TicketOriginsFor("INTERN"))
}
