// File: services/admin/access.go
package admin

import "homeserve/models"

// sectionsByRole is the whole access model: one dashboard section per
// sub-role. Deliberately not a policy engine.
var sectionsByRole = map[string][]string{
	models.RoleCustomerSupport:   {models.SectionTickets},
	models.RoleProviderSupport:   {models.SectionTickets},
	models.RoleVerificationAdmin: {models.SectionVerification},
	models.RoleRatingsAdmin:      {models.SectionRatings},
	models.RoleCategoryAdmin:     {models.SectionCategories},
}

// allSections lists every dashboard section, for SUPER_ADMIN.
var allSections = []string{
	models.SectionTickets,
	models.SectionVerification,
	models.SectionRatings,
	models.SectionCategories,
}

// SectionsFor returns the dashboard sections visible to a role.
func SectionsFor(role string) []string {
	if role == models.RoleSuperAdmin {
		return allSections
	}
	return sectionsByRole[role]
}

// CanView reports whether a role may view a dashboard section.
func CanView(role, section string) bool {
	for _, s := range SectionsFor(role) {
		if s == section {
			return true
		}
	}
	return false
}

// TicketOriginsFor returns the ticket origins a role may see: customer
// tickets route to customer support, provider tickets to provider
// support, and SUPER_ADMIN sees both.
func TicketOriginsFor(role string) []string {
	switch role {
	case models.RoleSuperAdmin:
		return []string{models.TicketFromCustomer, models.TicketFromProvider}
	case models.RoleCustomerSupport:
		return []string{models.TicketFromCustomer}
	case models.RoleProviderSupport:
		return []string{models.TicketFromProvider}
	default:
		return nil
	}
}
