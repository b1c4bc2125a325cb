package models

// Admin sub-roles. Each role maps to the single dashboard section it
// may view; SUPER_ADMIN sees everything.
const (
	RoleSuperAdmin        = "SUPER_ADMIN"
	RoleCustomerSupport   = "CUSTOMER_SUPPORT"
	RoleProviderSupport   = "PROVIDER_SUPPORT"
	RoleVerificationAdmin = "VERIFICATION_ADMIN"
	RoleRatingsAdmin      = "RATINGS_ADMIN"
	RoleCategoryAdmin     = "CATEGORY_ADMIN"
)

// Dashboard sections.
const (
	SectionTickets      = "tickets"
	SectionVerification = "verification"
	SectionRatings      = "ratings"
	SectionCategories   = "categories"
)
