package booking

import "homeserve/models"

// SpecHoursRequiredKey is the Cleaning spec field kept in lockstep with
// the session's top-level duration.
const SpecHoursRequiredKey = "hoursRequired"

// specSchemas maps each service category to its ordered input fields.
// Adding a category means adding a row here; no control flow changes.
var specSchemas = map[string][]models.FieldDef{
	models.CategoryCleaning: {
		{Key: "areaType", Kind: models.FieldSelect, Options: []string{"Apartment", "House", "Office", "Commercial"}},
		{Key: "areaSqm", Kind: models.FieldNumber},
		{Key: "rooms", Kind: models.FieldSelect, Options: []string{"1", "2", "3", "4", "5", "6+"}},
		{Key: SpecHoursRequiredKey, Kind: models.FieldNumber},
	},
	models.CategoryPlumbing: {
		{Key: "issueType", Kind: models.FieldSelect, Options: []string{"Leak Repair", "Pipe Installation", "Drain Cleaning", "Water Heater", "Fixture Replacement"}},
		{Key: "urgency", Kind: models.FieldSelect, Options: []string{"Standard", "Urgent", "Emergency"}},
		{Key: "material", Kind: models.FieldSelect, Options: []string{"PVC", "Copper", "PEX", "Not sure"}},
		{Key: "workArea", Kind: models.FieldSelect, Options: []string{"Kitchen", "Bathroom", "Basement", "Outdoor", "Whole house"}},
	},
	models.CategoryElectrical: {
		{Key: "serviceType", Kind: models.FieldSelect, Options: []string{"Wiring", "Panel Upgrade", "Lighting", "Outlet Installation", "Inspection"}},
		{Key: "powerLoad", Kind: models.FieldSelect, Options: []string{"Standard residential", "High load", "Three-phase"}},
		{Key: "visitType", Kind: models.FieldSelect, Options: []string{"Inspection", "Repair", "Installation"}},
		{Key: "environment", Kind: models.FieldSelect, Options: []string{"Indoor", "Outdoor", "Both"}},
	},
	models.CategoryInteriorDesign: {
		{Key: "projectType", Kind: models.FieldSelect, Options: []string{"Full Home", "Single Room", "Kitchen", "Office"}},
		{Key: "areaSqft", Kind: models.FieldNumber},
		{Key: "designStyle", Kind: models.FieldSelect, Options: []string{"Modern", "Scandinavian", "Industrial", "Classic", "Minimalist"}},
		{Key: "budgetBand", Kind: models.FieldSelect, Options: []string{"Economy", "Mid-range", "Premium", "Luxury"}},
	},
}

// SpecFields returns the ordered field definitions for a category. An
// unknown category yields an empty list: nothing to render, no error.
func SpecFields(category string) []models.FieldDef {
	return specSchemas[category]
}
