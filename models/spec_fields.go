package models

// Field input kinds for category specification schemas.
const (
	FieldSelect = "select"
	FieldNumber = "number"
	FieldText   = "text"
)

// FieldDef describes one input in a category's specification schema.
// Options is populated only for select fields.
type FieldDef struct {
	Key     string   `json:"key"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}
