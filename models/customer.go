package models

import "time"

type Customer struct {
	ID          string    `bson:"id" json:"id,omitempty"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Email       string    `bson:"email" json:"email" binding:"required,email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Security    Security  `bson:"security" json:"security,omitzero"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// CustomerDTO excludes credential fields from API responses.
type CustomerDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *Customer) ToDTO() CustomerDTO {
	return CustomerDTO{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}
