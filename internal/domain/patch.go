package domain

import "time"

// CustomerPatch is a partial update: nil fields keep the stored value,
// non-nil fields overwrite it.
type CustomerPatch struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// Apply overwrites the non-nil fields of p onto c, field by field.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
}

// ProductPatch is the product counterpart of CustomerPatch.
type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

func (p ProductPatch) Apply(pr *Product) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Slug != nil {
		pr.Slug = *p.Slug
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
}
