package model

// Category groups products. Name uniqueness is by convention only, not
// enforced with an index.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
