package models

type Testimonial struct {
	ID           string `gorm:"primaryKey" json:"id"`
	ImageURL     string `gorm:"not null" json:"imageUrl"`
	CustomerName string `json:"customerName,omitempty"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
}
