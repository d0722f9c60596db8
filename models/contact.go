package models

// CSContact is a customer-service WhatsApp number eligible to receive routed
// orders and inquiries. Checkout picks one active contact at random.
type CSContact struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	IsActive    bool   `json:"isActive"`
}
