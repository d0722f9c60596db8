package models

// AdminCredentialsID keys the single admin-credentials row.
const AdminCredentialsID = "admin_config"

// AdminCredentials gates the back office. The password is stored as a
// bcrypt hash; the plaintext never touches the database.
type AdminCredentials struct {
	ID           string `gorm:"primaryKey" json:"-"`
	Username     string `gorm:"not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
