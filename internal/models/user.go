package models

// User is an account allowed to sign in to the dashboard. Password holds a
// bcrypt hash, or a plaintext value for rows created before hashing.
type User struct {
	Username string `gorm:"primaryKey;size:64"`
	Password string `gorm:"size:255;not null"`
}
